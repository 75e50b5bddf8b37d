package mysql

import (
	"context"
	"errors"
	"testing"

	domain "schooldekho-loan-service/internal/domain/loan"
	"schooldekho-loan-service/internal/domain/uow"

	"gorm.io/gorm"
)

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Loans.Create(ctx, makeApplication("SDL30000000001", "owner-1"))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewLoanRepository(db).GetByApplicationNumber(ctx, "SDL30000000001"); err != nil {
		t.Fatalf("row not committed: %v", err)
	}
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeApplication("SDL30000000002", "owner-1")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	_, err = NewLoanRepository(db).GetByApplicationNumber(ctx, "SDL30000000002")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row should have been rolled back, err = %v", err)
	}
}

func TestWithinTx_ScoreAndSaveFlow(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	a := makeApplication("SDL30000000003", "owner-1")
	if err := NewLoanRepository(db).Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		row, err := r.Loans.GetByApplicationNumber(ctx, a.ApplicationNumber)
		if err != nil {
			return err
		}
		score := domain.ScoreApplication(row)
		row.EligibilityScore = &score
		return r.Loans.Save(ctx, row)
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	got, err := NewLoanRepository(db).GetByApplicationNumber(ctx, a.ApplicationNumber)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.EligibilityScore == nil {
		t.Fatal("score not persisted")
	}
}
