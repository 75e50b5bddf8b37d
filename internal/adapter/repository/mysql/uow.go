package mysql

import (
	"context"

	"schooldekho-loan-service/internal/domain/loan"
	"schooldekho-loan-service/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Loans:   &LoanRepository{db: tx},
			Schools: &SchoolRepository{db: tx},
		})
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, applicationNumber string, fn func(r uow.Repos, a *loan.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Loans:   &LoanRepository{db: tx},
			Schools: &SchoolRepository{db: tx},
		}
		// lock the loan row up-front to prevent races
		a, err := r.Loans.GetByApplicationNumberForUpdate(ctx, applicationNumber)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
