package mysql

import (
	"context"
	"time"

	loanDomain "schooldekho-loan-service/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx.
func (r *LoanRepository) Tx(ctx context.Context, fn func(repo loanDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&LoanRepository{db: tx})
	})
}

func (r *LoanRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) Save(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *LoanRepository) GetByApplicationNumber(ctx context.Context, number string) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).Where("application_number = ?", number).First(&out)
	return &out, res.Error
}

// GetByApplicationNumberForUpdate takes a SELECT ... FOR UPDATE row lock; it
// only makes sense inside a transaction.
func (r *LoanRepository) GetByApplicationNumberForUpdate(ctx context.Context, number string) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_number = ?", number).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByOwner(ctx context.Context, ownerID string) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListPendingInstallments(ctx context.Context, asOf time.Time) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).
		Where("application_status = ? AND next_emi_date <= ?", loanDomain.StatusDisbursed, asOf).
		Order("next_emi_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}
