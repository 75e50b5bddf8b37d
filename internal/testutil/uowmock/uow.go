package uowmock

import (
	"context"

	domain "schooldekho-loan-service/internal/domain/loan"
	"schooldekho-loan-service/internal/domain/uow"
)

// UoW runs the callback directly against the configured repos without a real
// transaction, which is fine for usecase-level tests. WithinLoanTx mimics the
// production behavior of fetching the locked row before the callback.
type UoW struct {
	Repos uow.Repos

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, number string, fn func(r uow.Repos, a *domain.Application) error) error
}

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if u.WithinTxFn != nil {
		return u.WithinTxFn(ctx, fn)
	}
	return fn(u.Repos)
}

func (u *UoW) WithinLoanTx(ctx context.Context, number string, fn func(r uow.Repos, a *domain.Application) error) error {
	if u.WithinLoanTxFn != nil {
		return u.WithinLoanTxFn(ctx, number, fn)
	}
	a, err := u.Repos.Loans.GetByApplicationNumberForUpdate(ctx, number)
	if err != nil {
		return err
	}
	return fn(u.Repos, a)
}
