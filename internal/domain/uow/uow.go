package uow

import (
	"context"

	"schooldekho-loan-service/internal/domain/loan"
	"schooldekho-loan-service/internal/domain/school"
)

type Repos struct {
	Loans   loan.Repository
	Schools school.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, applicationNumber string, fn func(r Repos, a *loan.Application) error) error
}
