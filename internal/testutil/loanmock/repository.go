package loanmock

import (
	"context"
	"errors"
	"time"

	domain "schooldekho-loan-service/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository. Only set
// the funcs a test needs; unset getters fail loudly.
type Repo struct {
	CreateFn                          func(ctx context.Context, a *domain.Application) error
	SaveFn                            func(ctx context.Context, a *domain.Application) error
	GetByApplicationNumberFn          func(ctx context.Context, number string) (*domain.Application, error)
	GetByApplicationNumberForUpdateFn func(ctx context.Context, number string) (*domain.Application, error)
	ListByOwnerFn                     func(ctx context.Context, ownerID string) ([]domain.Application, error)
	ListPendingInstallmentsFn         func(ctx context.Context, asOf time.Time) ([]domain.Application, error)
}

var errNotImplemented = errors.New("loanmock: not implemented")

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationNumber(ctx context.Context, number string) (*domain.Application, error) {
	if m.GetByApplicationNumberFn != nil {
		return m.GetByApplicationNumberFn(ctx, number)
	}
	return nil, errNotImplemented
}

func (m *Repo) GetByApplicationNumberForUpdate(ctx context.Context, number string) (*domain.Application, error) {
	if m.GetByApplicationNumberForUpdateFn != nil {
		return m.GetByApplicationNumberForUpdateFn(ctx, number)
	}
	return nil, errNotImplemented
}

func (m *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return nil, errNotImplemented
}

func (m *Repo) ListPendingInstallments(ctx context.Context, asOf time.Time) ([]domain.Application, error) {
	if m.ListPendingInstallmentsFn != nil {
		return m.ListPendingInstallmentsFn(ctx, asOf)
	}
	return nil, errNotImplemented
}
