package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByApplicationNumber(ctx context.Context, number string) (*Application, error)
	// GetByApplicationNumberForUpdate takes a row lock inside a transaction.
	GetByApplicationNumberForUpdate(ctx context.Context, number string) (*Application, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Application, error)
	// ListPendingInstallments returns disbursed loans whose next EMI is due
	// at or before asOf.
	ListPendingInstallments(ctx context.Context, asOf time.Time) ([]Application, error)
}
