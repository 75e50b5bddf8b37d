package school

import "context"

type Repository interface {
	Create(ctx context.Context, s *School) error
	GetBySchoolID(ctx context.Context, schoolID string) (*School, error)
}
