package schoolmock

import (
	"context"
	"errors"

	domain "schooldekho-loan-service/internal/domain/school"
)

// Repo is a function-backed mock that satisfies school.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, s *domain.School) error
	GetBySchoolIDFn func(ctx context.Context, schoolID string) (*domain.School, error)
}

var errNotImplemented = errors.New("schoolmock: not implemented")

func (m *Repo) Create(ctx context.Context, s *domain.School) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySchoolID(ctx context.Context, schoolID string) (*domain.School, error) {
	if m.GetBySchoolIDFn != nil {
		return m.GetBySchoolIDFn(ctx, schoolID)
	}
	return nil, errNotImplemented
}
