package mysql

import (
	"context"

	schoolDomain "schooldekho-loan-service/internal/domain/school"

	"gorm.io/gorm"
)

type SchoolRepository struct{ db *gorm.DB }

func NewSchoolRepository(db *gorm.DB) *SchoolRepository { return &SchoolRepository{db: db} }

func (r *SchoolRepository) Create(ctx context.Context, s *schoolDomain.School) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SchoolRepository) GetBySchoolID(ctx context.Context, schoolID string) (*schoolDomain.School, error) {
	var out schoolDomain.School
	res := r.db.WithContext(ctx).Where("school_id = ?", schoolID).First(&out)
	return &out, res.Error
}
