package seed

import (
	"context"

	schoolDomain "schooldekho-loan-service/internal/domain/school"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SchoolsOnceIfEmpty inserts a small development catalog when the schools
// table is empty. Production deployments manage schools elsewhere; this only
// keeps a fresh local stack usable.
func SchoolsOnceIfEmpty(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&schoolDomain.School{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	schools := []schoolDomain.School{
		{SchoolID: uuid.NewString(), Name: "Green Valley Public School", City: "Pune", Board: "CBSE"},
		{SchoolID: uuid.NewString(), Name: "St. Xavier's High School", City: "Mumbai", Board: "ICSE"},
		{SchoolID: uuid.NewString(), Name: "Delhi Public School", City: "Delhi", Board: "CBSE"},
		{SchoolID: uuid.NewString(), Name: "National Model School", City: "Chennai", Board: "State"},
	}
	if err := db.WithContext(ctx).Create(&schools).Error; err != nil {
		return err
	}
	log.Infof("seeded %d schools", len(schools))
	return nil
}
