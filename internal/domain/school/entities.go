package school

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("school not found")

// School is the institution a loan application pays fees toward. Loans
// reference schools by public id; this service only reads them.
type School struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	SchoolID  string         `gorm:"size:36;uniqueIndex:ux_schools_school_id" json:"school_id"`
	Name      string         `gorm:"size:200" json:"name"`
	City      string         `gorm:"size:100" json:"city"`
	Board     string         `gorm:"size:50" json:"board"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (School) TableName() string { return "schools" }
