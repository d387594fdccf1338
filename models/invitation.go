package models

import (
	"time"

	"gorm.io/gorm"
)

// Invitation is a single-use, expiring signup token binding a role
// (and optionally an email) to a future account. Redemption sets
// UsedAt/UsedBy at most once; the `used_at IS NULL` predicate at
// redemption time is what enforces single use.
type Invitation struct {
	gorm.Model
	Code      string `gorm:"uniqueIndex;not null;size:64"`
	Email     string
	Role      string `gorm:"size:20;not null"`
	CreatedBy *uint
	ExpiresAt time.Time `gorm:"index;not null"`
	UsedAt    *time.Time
	UsedBy    *uint
}
