package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is the embedded base of every content row: an opaque string
// identifier plus timestamps. The identifier is assigned once at insert and
// never changes afterwards.
type Record struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate fills in the identifier unless the caller preset one.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
