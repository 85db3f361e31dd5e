package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trip is the stored form of the aggregate. Dates are structured timestamps
// here; translation to the canonical string form happens in the repository.
type Trip struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Notes       string
	ImageURL    string
	CreatedAt   int64 `gorm:"autoCreateTime"`
	UpdatedAt   int64 `gorm:"autoUpdateTime"`

	Items []ItineraryItem `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
