package db_models

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryItem rows belong to exactly one trip and are replaced as a set on
// every save. Position preserves the saved sequence so unscheduled items keep
// their relative order across loads.
type ItineraryItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	Type        string
	Title       string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    string
	Description string
	Details     []byte `gorm:"type:jsonb"`
}
