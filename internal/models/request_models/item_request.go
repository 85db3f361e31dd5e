package request_models

import (
	"encoding/json"

	"itinero/internal/models/entities"
	"itinero/pkg/utils"
)

// SaveItemRequest is the payload for adding or updating an itinerary item.
// Details arrive as the flat attribute bag; the variant is picked from Type.
type SaveItemRequest struct {
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	StartTime   string          `json:"startTime"`
	EndTime     string          `json:"endTime"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Details     json.RawMessage `json:"details"`
}

func (r SaveItemRequest) ToEntity(id string) (entities.ItineraryItem, error) {
	item := entities.ItineraryItem{
		ID:          id,
		Type:        entities.ItemType(r.Type),
		Title:       r.Title,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Description: r.Description,
	}
	// An unknown type is reported by ValidateItem; only decode the bag when
	// the variant is known.
	if item.Type.Valid() && len(r.Details) > 0 {
		details, err := entities.DecodeDetails(item.Type, r.Details)
		if err != nil {
			return entities.ItineraryItem{}, utils.FieldErrors{"details": err.Error()}
		}
		item.Details = details
	}
	return item, nil
}
