package request_models

import "itinero/internal/models/entities"

// SaveTripRequest is the payload for creating or updating a trip. Field-level
// constraints are checked by entities.ValidateTrip so failures come back as a
// per-field message map rather than a bind error.
type SaveTripRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Notes       string `json:"notes"`
	ImageURL    string `json:"imageUrl"`
}

func (r SaveTripRequest) ToEntity(id string) entities.Trip {
	return entities.Trip{
		ID:          id,
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Notes:       r.Notes,
		ImageURL:    r.ImageURL,
	}
}
