package response_models

import "itinero/internal/models/entities"

// TripResponse is the list-view shape: trip fields plus an item count, no
// nested itinerary.
type TripResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Notes       string `json:"notes,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ItemCount   int    `json:"itemCount"`
}

func BuildTripResponse(trip entities.Trip) TripResponse {
	return TripResponse{
		ID:          trip.ID,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Notes:       trip.Notes,
		ImageURL:    trip.ImageURL,
		ItemCount:   len(trip.Items),
	}
}

// TripDetailResponse carries the full aggregate plus the timeline grouping
// the UI renders: one section per local calendar day, unscheduled items last.
type TripDetailResponse struct {
	ID          string                   `json:"id"`
	Destination string                   `json:"destination"`
	StartDate   string                   `json:"startDate"`
	EndDate     string                   `json:"endDate"`
	Notes       string                   `json:"notes,omitempty"`
	ImageURL    string                   `json:"imageUrl,omitempty"`
	Items       []entities.ItineraryItem `json:"items"`
	Days        []entities.DayGroup      `json:"days"`
}

func BuildTripDetailResponse(trip entities.Trip) TripDetailResponse {
	return TripDetailResponse{
		ID:          trip.ID,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Notes:       trip.Notes,
		ImageURL:    trip.ImageURL,
		Items:       trip.Items,
		Days:        entities.GroupItemsByDay(trip.Items),
	}
}

// SummaryResponse wraps the generated narrative.
type SummaryResponse struct {
	Narrative string `json:"narrative"`
}
