// Package entities holds the canonical Trip/ItineraryItem representation used
// by services, controllers and both storage backends. All dates and date-times
// are the canonical local wall-clock strings from pkg/utils; an empty string
// means the value is absent.
package entities

import (
	"encoding/json"
	"fmt"
)

type ItemType string

const (
	ItemTypeFlight        ItemType = "flight"
	ItemTypeAccommodation ItemType = "accommodation"
	ItemTypeActivity      ItemType = "activity"
	ItemTypeRentalCar     ItemType = "rental_car"
	ItemTypeNote          ItemType = "note"
)

var ItemTypes = []ItemType{
	ItemTypeFlight,
	ItemTypeAccommodation,
	ItemTypeActivity,
	ItemTypeRentalCar,
	ItemTypeNote,
}

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFlight, ItemTypeAccommodation, ItemTypeActivity, ItemTypeRentalCar, ItemTypeNote:
		return true
	}
	return false
}

// Display returns the capitalized label used in summaries, e.g. "Flight".
func (t ItemType) Display() string {
	switch t {
	case ItemTypeFlight:
		return "Flight"
	case ItemTypeAccommodation:
		return "Accommodation"
	case ItemTypeActivity:
		return "Activity"
	case ItemTypeRentalCar:
		return "Rental_car"
	case ItemTypeNote:
		return "Note"
	}
	return string(t)
}

// Trip is the aggregate: one document owning its items. Items are always kept
// in itinerary order (see SortItems).
type Trip struct {
	ID          string          `json:"id"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Notes       string          `json:"notes,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Items       []ItineraryItem `json:"items"`
}

type ItineraryItem struct {
	ID          string      `json:"id"`
	Type        ItemType    `json:"type"`
	Title       string      `json:"title"`
	StartTime   string      `json:"startTime,omitempty"`
	EndTime     string      `json:"endTime,omitempty"`
	Location    string      `json:"location,omitempty"`
	Description string      `json:"description,omitempty"`
	Details     ItemDetails `json:"details,omitempty"`
}

// Scheduled reports whether the item has a start time.
func (i ItineraryItem) Scheduled() bool { return i.StartTime != "" }

// UnmarshalJSON decodes the details bag into the variant matching the item
// type. The bag itself is a flat key set on the wire.
func (i *ItineraryItem) UnmarshalJSON(data []byte) error {
	type alias ItineraryItem
	aux := struct {
		*alias
		Details json.RawMessage `json:"details,omitempty"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	details, err := DecodeDetails(i.Type, aux.Details)
	if err != nil {
		return fmt.Errorf("item %q: %w", i.ID, err)
	}
	i.Details = details
	return nil
}

// Clone returns a deep copy so callers can mutate without sharing item slices.
func (t Trip) Clone() Trip {
	out := t
	out.Items = make([]ItineraryItem, len(t.Items))
	copy(out.Items, t.Items)
	return out
}
