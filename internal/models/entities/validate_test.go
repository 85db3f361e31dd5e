package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/internal/models/entities"
)

func validTrip() entities.Trip {
	return entities.Trip{
		Destination: "Paris",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-05",
	}
}

func TestValidateTrip_Valid(t *testing.T) {
	assert.Nil(t, entities.ValidateTrip(validTrip()))
}

func TestValidateTrip_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entities.Trip)
		field  string
	}{
		{"short destination", func(tr *entities.Trip) { tr.Destination = "P" }, "destination"},
		{"whitespace destination", func(tr *entities.Trip) { tr.Destination = "  a  " }, "destination"},
		{"missing start date", func(tr *entities.Trip) { tr.StartDate = "" }, "startDate"},
		{"missing end date", func(tr *entities.Trip) { tr.EndDate = "" }, "endDate"},
		{"unparseable start date", func(tr *entities.Trip) { tr.StartDate = "06/01/2024" }, "startDate"},
		{"end before start", func(tr *entities.Trip) { tr.EndDate = "2024-05-30" }, "endDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			tt.mutate(&trip)

			errs := entities.ValidateTrip(trip)

			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func validItem() entities.ItineraryItem {
	return entities.ItineraryItem{
		Type:      entities.ItemTypeFlight,
		Title:     "Flight to Paris",
		StartTime: "2024-06-01T08:00",
		EndTime:   "2024-06-01T10:30",
	}
}

func TestValidateItem_Valid(t *testing.T) {
	assert.Nil(t, entities.ValidateItem(validItem()))
}

func TestValidateItem_UnscheduledIsValid(t *testing.T) {
	item := entities.ItineraryItem{Type: entities.ItemTypeNote, Title: "Packing list"}
	assert.Nil(t, entities.ValidateItem(item))
}

func TestValidateItem_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entities.ItineraryItem)
		field  string
	}{
		{"short title", func(i *entities.ItineraryItem) { i.Title = "x" }, "title"},
		{"unknown type", func(i *entities.ItineraryItem) { i.Type = "cruise" }, "type"},
		{"bad start time", func(i *entities.ItineraryItem) { i.StartTime = "tomorrow" }, "startTime"},
		{"bad end time", func(i *entities.ItineraryItem) { i.EndTime = "2024-06-01" }, "endTime"},
		{"end before start", func(i *entities.ItineraryItem) { i.EndTime = "2024-06-01T07:00" }, "endTime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			errs := entities.ValidateItem(item)

			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateItem_DetailsMustMatchType(t *testing.T) {
	item := validItem()
	item.Type = entities.ItemTypeNote
	item.Details = entities.FlightDetails{Airline: "AF"}

	errs := entities.ValidateItem(item)

	require.NotNil(t, errs)
	assert.Contains(t, errs, "details")
}
