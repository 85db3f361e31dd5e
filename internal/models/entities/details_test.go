package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/internal/models/entities"
)

func TestDecodeDetails_PicksVariantFromType(t *testing.T) {
	raw := json.RawMessage(`{"confirmationNumber":"ABC123","airline":"Air France","flightNumber":"AF123"}`)

	details, err := entities.DecodeDetails(entities.ItemTypeFlight, raw)

	require.NoError(t, err)
	flight, ok := details.(entities.FlightDetails)
	require.True(t, ok)
	assert.Equal(t, "Air France", flight.Airline)
	assert.Equal(t, "AF123", flight.FlightNumber)
	assert.Equal(t, "ABC123", flight.ConfirmationNumber)
}

func TestDecodeDetails_NilForMissingOrNull(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage("null")} {
		details, err := entities.DecodeDetails(entities.ItemTypeNote, raw)
		require.NoError(t, err)
		assert.Nil(t, details)
	}
}

func TestDecodeDetails_BlankBagCollapsesToNil(t *testing.T) {
	// Empty strings mean absent; a bag of blanks is no bag at all.
	raw := json.RawMessage(`{"confirmationNumber":"","address":"  ","checkInTime":""}`)

	details, err := entities.DecodeDetails(entities.ItemTypeAccommodation, raw)

	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestDecodeDetails_UnknownType(t *testing.T) {
	_, err := entities.DecodeDetails("cruise", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestItineraryItem_JSONRoundTrip(t *testing.T) {
	src := entities.ItineraryItem{
		ID:        "item-1",
		Type:      entities.ItemTypeRentalCar,
		Title:     "Pick up car",
		StartTime: "2024-06-02T09:00",
		Details: entities.RentalCarDetails{
			CommonDetails:  entities.CommonDetails{ConfirmationNumber: "R-42"},
			Company:        "Hertz",
			PickupLocation: "CDG Terminal 2",
		},
	}

	raw, err := json.Marshal(src)
	require.NoError(t, err)

	var got entities.ItineraryItem
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, src, got)
}

func TestNormalizeItem_TrimsAndCollapses(t *testing.T) {
	item := entities.NormalizeItem(entities.ItineraryItem{
		Type:        entities.ItemTypeActivity,
		Title:       "  Louvre  ",
		Location:    "   ",
		Description: " skip the line ",
		Details:     entities.ActivityDetails{Provider: "   "},
	})

	assert.Equal(t, "Louvre", item.Title)
	assert.Empty(t, item.Location)
	assert.Equal(t, "skip the line", item.Description)
	assert.Nil(t, item.Details)
}
