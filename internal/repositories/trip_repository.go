package repositories

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"itinero/internal/models/entities"
)

// TripRepository is the persistence contract for Trip aggregates. Both
// backends (Postgres and the in-process store) implement the same semantics:
// whole-document overwrite on save, last write wins, no merging.
type TripRepository interface {
	// ListTrips returns every trip ordered by start date descending, items
	// always non-nil.
	ListTrips(ctx context.Context) ([]entities.Trip, error)
	// GetTrip returns utils.ErrTripNotFound for a missing id.
	GetTrip(ctx context.Context, id string) (*entities.Trip, error)
	// SaveTrip allocates an id when trip.ID is empty, applies the placeholder
	// image rule, normalizes and sorts items, and overwrites the stored
	// document wholesale. The passed trip is updated in place.
	SaveTrip(ctx context.Context, trip *entities.Trip) error
	// DeleteTrip removes the trip and its items. Deleting a missing id is not
	// an error.
	DeleteTrip(ctx context.Context, id string) error
}

// NewTripID allocates an identifier for a trip or item. Ids are assigned once
// and never reused.
func NewTripID() string { return uuid.New().String() }

// DefaultImageURL is the deterministic placeholder substituted when a trip has
// no image of its own.
func DefaultImageURL(destination string) string {
	return "https://placehold.co/600x400.png?text=" + url.QueryEscape(destination)
}

// prepareForSave applies the shared save-side rules: id allocation,
// normalization, placeholder image, item ordering.
func prepareForSave(trip *entities.Trip) {
	if trip.ID == "" {
		trip.ID = NewTripID()
	}
	*trip = entities.NormalizeTrip(*trip)
	if trip.ImageURL == "" {
		trip.ImageURL = DefaultImageURL(trip.Destination)
	}
	for n := range trip.Items {
		if trip.Items[n].ID == "" {
			trip.Items[n].ID = NewTripID()
		}
	}
	trip.Items = entities.SortItems(trip.Items)
}
