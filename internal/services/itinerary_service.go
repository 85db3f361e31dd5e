package services

import (
	"context"

	"itinero/internal/models/entities"
	"itinero/internal/repositories"
	"itinero/pkg/utils"
)

// ItineraryService mutates the itinerary of a single trip. Items are not
// independently addressable in the store: every operation is a read-modify-
// write of the owning trip's whole document, so concurrent writers to the
// same trip resolve last-write-wins.
type ItineraryServiceInterface interface {
	AddItem(ctx context.Context, tripID string, item entities.ItineraryItem) (*entities.ItineraryItem, error)
	UpdateItem(ctx context.Context, tripID string, item entities.ItineraryItem) (*entities.ItineraryItem, error)
	DeleteItem(ctx context.Context, tripID string, itemID string) error
}

type ItineraryService struct {
	tripRepo repositories.TripRepository
}

func NewItineraryService(tripRepo repositories.TripRepository) ItineraryServiceInterface {
	return &ItineraryService{tripRepo: tripRepo}
}

func (s *ItineraryService) AddItem(ctx context.Context, tripID string, item entities.ItineraryItem) (*entities.ItineraryItem, error) {
	if errs := entities.ValidateItem(item); errs != nil {
		return nil, errs
	}

	trip, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	item.ID = repositories.NewTripID()
	item = entities.NormalizeItem(item)
	trip.Items = entities.SortItems(append(trip.Items, item))

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ItineraryService) UpdateItem(ctx context.Context, tripID string, item entities.ItineraryItem) (*entities.ItineraryItem, error) {
	if errs := entities.ValidateItem(item); errs != nil {
		return nil, errs
	}

	trip, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for n := range trip.Items {
		if trip.Items[n].ID == item.ID {
			trip.Items[n] = entities.NormalizeItem(item)
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, utils.ErrItemNotFound
	}
	trip.Items = entities.SortItems(trip.Items)

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	item = entities.NormalizeItem(item)
	return &item, nil
}

func (s *ItineraryService) DeleteItem(ctx context.Context, tripID string, itemID string) error {
	trip, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}

	// Filtering keeps the survivors' relative order; no re-sort needed.
	kept := make([]entities.ItineraryItem, 0, len(trip.Items))
	for _, existing := range trip.Items {
		if existing.ID != itemID {
			kept = append(kept, existing)
		}
	}
	trip.Items = kept

	return s.tripRepo.SaveTrip(ctx, trip)
}
