package services

import (
	"context"

	"itinero/internal/models/entities"
	"itinero/internal/models/response_models"
	"itinero/internal/repositories"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error)
	UpdateTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error)
	ListTrips(ctx context.Context) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, tripID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) CreateTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error) {
	if errs := entities.ValidateTrip(trip); errs != nil {
		return nil, errs
	}

	// New trips always start with a fresh id and an empty itinerary.
	trip.ID = ""
	trip.Items = []entities.ItineraryItem{}
	if err := s.tripRepo.SaveTrip(ctx, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, trip entities.Trip) (*entities.Trip, error) {
	if errs := entities.ValidateTrip(trip); errs != nil {
		return nil, errs
	}

	existing, err := s.tripRepo.GetTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	// Editing a trip touches its own fields only; the itinerary is managed
	// through the item operations.
	trip.Items = existing.Items
	if err := s.tripRepo.SaveTrip(ctx, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

func (s *TripService) ListTrips(ctx context.Context) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.BuildTripResponse(trip))
	}
	return out, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	out := response_models.BuildTripDetailResponse(*trip)
	return &out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	return s.tripRepo.DeleteTrip(ctx, tripID)
}
