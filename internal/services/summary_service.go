package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"itinero/internal/models/entities"
	"itinero/internal/repositories"
	"itinero/pkg/utils"
)

type SummaryServiceInterface interface {
	SummarizeTrip(ctx context.Context, tripID string) (string, error)
}

type SummaryService struct {
	tripRepo repositories.TripRepository
	client   utils.NarrativeClientInterface
}

func NewSummaryService(tripRepo repositories.TripRepository, client utils.NarrativeClientInterface) SummaryServiceInterface {
	return &SummaryService{tripRepo: tripRepo, client: client}
}

func (s *SummaryService) SummarizeTrip(ctx context.Context, tripID string) (string, error) {
	trip, err := s.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return "", err
	}

	narrative, err := s.client.GenerateNarrative(ctx, FlattenTrip(*trip))
	if err != nil {
		if errors.Is(err, utils.ErrSummaryQuotaExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", utils.ErrSummaryFailed, err)
	}
	return narrative, nil
}

// FlattenTrip renders the trip as the deterministic text block handed to the
// narrative generator: a header line, optional overall notes, then one line
// per item with absent fields omitted.
func FlattenTrip(trip entities.Trip) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip to %s from %s to %s.\n",
		trip.Destination,
		utils.FormatDisplayDate(trip.StartDate),
		utils.FormatDisplayDate(trip.EndDate))
	if trip.Notes != "" {
		fmt.Fprintf(&b, "Overall trip notes: %s\n", trip.Notes)
	}
	b.WriteString("\nItinerary Items:\n")

	if len(trip.Items) == 0 {
		b.WriteString("No specific items listed for this trip.\n")
		return b.String()
	}
	for _, item := range trip.Items {
		fmt.Fprintf(&b, "- %s\n", flattenItem(item))
	}
	return b.String()
}

func flattenItem(item entities.ItineraryItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", item.Type.Display(), item.Title)
	if item.StartTime != "" {
		fmt.Fprintf(&b, " (Starts: %s", utils.FormatDisplayDateTime(item.StartTime))
		if item.EndTime != "" {
			fmt.Fprintf(&b, " - Ends: %s", utils.FormatDisplayDateTime(item.EndTime))
		}
		b.WriteString(")")
	}
	if item.Location != "" {
		fmt.Fprintf(&b, " at %s", item.Location)
	}
	if item.Description != "" {
		fmt.Fprintf(&b, ". Description: %s", item.Description)
	}
	if pairs := entities.DetailPairs(item.Details); len(pairs) > 0 {
		parts := make([]string, 0, len(pairs))
		for _, p := range pairs {
			parts = append(parts, p[0]+": "+p[1])
		}
		fmt.Fprintf(&b, ". Details: %s", strings.Join(parts, ", "))
	}
	return b.String()
}
