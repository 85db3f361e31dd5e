package itinerary_fx

import (
	"go.uber.org/fx"

	"itinero/internal/repositories"
	"itinero/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(tripRepo repositories.TripRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo)
}
