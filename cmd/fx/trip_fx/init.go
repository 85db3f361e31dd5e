package trip_fx

import (
	"go.uber.org/fx"

	"itinero/internal/repositories"
	"itinero/internal/services"
)

var Module = fx.Provide(provideTripService)

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}
