package store_fx

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"itinero/internal/infra"
	"itinero/internal/repositories"
)

var Module = fx.Provide(provideTripRepository)

// provideTripRepository picks the backend from STORAGE_BACKEND: "memory" for
// the in-process store, anything else for Postgres.
func provideTripRepository(lc fx.Lifecycle) repositories.TripRepository {
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), "memory") {
		log.Println("Using in-memory trip store")
		return repositories.NewMemoryTripRepository(repositories.NewMemoryStore())
	}

	db := infra.InitPostgresql()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return repositories.NewGormTripRepository(db)
}
