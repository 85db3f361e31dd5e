package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"itinero/cmd/fx/controllers_fx"
	"itinero/cmd/fx/itinerary_fx"
	"itinero/cmd/fx/store_fx"
	"itinero/cmd/fx/summary_fx"
	"itinero/cmd/fx/trip_fx"
	"itinero/internal/api/controllers"
	"itinero/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		store_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		summary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	itemsController *controllers.ItemsController,
	summaryController *controllers.SummaryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripsController, itemsController, summaryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	itemsController *controllers.ItemsController,
	summaryController *controllers.SummaryController) {

	trips := r.Group("/trips")
	trips.GET("", tripsController.ListTrips)
	trips.POST("", tripsController.CreateTrip)
	trips.GET("/:tripId", tripsController.GetTrip)
	trips.PUT("/:tripId", tripsController.UpdateTrip)
	trips.DELETE("/:tripId", tripsController.DeleteTrip)

	trips.POST("/:tripId/items", itemsController.AddItem)
	trips.PUT("/:tripId/items/:itemId", itemsController.UpdateItem)
	trips.DELETE("/:tripId/items/:itemId", itemsController.DeleteItem)

	trips.POST("/:tripId/summary", summaryController.SummarizeTrip)
}
