package controllers_fx

import (
	"go.uber.org/fx"

	"itinero/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewItemsController),
	fx.Provide(controllers.NewSummaryController))
