package controllers_fx

import (
	"go.uber.org/fx"

	"dreamtrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewHealthController))
