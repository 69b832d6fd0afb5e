package controllers_fx

import (
	"go.uber.org/fx"

	"ecoandino/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewMaterialController),
	fx.Provide(controllers.NewRecyclingPointsController),
	fx.Provide(controllers.NewHealthController))
