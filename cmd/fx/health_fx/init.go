package health_fx

import (
	"go.uber.org/fx"

	"ecoandino/internal/repositories"
	"ecoandino/internal/services"
)

var Module = fx.Provide(
	repositories.NewHealthRepository, services.NewHealthService)
