package config_fx

import (
	"go.uber.org/fx"

	"ecoandino/internal/config"
)

var Module = fx.Provide(config.Load)
