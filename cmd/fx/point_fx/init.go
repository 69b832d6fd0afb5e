package point_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecoandino/internal/repositories"
	"ecoandino/internal/services"
)

var Module = fx.Provide(
	providePointRepo, services.NewRecyclingPointService)

func providePointRepo(db *gorm.DB) repositories.RecyclingPointRepository {
	return repositories.NewRecyclingPointRepository(db)
}
