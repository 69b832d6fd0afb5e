package material_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecoandino/internal/repositories"
	"ecoandino/internal/services"
)

var Module = fx.Provide(
	provideMaterialRepo, services.NewMaterialService)

func provideMaterialRepo(db *gorm.DB) repositories.MaterialRepository {
	return repositories.NewMaterialRepository(db)
}
