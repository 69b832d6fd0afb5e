package category_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecoandino/internal/config"
	"ecoandino/internal/repositories"
	"ecoandino/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, cfg *config.Config, log *zap.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, cfg, log)
}
