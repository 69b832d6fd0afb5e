package repositories

import (
	"context"

	"gorm.io/gorm"

	"ecoandino/internal/models/db_models"
)

// DatabaseStats is what the connectivity probe reports.
type DatabaseStats struct {
	Version         string
	Categories      int64
	Materials       int64
	RecyclingPoints int64
}

type HealthRepository interface {
	Stats(ctx context.Context) (*DatabaseStats, error)
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Stats(ctx context.Context) (*DatabaseStats, error) {
	db := r.db.WithContext(ctx)
	stats := &DatabaseStats{}

	if err := db.Raw("SELECT version()").Scan(&stats.Version).Error; err != nil {
		return nil, translateError("database version", err)
	}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&db_models.Category{}, &stats.Categories},
		{&db_models.Material{}, &stats.Materials},
		{&db_models.RecyclingPoint{}, &stats.RecyclingPoints},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, translateError("database count", err)
		}
	}
	return stats, nil
}
