package services

import (
	"context"

	"go.uber.org/zap"

	"ecoandino/internal/config"
	"ecoandino/internal/models/response_models"
	"ecoandino/internal/repositories"
)

type HealthServiceInterface interface {
	TestDatabase(ctx context.Context) (*response_models.DatabaseTestResponse, error)
	Info() *response_models.RootResponse
}

type HealthService struct {
	healthRepo repositories.HealthRepository
	log        *zap.Logger
	appName    string
	appVersion string
}

func NewHealthService(healthRepo repositories.HealthRepository, cfg *config.Config, log *zap.Logger) HealthServiceInterface {
	return &HealthService{
		healthRepo: healthRepo,
		log:        log.Named("health"),
		appName:    cfg.AppName,
		appVersion: cfg.AppVersion,
	}
}

func (s *HealthService) TestDatabase(ctx context.Context) (*response_models.DatabaseTestResponse, error) {
	stats, err := s.healthRepo.Stats(ctx)
	if err != nil {
		return nil, storageFailure(s.log, "database probe", err)
	}
	return &response_models.DatabaseTestResponse{
		Estado:  "conectado",
		Version: stats.Version,
		Tablas: response_models.TableCounts{
			Categorias:      stats.Categories,
			Materiales:      stats.Materials,
			PuntosReciclaje: stats.RecyclingPoints,
		},
	}, nil
}

func (s *HealthService) Info() *response_models.RootResponse {
	return &response_models.RootResponse{
		Nombre:  s.appName,
		Version: s.appVersion,
		Endpoints: map[string]string{
			"categorias":        "/categorias",
			"materiales":        "/materiales",
			"puntos_reciclaje":  "/puntos-reciclaje",
			"puntos_cercanos":   "/puntos-reciclaje/cercanos?lat={lat}&lng={lng}&radio={km}",
			"prueba_base_datos": "/database/test",
		},
	}
}
