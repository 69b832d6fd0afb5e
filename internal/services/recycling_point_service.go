package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"ecoandino/internal/config"
	"ecoandino/internal/models/db_models"
	"ecoandino/internal/models/request_models"
	"ecoandino/internal/models/response_models"
	"ecoandino/internal/repositories"
	"ecoandino/pkg/geo"
	"ecoandino/pkg/utils"
)

type RecyclingPointServiceInterface interface {
	ListPoints(ctx context.Context, city *string) ([]response_models.RecyclingPointResponse, error)
	GetPoint(ctx context.Context, id int64) (*response_models.RecyclingPointResponse, error)
	FindNearby(ctx context.Context, lat, lng float64, radiusKm *float64) (*response_models.NearbySearchResponse, error)
	MaterialsForPoint(ctx context.Context, id int64) (*response_models.PointMaterialsResponse, error)
	CreatePoint(ctx context.Context, req request_models.CreateRecyclingPointRequest) (*response_models.RecyclingPointResponse, error)
	UpdatePoint(ctx context.Context, id int64, req request_models.UpdateRecyclingPointRequest) (*response_models.RecyclingPointResponse, error)
	DeletePoint(ctx context.Context, id int64) (*response_models.DeleteResponse, error)
	SetMaterial(ctx context.Context, pointID, materialID int64, req request_models.SetPointMaterialRequest) (*response_models.PointMaterialResponse, error)
	RemoveMaterial(ctx context.Context, pointID, materialID int64) (*response_models.DeleteResponse, error)
}

type RecyclingPointService struct {
	pointRepo     repositories.RecyclingPointRepository
	materialRepo  repositories.MaterialRepository
	log           *zap.Logger
	defaultRadius float64
}

func NewRecyclingPointService(
	pointRepo repositories.RecyclingPointRepository,
	materialRepo repositories.MaterialRepository,
	cfg *config.Config,
	log *zap.Logger,
) RecyclingPointServiceInterface {
	return &RecyclingPointService{
		pointRepo:     pointRepo,
		materialRepo:  materialRepo,
		log:           log.Named("recycling_point"),
		defaultRadius: cfg.DefaultSearchRadiusKm,
	}
}

func (s *RecyclingPointService) ListPoints(ctx context.Context, city *string) ([]response_models.RecyclingPointResponse, error) {
	rows, err := s.pointRepo.List(ctx, city)
	if err != nil {
		return nil, storageFailure(s.log, "list points", err)
	}

	resp := make([]response_models.RecyclingPointResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *pointRowResponse(&rows[i]))
	}
	return resp, nil
}

func (s *RecyclingPointService) GetPoint(ctx context.Context, id int64) (*response_models.RecyclingPointResponse, error) {
	point, err := s.pointRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "get point", err)
	}
	if point == nil {
		return nil, utils.ErrRecyclingPointNotFound
	}
	return toPointResponse(point), nil
}

// FindNearby returns the active points whose distance, rounded to two
// decimals, is within the radius, nearest first. The database only narrows
// the candidates to a bounding box; distances are measured here.
func (s *RecyclingPointService) FindNearby(ctx context.Context, lat, lng float64, radiusKm *float64) (*response_models.NearbySearchResponse, error) {
	radius := s.defaultRadius
	if radiusKm != nil {
		radius = *radiusKm
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, utils.ErrInvalidRadius
	}
	origin := geo.Point{Lat: lat, Lng: lng}
	if !geo.ValidCoordinates(origin) {
		return nil, utils.ErrInvalidCoordinates
	}

	candidates, err := s.pointRepo.ListCandidates(ctx, geo.BoundingBoxAround(origin, radius))
	if err != nil {
		return nil, storageFailure(s.log, "list nearby candidates", err)
	}

	matches := geo.WithinRadius(origin, radius, candidates, func(row repositories.PointRow) geo.Point {
		return geo.Point{Lat: row.Point.Latitud, Lng: row.Point.Longitud}
	})

	points := make([]response_models.RecyclingPointResponse, 0, len(matches))
	for i := range matches {
		point := pointRowResponse(&matches[i].Item)
		distance := matches[i].DistanceKm
		point.DistanciaKm = &distance
		points = append(points, *point)
	}

	s.log.Debug("nearby search",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Float64("radius_km", radius),
		zap.Int("candidates", len(candidates)),
		zap.Int("found", len(points)))

	return &response_models.NearbySearchResponse{
		UbicacionBusqueda: response_models.SearchLocation{
			Latitud:  lat,
			Longitud: lng,
			RadioKm:  radius,
		},
		PuntosEncontrados: len(points),
		Puntos:            points,
	}, nil
}

func (s *RecyclingPointService) MaterialsForPoint(ctx context.Context, id int64) (*response_models.PointMaterialsResponse, error) {
	point, err := s.GetPoint(ctx, id)
	if err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.ListForPoint(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "list materials for point", err)
	}

	accepted := make([]response_models.AcceptedMaterialResponse, 0, len(materials))
	for _, m := range materials {
		accepted = append(accepted, toAcceptedMaterialResponse(m))
	}
	return &response_models.PointMaterialsResponse{
		PuntoReciclaje:      *point,
		TotalMateriales:     len(accepted),
		MaterialesAceptados: accepted,
	}, nil
}

func (s *RecyclingPointService) CreatePoint(ctx context.Context, req request_models.CreateRecyclingPointRequest) (*response_models.RecyclingPointResponse, error) {
	if req.Latitud == nil || req.Longitud == nil ||
		!geo.ValidCoordinates(geo.Point{Lat: *req.Latitud, Lng: *req.Longitud}) {
		return nil, utils.ErrInvalidCoordinates
	}

	estado := db_models.PointStatusActive
	if req.Estado != nil {
		estado = *req.Estado
	}
	if !db_models.ValidPointStatus(estado) {
		return nil, utils.ErrInvalidPointStatus
	}

	apertura, err := normalizeClock(req.HorarioApertura)
	if err != nil {
		return nil, err
	}
	cierre, err := normalizeClock(req.HorarioCierre)
	if err != nil {
		return nil, err
	}

	point := &db_models.RecyclingPoint{
		Nombre:          req.Nombre,
		Direccion:       req.Direccion,
		Ciudad:          req.Ciudad,
		Latitud:         *req.Latitud,
		Longitud:        *req.Longitud,
		TipoInstalacion: req.TipoInstalacion,
		HorarioApertura: apertura,
		HorarioCierre:   cierre,
		Telefono:        req.Telefono,
		Email:           req.Email,
		Estado:          estado,
	}
	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, storageFailure(s.log, "create point", err)
	}

	s.log.Info("recycling point created", zap.Int64("id", point.ID), zap.String("ciudad", point.Ciudad))
	return toPointResponse(point), nil
}

func (s *RecyclingPointService) UpdatePoint(ctx context.Context, id int64, req request_models.UpdateRecyclingPointRequest) (*response_models.RecyclingPointResponse, error) {
	existing, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "find point", err)
	}
	if existing == nil {
		return nil, utils.ErrRecyclingPointNotFound
	}

	merged := geo.Point{Lat: existing.Latitud, Lng: existing.Longitud}
	if req.Latitud != nil {
		merged.Lat = *req.Latitud
	}
	if req.Longitud != nil {
		merged.Lng = *req.Longitud
	}
	if !geo.ValidCoordinates(merged) {
		return nil, utils.ErrInvalidCoordinates
	}
	if req.Estado != nil && !db_models.ValidPointStatus(*req.Estado) {
		return nil, utils.ErrInvalidPointStatus
	}
	apertura, err := normalizeClock(req.HorarioApertura)
	if err != nil {
		return nil, err
	}
	cierre, err := normalizeClock(req.HorarioCierre)
	if err != nil {
		return nil, err
	}

	updated, err := s.pointRepo.Update(ctx, id, repositories.PointChanges{
		Nombre:          req.Nombre,
		Direccion:       req.Direccion,
		Ciudad:          req.Ciudad,
		Latitud:         req.Latitud,
		Longitud:        req.Longitud,
		TipoInstalacion: req.TipoInstalacion,
		HorarioApertura: apertura,
		HorarioCierre:   cierre,
		Telefono:        req.Telefono,
		Email:           req.Email,
		Estado:          req.Estado,
	})
	if err != nil {
		return nil, storageFailure(s.log, "update point", err)
	}
	if updated == nil {
		return nil, utils.ErrRecyclingPointNotFound
	}
	return toPointResponse(updated), nil
}

func (s *RecyclingPointService) DeletePoint(ctx context.Context, id int64) (*response_models.DeleteResponse, error) {
	deleted, err := s.pointRepo.Delete(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "delete point", err)
	}
	if !deleted {
		return nil, utils.ErrRecyclingPointNotFound
	}

	s.log.Info("recycling point deleted", zap.Int64("id", id))
	return &response_models.DeleteResponse{
		ID:      id,
		Mensaje: fmt.Sprintf("Punto de reciclaje %d eliminado correctamente", id),
	}, nil
}

// SetMaterial creates or replaces the link between a point and a material.
func (s *RecyclingPointService) SetMaterial(ctx context.Context, pointID, materialID int64, req request_models.SetPointMaterialRequest) (*response_models.PointMaterialResponse, error) {
	point, err := s.pointRepo.FindByID(ctx, pointID)
	if err != nil {
		return nil, storageFailure(s.log, "find point", err)
	}
	if point == nil {
		return nil, utils.ErrRecyclingPointNotFound
	}
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, storageFailure(s.log, "find material", err)
	}
	if material == nil {
		return nil, utils.ErrMaterialNotFound
	}

	link := &db_models.PointMaterial{
		PuntoReciclajeID: pointID,
		MaterialID:       materialID,
		Acepta:           req.Acepta == nil || *req.Acepta,
		Observaciones:    req.Observaciones,
		CantidadMaxima:   req.CantidadMaxima,
		HorarioEspecial:  req.HorarioEspecial,
	}
	if err := s.pointRepo.UpsertMaterial(ctx, link); err != nil {
		switch {
		case repositories.IsConstraint(err, repositories.ConstraintPointLink):
			return nil, utils.ErrRecyclingPointNotFound
		case repositories.IsConstraint(err, repositories.ConstraintMaterialLink):
			return nil, utils.ErrMaterialNotFound
		}
		return nil, storageFailure(s.log, "upsert point material", err)
	}
	return toPointMaterialResponse(link), nil
}

func (s *RecyclingPointService) RemoveMaterial(ctx context.Context, pointID, materialID int64) (*response_models.DeleteResponse, error) {
	removed, err := s.pointRepo.RemoveMaterial(ctx, pointID, materialID)
	if err != nil {
		return nil, storageFailure(s.log, "remove point material", err)
	}
	if !removed {
		return nil, utils.ErrPointMaterialNotFound
	}
	return &response_models.DeleteResponse{
		ID:      materialID,
		Mensaje: fmt.Sprintf("Material %d desvinculado del punto de reciclaje %d", materialID, pointID),
	}, nil
}

// normalizeClock accepts "HH:MM" or "HH:MM:SS" and stores "HH:MM".
func normalizeClock(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, *value); err == nil {
			normalized := t.Format("15:04")
			return &normalized, nil
		}
	}
	return nil, utils.ErrInvalidSchedule
}
