package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ecoandino/internal/models/db_models"
	"ecoandino/internal/models/request_models"
	"ecoandino/internal/models/response_models"
	"ecoandino/internal/repositories"
	"ecoandino/pkg/utils"
)

type MaterialServiceInterface interface {
	ListMaterials(ctx context.Context, categoryID *int64) ([]response_models.MaterialResponse, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]response_models.MaterialResponse, error)
	GetMaterial(ctx context.Context, id int64) (*response_models.MaterialResponse, error)
	CreateMaterial(ctx context.Context, req request_models.CreateMaterialRequest) (*response_models.MaterialResponse, error)
	UpdateMaterial(ctx context.Context, id int64, req request_models.UpdateMaterialRequest) (*response_models.MaterialResponse, error)
	DeleteMaterial(ctx context.Context, id int64) (*response_models.DeleteResponse, error)
	PointsForMaterial(ctx context.Context, id int64) (*response_models.MaterialPointsResponse, error)
}

type MaterialService struct {
	materialRepo repositories.MaterialRepository
	categoryRepo repositories.CategoryRepository
	pointRepo    repositories.RecyclingPointRepository
	log          *zap.Logger
}

func NewMaterialService(
	materialRepo repositories.MaterialRepository,
	categoryRepo repositories.CategoryRepository,
	pointRepo repositories.RecyclingPointRepository,
	log *zap.Logger,
) MaterialServiceInterface {
	return &MaterialService{
		materialRepo: materialRepo,
		categoryRepo: categoryRepo,
		pointRepo:    pointRepo,
		log:          log.Named("material"),
	}
}

func (s *MaterialService) ListMaterials(ctx context.Context, categoryID *int64) ([]response_models.MaterialResponse, error) {
	rows, err := s.materialRepo.List(ctx, categoryID)
	if err != nil {
		return nil, storageFailure(s.log, "list materials", err)
	}

	resp := make([]response_models.MaterialResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *materialRowResponse(&rows[i]))
	}
	return resp, nil
}

// ListByCategory does not tell an unknown category apart from one without
// active materials: both are not found.
func (s *MaterialService) ListByCategory(ctx context.Context, categoryID int64) ([]response_models.MaterialResponse, error) {
	materials, err := s.ListMaterials(ctx, &categoryID)
	if err != nil {
		return nil, err
	}
	if len(materials) == 0 {
		return nil, utils.ErrNoMaterialsForCategory
	}
	return materials, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, id int64) (*response_models.MaterialResponse, error) {
	row, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "get material", err)
	}
	if row == nil {
		return nil, utils.ErrMaterialNotFound
	}
	return materialRowResponse(row), nil
}

func (s *MaterialService) CreateMaterial(ctx context.Context, req request_models.CreateMaterialRequest) (*response_models.MaterialResponse, error) {
	if req.CategoriaID == nil {
		return nil, utils.ErrMaterialCategoryRequired
	}
	category, err := s.requireCategory(ctx, *req.CategoriaID)
	if err != nil {
		return nil, err
	}

	material := &db_models.Material{
		Nombre:                 req.Nombre,
		Codigo:                 req.Codigo,
		Descripcion:            req.Descripcion,
		PreparacionRequerida:   req.PreparacionRequerida,
		BeneficioAmbiental:     req.BeneficioAmbiental,
		RequiereManejoEspecial: req.RequiereManejoEspecial != nil && *req.RequiereManejoEspecial,
		Ejemplos:               req.Ejemplos,
		MaterialesNoAceptados:  req.MaterialesNoAceptados,
		EsPeligroso:            req.EsPeligroso != nil && *req.EsPeligroso,
		CategoriaID:            category.ID,
		Activo:                 req.Activo == nil || *req.Activo,
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		if mapped := materialWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, storageFailure(s.log, "create material", err)
	}

	s.log.Info("material created", zap.Int64("id", material.ID), zap.Int64("categoria_id", material.CategoriaID))
	return withCategory(toMaterialResponse(material), category), nil
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id int64, req request_models.UpdateMaterialRequest) (*response_models.MaterialResponse, error) {
	existing, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "find material", err)
	}
	if existing == nil {
		return nil, utils.ErrMaterialNotFound
	}
	var category *db_models.Category
	if req.CategoriaID != nil {
		if category, err = s.requireCategory(ctx, *req.CategoriaID); err != nil {
			return nil, err
		}
	}

	updated, err := s.materialRepo.Update(ctx, id, repositories.MaterialChanges{
		Nombre:                 req.Nombre,
		Codigo:                 req.Codigo,
		Descripcion:            req.Descripcion,
		PreparacionRequerida:   req.PreparacionRequerida,
		BeneficioAmbiental:     req.BeneficioAmbiental,
		RequiereManejoEspecial: req.RequiereManejoEspecial,
		Ejemplos:               req.Ejemplos,
		MaterialesNoAceptados:  req.MaterialesNoAceptados,
		EsPeligroso:            req.EsPeligroso,
		CategoriaID:            req.CategoriaID,
		Activo:                 req.Activo,
	})
	if err != nil {
		if mapped := materialWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, storageFailure(s.log, "update material", err)
	}
	if updated == nil {
		return nil, utils.ErrMaterialNotFound
	}
	if category == nil {
		if category, err = s.categoryRepo.GetByID(ctx, updated.CategoriaID); err != nil {
			return nil, storageFailure(s.log, "get category", err)
		}
	}
	return withCategory(toMaterialResponse(updated), category), nil
}

// DeleteMaterial refuses while any point accepts the material. Links that
// only record "not accepted" are removed along with it.
func (s *MaterialService) DeleteMaterial(ctx context.Context, id int64) (*response_models.DeleteResponse, error) {
	existing, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "find material", err)
	}
	if existing == nil {
		return nil, utils.ErrMaterialNotFound
	}

	accepting, err := s.materialRepo.CountAcceptingPoints(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "count accepting points", err)
	}
	if accepting > 0 {
		return nil, utils.NewConflictError("El material es aceptado por %d puntos de reciclaje", accepting)
	}

	deleted, err := s.materialRepo.Delete(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "delete material", err)
	}
	if !deleted {
		return nil, utils.ErrMaterialNotFound
	}

	s.log.Info("material deleted", zap.Int64("id", id))
	return &response_models.DeleteResponse{
		ID:      id,
		Mensaje: fmt.Sprintf("Material %d eliminado correctamente", id),
	}, nil
}

func (s *MaterialService) PointsForMaterial(ctx context.Context, id int64) (*response_models.MaterialPointsResponse, error) {
	material, err := s.GetMaterial(ctx, id)
	if err != nil {
		return nil, err
	}

	points, err := s.pointRepo.ListForMaterial(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "list points for material", err)
	}

	accepting := make([]response_models.AcceptingPointResponse, 0, len(points))
	for _, p := range points {
		accepting = append(accepting, toAcceptingPointResponse(p))
	}
	return &response_models.MaterialPointsResponse{
		Material:         *material,
		TotalPuntos:      len(accepting),
		PuntosQueAceptan: accepting,
	}, nil
}

func (s *MaterialService) requireCategory(ctx context.Context, id int64) (*db_models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "get category", err)
	}
	if category == nil {
		return nil, utils.ErrMaterialCategoryNotExist
	}
	return category, nil
}

func materialWriteError(err error) error {
	switch {
	case repositories.IsConstraint(err, repositories.ConstraintMaterialName):
		return utils.ErrMaterialNameTaken
	case repositories.IsConstraint(err, repositories.ConstraintMaterialCode):
		return utils.ErrMaterialCodeTaken
	case repositories.IsConstraint(err, repositories.ConstraintMaterialCategory):
		return utils.ErrMaterialCategoryNotExist
	}
	return nil
}
