package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ecoandino/internal/config"
	"ecoandino/internal/models/db_models"
	"ecoandino/internal/models/request_models"
	"ecoandino/internal/models/response_models"
	"ecoandino/internal/repositories"
	"ecoandino/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	GetCategory(ctx context.Context, id int64) (*response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) (*response_models.DeleteResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *zap.Logger
	deleteGuard  bool
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cfg *config.Config, log *zap.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		log:          log.Named("category"),
		deleteGuard:  cfg.CategoryDeleteGuard,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.log, "list categories", err)
	}

	resp := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, *toCategoryResponse(&categories[i]))
	}
	return resp, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "get category", err)
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return toCategoryResponse(category), nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	category := &db_models.Category{
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Codigo:              req.Codigo,
		ColorIdentificacion: req.ColorIdentificacion,
		Icono:               req.Icono,
	}
	if req.OrdenDisplay != nil {
		category.OrdenDisplay = *req.OrdenDisplay
	}
	category.Activo = req.Activo == nil || *req.Activo

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if conflict := categoryConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, storageFailure(s.log, "create category", err)
	}

	s.log.Info("category created", zap.Int64("id", category.ID), zap.String("codigo", category.Codigo))
	return toCategoryResponse(category), nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error) {
	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailure(s.log, "get category", err)
	}
	if existing == nil {
		return nil, utils.ErrCategoryNotFound
	}

	updated, err := s.categoryRepo.Update(ctx, id, repositories.CategoryChanges{
		Nombre:              req.Nombre,
		Descripcion:         req.Descripcion,
		Codigo:              req.Codigo,
		ColorIdentificacion: req.ColorIdentificacion,
		Icono:               req.Icono,
		OrdenDisplay:        req.OrdenDisplay,
		Activo:              req.Activo,
	})
	if err != nil {
		if conflict := categoryConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, storageFailure(s.log, "update category", err)
	}
	// deleted between the check and the update
	if updated == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return toCategoryResponse(updated), nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) (*response_models.DeleteResponse, error) {
	if s.deleteGuard {
		count, err := s.categoryRepo.CountMaterials(ctx, id)
		if err != nil {
			return nil, storageFailure(s.log, "count category materials", err)
		}
		if count > 0 {
			return nil, utils.NewConflictError("La categoría todavía tiene %d materiales asociados", count)
		}
	}

	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, utils.ErrCategoryHasMaterials
		}
		return nil, storageFailure(s.log, "delete category", err)
	}
	if !deleted {
		return nil, utils.ErrCategoryNotFound
	}

	s.log.Info("category deleted", zap.Int64("id", id))
	return &response_models.DeleteResponse{
		ID:      id,
		Mensaje: fmt.Sprintf("Categoría %d eliminada correctamente", id),
	}, nil
}

func categoryConflict(err error) error {
	switch {
	case repositories.IsConstraint(err, repositories.ConstraintCategoryName):
		return utils.ErrCategoryNameTaken
	case repositories.IsConstraint(err, repositories.ConstraintCategoryCode):
		return utils.ErrCategoryCodeTaken
	}
	return nil
}
