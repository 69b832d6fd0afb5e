package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ecoandino/internal/models/db_models"
)

// CategoryChanges holds the optional fields of a partial category update.
// A nil field is left untouched.
type CategoryChanges struct {
	Nombre              *string
	Descripcion         *string
	Codigo              *string
	ColorIdentificacion *string
	Icono               *string
	OrdenDisplay        *int
	Activo              *bool
}

type CategoryRepository interface {
	List(ctx context.Context) ([]db_models.Category, error)
	GetByID(ctx context.Context, id int64) (*db_models.Category, error)
	Create(ctx context.Context, category *db_models.Category) error
	Update(ctx context.Context, id int64, changes CategoryChanges) (*db_models.Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountMaterials(ctx context.Context, id int64) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]db_models.Category, error) {
	categories := []db_models.Category{}
	err := r.db.WithContext(ctx).
		Order("orden_display").
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, translateError("category list", err)
	}
	return categories, nil
}

// GetByID returns (nil, nil) when no category has the id.
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("category get", err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return translateError("category create", r.db.WithContext(ctx).Create(category).Error)
}

// Update applies the non-nil fields in one statement and returns the
// resulting row, or (nil, nil) when the id does not exist. With no fields
// set it returns the current row.
func (r *categoryRepository) Update(ctx context.Context, id int64, changes CategoryChanges) (*db_models.Category, error) {
	patch := NewPatch("categorias",
		"nombre", "descripcion", "codigo", "color_identificacion", "icono", "orden_display", "activo")
	if err := errors.Join(
		Assign(patch, "nombre", changes.Nombre),
		Assign(patch, "descripcion", changes.Descripcion),
		Assign(patch, "codigo", changes.Codigo),
		Assign(patch, "color_identificacion", changes.ColorIdentificacion),
		Assign(patch, "icono", changes.Icono),
		Assign(patch, "orden_display", changes.OrdenDisplay),
		Assign(patch, "activo", changes.Activo),
	); err != nil {
		return nil, err
	}
	if patch.Len() == 0 {
		return r.GetByID(ctx, id)
	}

	query, args := patch.Build(id, time.Now().Unix())
	var category db_models.Category
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&category)
	if result.Error != nil {
		return nil, translateError("category update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &category, nil
}

// Delete reports whether a row was removed.
func (r *categoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id)
	if result.Error != nil {
		return false, translateError("category delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *categoryRepository) CountMaterials(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Material{}).
		Where("categoria_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, translateError("category count materials", err)
	}
	return count, nil
}
