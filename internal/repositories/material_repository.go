package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ecoandino/internal/models/db_models"
)

// MaterialRow is a material joined with the display fields of its category.
type MaterialRow struct {
	Material        db_models.Material `gorm:"embedded"`
	CategoriaNombre string
	CategoriaColor  *string
	CategoriaIcono  *string
}

// AcceptedMaterial is a material as accepted by one recycling point.
type AcceptedMaterial struct {
	ID                   int64
	Nombre               string
	Codigo               *string
	Descripcion          *string
	PreparacionRequerida *string
	EsPeligroso          bool
	CategoriaNombre      string
	CategoriaColor       *string
	CategoriaIcono       *string
	Observaciones        *string
	CantidadMaxima       *float64
	HorarioEspecial      *string
}

type MaterialChanges struct {
	Nombre                 *string
	Codigo                 *string
	Descripcion            *string
	PreparacionRequerida   *string
	BeneficioAmbiental     *string
	RequiereManejoEspecial *bool
	Ejemplos               *string
	MaterialesNoAceptados  *string
	EsPeligroso            *bool
	CategoriaID            *int64
	Activo                 *bool
}

// MaterialRepository reads only active materials; FindByID, Update and
// Delete see every row.
type MaterialRepository interface {
	List(ctx context.Context, categoryID *int64) ([]MaterialRow, error)
	GetByID(ctx context.Context, id int64) (*MaterialRow, error)
	FindByID(ctx context.Context, id int64) (*db_models.Material, error)
	Create(ctx context.Context, material *db_models.Material) error
	Update(ctx context.Context, id int64, changes MaterialChanges) (*db_models.Material, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountAcceptingPoints(ctx context.Context, id int64) (int64, error)
	ListForPoint(ctx context.Context, pointID int64) ([]AcceptedMaterial, error)
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) withCategory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("materiales AS m").
		Select("m.*, c.nombre AS categoria_nombre, c.color_identificacion AS categoria_color, c.icono AS categoria_icono").
		Joins("JOIN categorias c ON c.id = m.categoria_id").
		Where("m.activo = ?", true)
}

// List returns active materials. Filtered by category they are ordered by
// name, otherwise by category display order and then name.
func (r *materialRepository) List(ctx context.Context, categoryID *int64) ([]MaterialRow, error) {
	query := r.withCategory(ctx)
	if categoryID != nil {
		query = query.Where("m.categoria_id = ?", *categoryID).Order("m.nombre")
	} else {
		query = query.Order("c.orden_display").Order("m.nombre")
	}

	rows := []MaterialRow{}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, translateError("material list", err)
	}
	return rows, nil
}

func (r *materialRepository) GetByID(ctx context.Context, id int64) (*MaterialRow, error) {
	var row MaterialRow
	result := r.withCategory(ctx).Where("m.id = ?", id).Limit(1).Scan(&row)
	if result.Error != nil {
		return nil, translateError("material get", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *materialRepository) FindByID(ctx context.Context, id int64) (*db_models.Material, error) {
	var material db_models.Material
	err := r.db.WithContext(ctx).First(&material, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("material find", err)
	}
	return &material, nil
}

func (r *materialRepository) Create(ctx context.Context, material *db_models.Material) error {
	return translateError("material create", r.db.WithContext(ctx).Create(material).Error)
}

func (r *materialRepository) Update(ctx context.Context, id int64, changes MaterialChanges) (*db_models.Material, error) {
	patch := NewPatch("materiales",
		"nombre", "codigo", "descripcion", "preparacion_requerida", "beneficio_ambiental",
		"requiere_manejo_especial", "ejemplos", "materiales_no_aceptados", "es_peligroso",
		"categoria_id", "activo")
	if err := errors.Join(
		Assign(patch, "nombre", changes.Nombre),
		Assign(patch, "codigo", changes.Codigo),
		Assign(patch, "descripcion", changes.Descripcion),
		Assign(patch, "preparacion_requerida", changes.PreparacionRequerida),
		Assign(patch, "beneficio_ambiental", changes.BeneficioAmbiental),
		Assign(patch, "requiere_manejo_especial", changes.RequiereManejoEspecial),
		Assign(patch, "ejemplos", changes.Ejemplos),
		Assign(patch, "materiales_no_aceptados", changes.MaterialesNoAceptados),
		Assign(patch, "es_peligroso", changes.EsPeligroso),
		Assign(patch, "categoria_id", changes.CategoriaID),
		Assign(patch, "activo", changes.Activo),
	); err != nil {
		return nil, err
	}
	if patch.Len() == 0 {
		return r.FindByID(ctx, id)
	}

	query, args := patch.Build(id, time.Now().Unix())
	var material db_models.Material
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&material)
	if result.Error != nil {
		return nil, translateError("material update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &material, nil
}

func (r *materialRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Material{}, "id = ?", id)
	if result.Error != nil {
		return false, translateError("material delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CountAcceptingPoints counts the points of any status that accept the
// material.
func (r *materialRepository) CountAcceptingPoints(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PointMaterial{}).
		Where("material_id = ? AND acepta = ?", id, true).
		Count(&count).Error
	if err != nil {
		return 0, translateError("material count points", err)
	}
	return count, nil
}

func (r *materialRepository) ListForPoint(ctx context.Context, pointID int64) ([]AcceptedMaterial, error) {
	materials := []AcceptedMaterial{}
	err := r.db.WithContext(ctx).
		Table("materiales AS m").
		Select(`m.id, m.nombre, m.codigo, m.descripcion, m.preparacion_requerida, m.es_peligroso,
			c.nombre AS categoria_nombre, c.color_identificacion AS categoria_color, c.icono AS categoria_icono,
			pm.observaciones, pm.cantidad_maxima, pm.horario_especial`).
		Joins("JOIN categorias c ON c.id = m.categoria_id").
		Joins("JOIN punto_materiales pm ON pm.material_id = m.id").
		Where("pm.punto_reciclaje_id = ? AND pm.acepta = ? AND m.activo = ?", pointID, true, true).
		Order("c.orden_display").
		Order("m.nombre").
		Scan(&materials).Error
	if err != nil {
		return nil, translateError("material list for point", err)
	}
	return materials, nil
}
