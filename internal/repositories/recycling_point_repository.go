package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecoandino/internal/models/db_models"
	"ecoandino/pkg/geo"
)

// PointRow is an active recycling point with the number of materials it
// accepts.
type PointRow struct {
	Point                    db_models.RecyclingPoint `gorm:"embedded"`
	TotalMaterialesAceptados int64
}

// AcceptingPoint is a recycling point as seen from one material it accepts.
type AcceptingPoint struct {
	ID              int64
	Nombre          string
	Direccion       string
	Ciudad          string
	Latitud         float64
	Longitud        float64
	TipoInstalacion string
	HorarioApertura *string
	HorarioCierre   *string
	Telefono        *string
	Email           *string
	Observaciones   *string
	CantidadMaxima  *float64
	HorarioEspecial *string
}

type PointChanges struct {
	Nombre          *string
	Direccion       *string
	Ciudad          *string
	Latitud         *float64
	Longitud        *float64
	TipoInstalacion *string
	HorarioApertura *string
	HorarioCierre   *string
	Telefono        *string
	Email           *string
	Estado          *string
}

// RecyclingPointRepository reads only points whose estado is "activo";
// FindByID, Update and Delete see every row.
type RecyclingPointRepository interface {
	List(ctx context.Context, city *string) ([]PointRow, error)
	ListCandidates(ctx context.Context, box geo.BoundingBox) ([]PointRow, error)
	GetByID(ctx context.Context, id int64) (*db_models.RecyclingPoint, error)
	FindByID(ctx context.Context, id int64) (*db_models.RecyclingPoint, error)
	Create(ctx context.Context, point *db_models.RecyclingPoint) error
	Update(ctx context.Context, id int64, changes PointChanges) (*db_models.RecyclingPoint, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListForMaterial(ctx context.Context, materialID int64) ([]AcceptingPoint, error)
	UpsertMaterial(ctx context.Context, link *db_models.PointMaterial) error
	RemoveMaterial(ctx context.Context, pointID, materialID int64) (bool, error)
}

type recyclingPointRepository struct {
	db *gorm.DB
}

func NewRecyclingPointRepository(db *gorm.DB) RecyclingPointRepository {
	return &recyclingPointRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *recyclingPointRepository) withAcceptedCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("puntos_reciclaje AS p").
		Select("p.*, COUNT(pm.material_id) AS total_materiales_aceptados").
		Joins("LEFT JOIN punto_materiales pm ON pm.punto_reciclaje_id = p.id AND pm.acepta = ?", true).
		Where("p.estado = ?", db_models.PointStatusActive).
		Group("p.id")
}

// List returns active points. A city filter matches case-insensitive
// substrings and orders by name; without it points are ordered by city and
// name.
func (r *recyclingPointRepository) List(ctx context.Context, city *string) ([]PointRow, error) {
	query := r.withAcceptedCount(ctx)
	if city != nil {
		query = query.Where(`p.ciudad ILIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(*city)+"%").
			Order("p.nombre")
	} else {
		query = query.Order("p.ciudad").Order("p.nombre")
	}

	rows := []PointRow{}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, translateError("point list", err)
	}
	return rows, nil
}

// ListCandidates returns the active points inside box ordered by id. The
// caller still has to measure the exact distance.
func (r *recyclingPointRepository) ListCandidates(ctx context.Context, box geo.BoundingBox) ([]PointRow, error) {
	query := r.withAcceptedCount(ctx).
		Where("p.latitud BETWEEN ? AND ?", box.MinLat, box.MaxLat)
	if box.LngBounded {
		query = query.Where("p.longitud BETWEEN ? AND ?", box.MinLng, box.MaxLng)
	}

	rows := []PointRow{}
	if err := query.Order("p.id").Scan(&rows).Error; err != nil {
		return nil, translateError("point candidates", err)
	}
	return rows, nil
}

func (r *recyclingPointRepository) GetByID(ctx context.Context, id int64) (*db_models.RecyclingPoint, error) {
	return r.first(ctx, "point get", "id = ? AND estado = ?", id, db_models.PointStatusActive)
}

func (r *recyclingPointRepository) FindByID(ctx context.Context, id int64) (*db_models.RecyclingPoint, error) {
	return r.first(ctx, "point find", "id = ?", id)
}

func (r *recyclingPointRepository) first(ctx context.Context, op string, query string, args ...interface{}) (*db_models.RecyclingPoint, error) {
	var point db_models.RecyclingPoint
	err := r.db.WithContext(ctx).Where(query, args...).First(&point).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(op, err)
	}
	return &point, nil
}

func (r *recyclingPointRepository) Create(ctx context.Context, point *db_models.RecyclingPoint) error {
	return translateError("point create", r.db.WithContext(ctx).Create(point).Error)
}

func (r *recyclingPointRepository) Update(ctx context.Context, id int64, changes PointChanges) (*db_models.RecyclingPoint, error) {
	patch := NewPatch("puntos_reciclaje",
		"nombre", "direccion", "ciudad", "latitud", "longitud", "tipo_instalacion",
		"horario_apertura", "horario_cierre", "telefono", "email", "estado")
	if err := errors.Join(
		Assign(patch, "nombre", changes.Nombre),
		Assign(patch, "direccion", changes.Direccion),
		Assign(patch, "ciudad", changes.Ciudad),
		Assign(patch, "latitud", changes.Latitud),
		Assign(patch, "longitud", changes.Longitud),
		Assign(patch, "tipo_instalacion", changes.TipoInstalacion),
		Assign(patch, "horario_apertura", changes.HorarioApertura),
		Assign(patch, "horario_cierre", changes.HorarioCierre),
		Assign(patch, "telefono", changes.Telefono),
		Assign(patch, "email", changes.Email),
		Assign(patch, "estado", changes.Estado),
	); err != nil {
		return nil, err
	}
	if patch.Len() == 0 {
		return r.FindByID(ctx, id)
	}

	query, args := patch.Build(id, time.Now().Unix())
	var point db_models.RecyclingPoint
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&point)
	if result.Error != nil {
		return nil, translateError("point update", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &point, nil
}

// Delete removes the point; its material links go with it through the
// cascading foreign key.
func (r *recyclingPointRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.RecyclingPoint{}, "id = ?", id)
	if result.Error != nil {
		return false, translateError("point delete", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *recyclingPointRepository) ListForMaterial(ctx context.Context, materialID int64) ([]AcceptingPoint, error) {
	points := []AcceptingPoint{}
	err := r.db.WithContext(ctx).
		Table("puntos_reciclaje AS p").
		Select(`p.id, p.nombre, p.direccion, p.ciudad, p.latitud, p.longitud, p.tipo_instalacion,
			p.horario_apertura, p.horario_cierre, p.telefono, p.email,
			pm.observaciones, pm.cantidad_maxima, pm.horario_especial`).
		Joins("JOIN punto_materiales pm ON pm.punto_reciclaje_id = p.id").
		Where("pm.material_id = ? AND pm.acepta = ? AND p.estado = ?", materialID, true, db_models.PointStatusActive).
		Order("p.ciudad").
		Order("p.nombre").
		Scan(&points).Error
	if err != nil {
		return nil, translateError("point list for material", err)
	}
	return points, nil
}

// UpsertMaterial inserts the link or replaces every attribute of an existing
// one.
func (r *recyclingPointRepository) UpsertMaterial(ctx context.Context, link *db_models.PointMaterial) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "punto_reciclaje_id"}, {Name: "material_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"acepta", "observaciones", "cantidad_maxima", "horario_especial",
			}),
		}).
		Create(link).Error
	return translateError("point material upsert", err)
}

func (r *recyclingPointRepository) RemoveMaterial(ctx context.Context, pointID, materialID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Delete(&db_models.PointMaterial{}, "punto_reciclaje_id = ? AND material_id = ?", pointID, materialID)
	if result.Error != nil {
		return false, translateError("point material remove", result.Error)
	}
	return result.RowsAffected > 0, nil
}
