package services

import (
	"context"
	"sort"

	"ecoandino/internal/models/db_models"
	"ecoandino/internal/repositories"
	"ecoandino/pkg/geo"
)

type fakeCategoryRepo struct {
	categories map[int64]*db_models.Category
	materials  map[int64]int64
	nextID     int64
	createErr  error
	updateErr  error
	deleteErr  error
	err        error
}

func newFakeCategoryRepo(categories ...*db_models.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: map[int64]*db_models.Category{}, materials: map[int64]int64{}}
	for _, c := range categories {
		r.categories[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]db_models.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []db_models.Category{}
	for _, c := range r.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrdenDisplay < out[j].OrdenDisplay })
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*db_models.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *db_models.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	category.ID = r.nextID
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, id int64, changes repositories.CategoryChanges) (*db_models.Category, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	if changes.Nombre != nil {
		c.Nombre = *changes.Nombre
	}
	if changes.Codigo != nil {
		c.Codigo = *changes.Codigo
	}
	if changes.Activo != nil {
		c.Activo = *changes.Activo
	}
	return c, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

func (r *fakeCategoryRepo) CountMaterials(ctx context.Context, id int64) (int64, error) {
	return r.materials[id], r.err
}

type fakeMaterialRepo struct {
	rows      []repositories.MaterialRow
	accepted  map[int64][]repositories.AcceptedMaterial
	accepting map[int64]int64
	createErr error
	updated   *repositories.MaterialChanges
	deleted   []int64
	err       error
}

func (r *fakeMaterialRepo) List(ctx context.Context, categoryID *int64) ([]repositories.MaterialRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []repositories.MaterialRow{}
	for _, row := range r.rows {
		if categoryID != nil && row.Material.CategoriaID != *categoryID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeMaterialRepo) GetByID(ctx context.Context, id int64) (*repositories.MaterialRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.rows {
		if r.rows[i].Material.ID == id && r.rows[i].Material.Activo {
			return &r.rows[i], nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialRepo) FindByID(ctx context.Context, id int64) (*db_models.Material, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.rows {
		if r.rows[i].Material.ID == id {
			return &r.rows[i].Material, nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialRepo) Create(ctx context.Context, material *db_models.Material) error {
	if r.createErr != nil {
		return r.createErr
	}
	material.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, repositories.MaterialRow{Material: *material})
	return nil
}

func (r *fakeMaterialRepo) Update(ctx context.Context, id int64, changes repositories.MaterialChanges) (*db_models.Material, error) {
	r.updated = &changes
	m, err := r.FindByID(ctx, id)
	if err != nil || m == nil {
		return nil, err
	}
	if changes.Nombre != nil {
		m.Nombre = *changes.Nombre
	}
	if changes.CategoriaID != nil {
		m.CategoriaID = *changes.CategoriaID
	}
	return m, nil
}

func (r *fakeMaterialRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for i := range r.rows {
		if r.rows[i].Material.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			r.deleted = append(r.deleted, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMaterialRepo) CountAcceptingPoints(ctx context.Context, id int64) (int64, error) {
	return r.accepting[id], r.err
}

func (r *fakeMaterialRepo) ListForPoint(ctx context.Context, pointID int64) ([]repositories.AcceptedMaterial, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := r.accepted[pointID]
	if out == nil {
		out = []repositories.AcceptedMaterial{}
	}
	return out, nil
}

type fakePointRepo struct {
	rows      []repositories.PointRow
	box       *geo.BoundingBox
	links     map[[2]int64]*db_models.PointMaterial
	forMat    map[int64][]repositories.AcceptingPoint
	upsertErr error
	err       error
}

func (r *fakePointRepo) List(ctx context.Context, city *string) ([]repositories.PointRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func (r *fakePointRepo) ListCandidates(ctx context.Context, box geo.BoundingBox) ([]repositories.PointRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.box = &box
	out := []repositories.PointRow{}
	for _, row := range r.rows {
		if row.Point.Estado != db_models.PointStatusActive {
			continue
		}
		if box.Contains(geo.Point{Lat: row.Point.Latitud, Lng: row.Point.Longitud}) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakePointRepo) GetByID(ctx context.Context, id int64) (*db_models.RecyclingPoint, error) {
	p, err := r.FindByID(ctx, id)
	if p == nil || p.Estado != db_models.PointStatusActive {
		return nil, err
	}
	return p, nil
}

func (r *fakePointRepo) FindByID(ctx context.Context, id int64) (*db_models.RecyclingPoint, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.rows {
		if r.rows[i].Point.ID == id {
			return &r.rows[i].Point, nil
		}
	}
	return nil, nil
}

func (r *fakePointRepo) Create(ctx context.Context, point *db_models.RecyclingPoint) error {
	if r.err != nil {
		return r.err
	}
	point.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, repositories.PointRow{Point: *point})
	return nil
}

func (r *fakePointRepo) Update(ctx context.Context, id int64, changes repositories.PointChanges) (*db_models.RecyclingPoint, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	if changes.Latitud != nil {
		p.Latitud = *changes.Latitud
	}
	if changes.HorarioApertura != nil {
		p.HorarioApertura = changes.HorarioApertura
	}
	if changes.Estado != nil {
		p.Estado = *changes.Estado
	}
	return p, nil
}

func (r *fakePointRepo) Delete(ctx context.Context, id int64) (bool, error) {
	p, err := r.FindByID(ctx, id)
	return p != nil, err
}

func (r *fakePointRepo) ListForMaterial(ctx context.Context, materialID int64) ([]repositories.AcceptingPoint, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := r.forMat[materialID]
	if out == nil {
		out = []repositories.AcceptingPoint{}
	}
	return out, nil
}

func (r *fakePointRepo) UpsertMaterial(ctx context.Context, link *db_models.PointMaterial) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if r.links == nil {
		r.links = map[[2]int64]*db_models.PointMaterial{}
	}
	r.links[[2]int64{link.PuntoReciclajeID, link.MaterialID}] = link
	return nil
}

func (r *fakePointRepo) RemoveMaterial(ctx context.Context, pointID, materialID int64) (bool, error) {
	key := [2]int64{pointID, materialID}
	if _, ok := r.links[key]; !ok {
		return false, nil
	}
	delete(r.links, key)
	return true, nil
}

type fakeHealthRepo struct {
	stats *repositories.DatabaseStats
	err   error
}

func (r *fakeHealthRepo) Stats(ctx context.Context) (*repositories.DatabaseStats, error) {
	return r.stats, r.err
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
