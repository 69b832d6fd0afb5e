package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoandino/internal/models/request_models"
	"ecoandino/internal/models/response_models"
	"ecoandino/pkg/middleware"
	"ecoandino/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCategoryService struct {
	err       error
	createReq *request_models.CreateCategoryRequest
	updateReq *request_models.UpdateCategoryRequest
	gotID     int64
}

func (f *fakeCategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	return []response_models.CategoryResponse{{ID: 1, Nombre: "Plásticos"}}, f.err
}

func (f *fakeCategoryService) GetCategory(ctx context.Context, id int64) (*response_models.CategoryResponse, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.CategoryResponse{ID: id, Nombre: "Plásticos"}, nil
}

func (f *fakeCategoryService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	f.createReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.CategoryResponse{ID: 7, Nombre: req.Nombre, Codigo: req.Codigo}, nil
}

func (f *fakeCategoryService) UpdateCategory(ctx context.Context, id int64, req request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error) {
	f.updateReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.CategoryResponse{ID: id, Nombre: "Plásticos"}, nil
}

func (f *fakeCategoryService) DeleteCategory(ctx context.Context, id int64) (*response_models.DeleteResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.DeleteResponse{ID: id, Mensaje: "eliminada"}, nil
}

type fakeMaterialService struct {
	err        error
	categoryID *int64
}

func (f *fakeMaterialService) ListMaterials(ctx context.Context, categoryID *int64) ([]response_models.MaterialResponse, error) {
	f.categoryID = categoryID
	return []response_models.MaterialResponse{}, f.err
}

func (f *fakeMaterialService) ListByCategory(ctx context.Context, categoryID int64) ([]response_models.MaterialResponse, error) {
	return nil, utils.ErrNoMaterialsForCategory
}

func (f *fakeMaterialService) GetMaterial(ctx context.Context, id int64) (*response_models.MaterialResponse, error) {
	return nil, utils.ErrMaterialNotFound
}

func (f *fakeMaterialService) CreateMaterial(ctx context.Context, req request_models.CreateMaterialRequest) (*response_models.MaterialResponse, error) {
	if req.CategoriaID == nil {
		return nil, utils.ErrMaterialCategoryRequired
	}
	return &response_models.MaterialResponse{ID: 1, Nombre: req.Nombre, CategoriaID: *req.CategoriaID}, nil
}

func (f *fakeMaterialService) UpdateMaterial(ctx context.Context, id int64, req request_models.UpdateMaterialRequest) (*response_models.MaterialResponse, error) {
	return &response_models.MaterialResponse{ID: id}, f.err
}

func (f *fakeMaterialService) DeleteMaterial(ctx context.Context, id int64) (*response_models.DeleteResponse, error) {
	return nil, &utils.ServiceError{Kind: utils.ErrConflict, Message: "El material es aceptado por 2 puntos de reciclaje"}
}

func (f *fakeMaterialService) PointsForMaterial(ctx context.Context, id int64) (*response_models.MaterialPointsResponse, error) {
	return &response_models.MaterialPointsResponse{PuntosQueAceptan: []response_models.AcceptingPointResponse{}}, nil
}

type fakePointService struct {
	err    error
	lat    float64
	lng    float64
	radius *float64
	city   *string
	setReq *request_models.SetPointMaterialRequest
}

func (f *fakePointService) ListPoints(ctx context.Context, city *string) ([]response_models.RecyclingPointResponse, error) {
	f.city = city
	return []response_models.RecyclingPointResponse{}, f.err
}

func (f *fakePointService) GetPoint(ctx context.Context, id int64) (*response_models.RecyclingPointResponse, error) {
	return &response_models.RecyclingPointResponse{ID: id}, f.err
}

func (f *fakePointService) FindNearby(ctx context.Context, lat, lng float64, radiusKm *float64) (*response_models.NearbySearchResponse, error) {
	f.lat, f.lng, f.radius = lat, lng, radiusKm
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.NearbySearchResponse{
		UbicacionBusqueda: response_models.SearchLocation{Latitud: lat, Longitud: lng, RadioKm: 10},
		Puntos:            []response_models.RecyclingPointResponse{},
	}, nil
}

func (f *fakePointService) MaterialsForPoint(ctx context.Context, id int64) (*response_models.PointMaterialsResponse, error) {
	return nil, utils.ErrRecyclingPointNotFound
}

func (f *fakePointService) CreatePoint(ctx context.Context, req request_models.CreateRecyclingPointRequest) (*response_models.RecyclingPointResponse, error) {
	return &response_models.RecyclingPointResponse{ID: 3, Nombre: req.Nombre}, f.err
}

func (f *fakePointService) UpdatePoint(ctx context.Context, id int64, req request_models.UpdateRecyclingPointRequest) (*response_models.RecyclingPointResponse, error) {
	return &response_models.RecyclingPointResponse{ID: id}, f.err
}

func (f *fakePointService) DeletePoint(ctx context.Context, id int64) (*response_models.DeleteResponse, error) {
	return &response_models.DeleteResponse{ID: id, Mensaje: "eliminado"}, f.err
}

func (f *fakePointService) SetMaterial(ctx context.Context, pointID, materialID int64, req request_models.SetPointMaterialRequest) (*response_models.PointMaterialResponse, error) {
	f.setReq = &req
	return &response_models.PointMaterialResponse{PuntoReciclajeID: pointID, MaterialID: materialID, Acepta: true}, f.err
}

func (f *fakePointService) RemoveMaterial(ctx context.Context, pointID, materialID int64) (*response_models.DeleteResponse, error) {
	return nil, utils.ErrPointMaterialNotFound
}

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) TestDatabase(ctx context.Context) (*response_models.DatabaseTestResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.DatabaseTestResponse{Estado: "conectado", Version: "PostgreSQL 16"}, nil
}

func (f *fakeHealthService) Info() *response_models.RootResponse {
	return &response_models.RootResponse{Nombre: "EcoAndino API", Version: "1.0.0"}
}

type testServer struct {
	router     *gin.Engine
	categories *fakeCategoryService
	materials  *fakeMaterialService
	points     *fakePointService
	health     *fakeHealthService
}

func newTestServer() *testServer {
	s := &testServer{
		categories: &fakeCategoryService{},
		materials:  &fakeMaterialService{},
		points:     &fakePointService{},
		health:     &fakeHealthService{},
	}
	s.router = gin.New()
	s.router.Use(middleware.TraceIDMiddleware())
	RegisterRoutes(s.router,
		NewCategoryController(s.categories),
		NewMaterialController(s.materials),
		NewRecyclingPointsController(s.points),
		NewHealthController(s.health))
	return s
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestCategoryController(t *testing.T) {
	t.Run("list is wrapped in the envelope", func(t *testing.T) {
		s := newTestServer()
		w, resp := s.do(t, http.MethodGet, "/categorias", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.NotEmpty(t, resp.TraceID)
		assert.NotNil(t, resp.Data)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		s := newTestServer()
		w, resp := s.do(t, http.MethodGet, "/categorias/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "error", resp.Status)
	})

	t.Run("non-positive id", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/categorias/0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer()
		s.categories.err = utils.ErrCategoryNotFound
		w, resp := s.do(t, http.MethodGet, "/categorias/9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, utils.ErrCategoryNotFound.Message, resp.Message)
		assert.Equal(t, int64(9), s.categories.gotID)
	})

	t.Run("create returns 201", func(t *testing.T) {
		s := newTestServer()
		body := `{"nombre":"Vidrio","descripcion":"","codigo":"VID","color_identificacion":"#0f0","icono":"bottle","orden_display":0,"activo":false}`
		w, _ := s.do(t, http.MethodPost, "/categorias", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, s.categories.createReq)
		assert.False(t, *s.categories.createReq.Activo)
		assert.Equal(t, 0, *s.categories.createReq.OrdenDisplay)
	})

	t.Run("create with missing field", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPost, "/categorias", `{"nombre":"Vidrio","codigo":"VID"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, s.categories.createReq)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		s := newTestServer()
		s.categories.err = utils.ErrCategoryNameTaken
		body := `{"nombre":"Vidrio","descripcion":"d","codigo":"VID","color_identificacion":"c","icono":"i","orden_display":1,"activo":true}`
		w, resp := s.do(t, http.MethodPost, "/categorias", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, utils.ErrCategoryNameTaken.Message, resp.Message)
	})

	t.Run("over-length code is rejected", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPatch, "/categorias/1", `{"codigo":"`+strings.Repeat("X", 21)+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, s.categories.updateReq)
	})

	t.Run("patch cannot blank required fields", func(t *testing.T) {
		for _, body := range []string{`{"nombre":""}`, `{"codigo":""}`} {
			s := newTestServer()
			w, resp := s.do(t, http.MethodPatch, "/categorias/1", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, "error", resp.Status)
			assert.Nil(t, s.categories.updateReq, body)
		}
	})

	t.Run("patch without body", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPatch, "/categorias/1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, s.categories.updateReq)
	})

	t.Run("patch with empty object", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPatch, "/categorias/1", `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, s.categories.updateReq)
		assert.Nil(t, s.categories.updateReq.Nombre)
	})

	t.Run("patch with nulls", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPatch, "/categorias/1", `{"nombre":null,"activo":null}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, s.categories.updateReq.Activo)
	})

	t.Run("delete", func(t *testing.T) {
		s := newTestServer()
		w, resp := s.do(t, http.MethodDelete, "/categorias/4", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "eliminada", resp.Message)
	})

	t.Run("storage failure does not leak", func(t *testing.T) {
		s := newTestServer()
		s.categories.err = errors.Join(utils.ErrDatabaseError, errors.New("pq: password authentication failed"))
		w, resp := s.do(t, http.MethodGet, "/categorias", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, resp.Message, "pq")
	})
}

func TestMaterialController(t *testing.T) {
	t.Run("category filter", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/materiales?categoria_id=3", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, s.materials.categoryID)
		assert.Equal(t, int64(3), *s.materials.categoryID)
	})

	t.Run("bad category filter", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/materiales?categoria_id=x", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty category is not found", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/materiales/categoria/3", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing material", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/materiales/3", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("accepting points", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/materiales/3/puntos-reciclaje", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("create without category", func(t *testing.T) {
		s := newTestServer()
		w, resp := s.do(t, http.MethodPost, "/materiales", `{"nombre":"Lata"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.ErrMaterialCategoryRequired.Message, resp.Message)
	})

	t.Run("create without name", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPost, "/materiales", `{"categoria_id":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPost, "/materiales", `{"nombre":"Lata","categoria_id":2}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("patch cannot blank the name", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPatch, "/materiales/1", `{"nombre":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete blocked", func(t *testing.T) {
		s := newTestServer()
		w, resp := s.do(t, http.MethodDelete, "/materiales/1", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, resp.Message, "2 puntos")
	})
}

func TestRecyclingPointsController(t *testing.T) {
	t.Run("nearby with default radius", func(t *testing.T) {
		s := newTestServer()
		w, resp := s.do(t, http.MethodGet, "/puntos-reciclaje/cercanos?lat=4.6&lng=-74.08", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 4.6, s.points.lat)
		assert.Equal(t, -74.08, s.points.lng)
		assert.Nil(t, s.points.radius)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, data, "ubicacion_busqueda")
		assert.Contains(t, data, "puntos_encontrados")
	})

	t.Run("nearby with radius", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/puntos-reciclaje/cercanos?lat=4.6&lng=-74.08&radio=2.5", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, s.points.radius)
		assert.Equal(t, 2.5, *s.points.radius)
	})

	t.Run("nearby requires coordinates", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/puntos-reciclaje/cercanos?lat=4.6", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nearby with garbage radius", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/puntos-reciclaje/cercanos?lat=4.6&lng=-74&radio=far", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nearby validation from service", func(t *testing.T) {
		s := newTestServer()
		s.points.err = utils.ErrInvalidRadius
		w, _ := s.do(t, http.MethodGet, "/puntos-reciclaje/cercanos?lat=4.6&lng=-74&radio=-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("city filter", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/puntos-reciclaje?ciudad=Bogot%C3%A1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, s.points.city)
		assert.Equal(t, "Bogotá", *s.points.city)
	})

	t.Run("point materials of missing point", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodGet, "/puntos-reciclaje/8/materiales", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create requires coordinates", func(t *testing.T) {
		s := newTestServer()
		body := `{"nombre":"P","direccion":"D","ciudad":"Cali","tipo_instalacion":"contenedor","latitud":3.4}`
		w, _ := s.do(t, http.MethodPost, "/puntos-reciclaje", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create rejects malformed email", func(t *testing.T) {
		s := newTestServer()
		body := `{"nombre":"P","direccion":"D","ciudad":"Cali","tipo_instalacion":"contenedor","latitud":3.4,"longitud":-76.5,"email":"nope"}`
		w, _ := s.do(t, http.MethodPost, "/puntos-reciclaje", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		s := newTestServer()
		body := `{"nombre":"P","direccion":"D","ciudad":"Cali","tipo_instalacion":"contenedor","latitud":0,"longitud":0}`
		w, _ := s.do(t, http.MethodPost, "/puntos-reciclaje", body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("patch cannot blank required fields", func(t *testing.T) {
		for _, body := range []string{`{"nombre":""}`, `{"direccion":""}`, `{"ciudad":""}`, `{"tipo_instalacion":""}`} {
			s := newTestServer()
			w, _ := s.do(t, http.MethodPatch, "/puntos-reciclaje/2", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("patch with a new name", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPatch, "/puntos-reciclaje/2", `{"nombre":"Punto Norte"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("link a material", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPut, "/puntos-reciclaje/2/materiales/5", `{"observaciones":"sin tapa"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, s.points.setReq)
		assert.Nil(t, s.points.setReq.Acepta)
	})

	t.Run("negative quantity", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodPut, "/puntos-reciclaje/2/materiales/5", `{"cantidad_maxima":-3}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unlink missing association", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodDelete, "/puntos-reciclaje/2/materiales/5", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad material id", func(t *testing.T) {
		s := newTestServer()
		w, _ := s.do(t, http.MethodDelete, "/puntos-reciclaje/2/materiales/-5", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthController(t *testing.T) {
	s := newTestServer()

	w, resp := s.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bienvenido a EcoAndino API", resp.Message)

	w, _ = s.do(t, http.MethodGet, "/database/test", "")
	assert.Equal(t, http.StatusOK, w.Code)

	s.health.err = utils.ErrDatabaseError
	w, resp = s.do(t, http.MethodGet, "/database/test", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", resp.Status)
}
