package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoandino/internal/models/request_models"
	"ecoandino/internal/services"
	"ecoandino/pkg/utils"
)

type RecyclingPointsController struct {
	pointService services.RecyclingPointServiceInterface
}

func NewRecyclingPointsController(pointService services.RecyclingPointServiceInterface) *RecyclingPointsController {
	return &RecyclingPointsController{
		pointService: pointService,
	}
}

// ListPoints accepts an optional ciudad query filter.
func (pc *RecyclingPointsController) ListPoints(c *gin.Context) {
	var city *string
	if v := c.Query("ciudad"); v != "" {
		city = &v
	}

	points, err := pc.pointService.ListPoints(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, points, "Puntos de reciclaje obtenidos correctamente")
}

// FindNearby handles GET /puntos-reciclaje/cercanos?lat=&lng=&radio=.
func (pc *RecyclingPointsController) FindNearby(c *gin.Context) {
	lat, ok := queryFloat(c, "lat")
	if !ok {
		return
	}
	lng, ok := queryFloat(c, "lng")
	if !ok {
		return
	}
	if lat == nil || lng == nil {
		utils.RespondError(c, http.StatusBadRequest, "lat y lng son obligatorios")
		return
	}
	radius, ok := queryFloat(c, "radio")
	if !ok {
		return
	}

	resp, err := pc.pointService.FindNearby(c.Request.Context(), *lat, *lng, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Búsqueda de puntos cercanos completada")
}

func (pc *RecyclingPointsController) GetPoint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	point, err := pc.pointService.GetPoint(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, point, "Punto de reciclaje obtenido correctamente")
}

func (pc *RecyclingPointsController) MaterialsForPoint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := pc.pointService.MaterialsForPoint(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Materiales del punto obtenidos correctamente")
}

func (pc *RecyclingPointsController) CreatePoint(c *gin.Context) {
	var req request_models.CreateRecyclingPointRequest
	if !bindJSON(c, &req) {
		return
	}

	point, err := pc.pointService.CreatePoint(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, point, "Punto de reciclaje creado correctamente")
}

func (pc *RecyclingPointsController) UpdatePoint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateRecyclingPointRequest
	if !bindJSON(c, &req) {
		return
	}

	point, err := pc.pointService.UpdatePoint(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, point, "Punto de reciclaje actualizado correctamente")
}

func (pc *RecyclingPointsController) DeletePoint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := pc.pointService.DeletePoint(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Mensaje)
}

func (pc *RecyclingPointsController) SetMaterial(c *gin.Context) {
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}
	materialID, ok := pathID(c, "material_id")
	if !ok {
		return
	}
	var req request_models.SetPointMaterialRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := pc.pointService.SetMaterial(c.Request.Context(), pointID, materialID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, link, "Material asociado al punto de reciclaje")
}

func (pc *RecyclingPointsController) RemoveMaterial(c *gin.Context) {
	pointID, ok := pathID(c, "id")
	if !ok {
		return
	}
	materialID, ok := pathID(c, "material_id")
	if !ok {
		return
	}

	resp, err := pc.pointService.RemoveMaterial(c.Request.Context(), pointID, materialID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Mensaje)
}
