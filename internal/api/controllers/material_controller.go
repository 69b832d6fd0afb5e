package controllers

import (
	"github.com/gin-gonic/gin"

	"ecoandino/internal/models/request_models"
	"ecoandino/internal/services"
	"ecoandino/pkg/utils"
)

type MaterialController struct {
	materialService services.MaterialServiceInterface
}

func NewMaterialController(materialService services.MaterialServiceInterface) *MaterialController {
	return &MaterialController{
		materialService: materialService,
	}
}

// ListMaterials accepts an optional categoria_id query filter.
func (mc *MaterialController) ListMaterials(c *gin.Context) {
	var categoryID *int64
	if _, present := c.GetQuery("categoria_id"); present {
		id, ok := queryID(c, "categoria_id")
		if !ok {
			return
		}
		categoryID = &id
	}

	materials, err := mc.materialService.ListMaterials(c.Request.Context(), categoryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, materials, "Materiales obtenidos correctamente")
}

func (mc *MaterialController) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	materials, err := mc.materialService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, materials, "Materiales obtenidos correctamente")
}

func (mc *MaterialController) GetMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	material, err := mc.materialService.GetMaterial(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, material, "Material obtenido correctamente")
}

func (mc *MaterialController) PointsForMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := mc.materialService.PointsForMaterial(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Puntos de reciclaje obtenidos correctamente")
}

func (mc *MaterialController) CreateMaterial(c *gin.Context) {
	var req request_models.CreateMaterialRequest
	if !bindJSON(c, &req) {
		return
	}

	material, err := mc.materialService.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, material, "Material creado correctamente")
}

func (mc *MaterialController) UpdateMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateMaterialRequest
	if !bindJSON(c, &req) {
		return
	}

	material, err := mc.materialService.UpdateMaterial(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, material, "Material actualizado correctamente")
}

func (mc *MaterialController) DeleteMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := mc.materialService.DeleteMaterial(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Mensaje)
}
