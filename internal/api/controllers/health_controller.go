package controllers

import (
	"github.com/gin-gonic/gin"

	"ecoandino/internal/services"
	"ecoandino/pkg/utils"
)

type HealthController struct {
	healthService services.HealthServiceInterface
}

func NewHealthController(healthService services.HealthServiceInterface) *HealthController {
	return &HealthController{
		healthService: healthService,
	}
}

func (hc *HealthController) Root(c *gin.Context) {
	info := hc.healthService.Info()
	utils.RespondSuccess(c, info, "Bienvenido a "+info.Nombre)
}

func (hc *HealthController) TestDatabase(c *gin.Context) {
	resp, err := hc.healthService.TestDatabase(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Conexión a la base de datos exitosa")
}
