package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecoandino/pkg/utils"
)

// pathID reads a positive integer path parameter. On failure it has
// already written the 400 response.
func pathID(c *gin.Context, name string) (int64, bool) {
	return positiveID(c, name, c.Param(name))
}

func queryID(c *gin.Context, name string) (int64, bool) {
	return positiveID(c, name, c.Query(name))
}

func positiveID(c *gin.Context, name, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("%s debe ser un entero positivo", name))
		return 0, false
	}
	return id, true
}

// queryFloat reads an optional float query parameter.
func queryFloat(c *gin.Context, name string) (*float64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("%s debe ser un número", name))
		return nil, false
	}
	return &v, true
}

// bindJSON decodes and validates the request body. A missing body is a
// 400 as well; "{}" is a valid, empty body.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.RespondError(c, http.StatusBadRequest, "El cuerpo de la solicitud es obligatorio")
			return false
		}
		utils.HandleServiceError(c, utils.NewValidationError("Datos inválidos: %v", err))
		return false
	}
	return true
}
