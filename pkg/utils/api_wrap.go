package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps an error returned by a service onto the response
// envelope. Storage failures never leak their text to the client.
func HandleServiceError(c *gin.Context, err error) {
	var svcErr *ServiceError
	message := ""
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, messageOr(message, "Solicitud inválida"))
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, messageOr(message, "Recurso no encontrado"))
	case errors.Is(err, ErrConflict):
		RespondError(c, http.StatusConflict, messageOr(message, "Conflicto con el recurso"))
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Error interno del servidor")
	default:
		zap.L().Error("unhandled service error",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Error interno del servidor")
	}
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
