package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Every error a service returns unwraps to one of these.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrDatabaseError = errors.New("database error")
)

// ServiceError carries a client-facing message on top of an error kind.
type ServiceError struct {
	Kind    error
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.Kind }

func NewValidationError(format string, args ...any) error {
	return &ServiceError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) error {
	return &ServiceError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrCategoryNotFound     = &ServiceError{Kind: ErrNotFound, Message: "Categoría no encontrada"}
	ErrCategoryNameTaken    = &ServiceError{Kind: ErrConflict, Message: "Ya existe una categoría con ese nombre"}
	ErrCategoryCodeTaken    = &ServiceError{Kind: ErrConflict, Message: "Ya existe una categoría con ese código"}
	ErrCategoryHasMaterials = &ServiceError{Kind: ErrConflict, Message: "La categoría todavía tiene materiales asociados"}

	ErrMaterialNotFound         = &ServiceError{Kind: ErrNotFound, Message: "Material no encontrado"}
	ErrNoMaterialsForCategory   = &ServiceError{Kind: ErrNotFound, Message: "No se encontraron materiales para esta categoría"}
	ErrMaterialNameTaken        = &ServiceError{Kind: ErrConflict, Message: "Ya existe un material con ese nombre"}
	ErrMaterialCodeTaken        = &ServiceError{Kind: ErrConflict, Message: "Ya existe un material con ese código"}
	ErrMaterialCategoryRequired = &ServiceError{Kind: ErrValidation, Message: "categoria_id es obligatorio"}
	ErrMaterialCategoryNotExist = &ServiceError{Kind: ErrValidation, Message: "categoria_id no corresponde a una categoría existente"}

	ErrRecyclingPointNotFound = &ServiceError{Kind: ErrNotFound, Message: "Punto de reciclaje no encontrado"}
	ErrPointMaterialNotFound  = &ServiceError{Kind: ErrNotFound, Message: "El material no está asociado a este punto de reciclaje"}
	ErrInvalidCoordinates     = &ServiceError{Kind: ErrValidation, Message: "latitud debe estar entre -90 y 90 y longitud entre -180 y 180"}
	ErrInvalidRadius          = &ServiceError{Kind: ErrValidation, Message: "radio debe ser un número no negativo"}
	ErrInvalidPointStatus     = &ServiceError{Kind: ErrValidation, Message: "estado debe ser activo, inactivo o mantenimiento"}
	ErrInvalidSchedule        = &ServiceError{Kind: ErrValidation, Message: "los horarios deben tener el formato HH:MM o HH:MM:SS"}
)
