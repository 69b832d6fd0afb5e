package request_models

// Pointer fields marked required only need to be present; false, 0 and ""
// are accepted values.
type CreateCategoryRequest struct {
	Nombre              string  `json:"nombre" binding:"required,max=100"`
	Descripcion         *string `json:"descripcion" binding:"required"`
	Codigo              string  `json:"codigo" binding:"required,max=20"`
	ColorIdentificacion *string `json:"color_identificacion" binding:"required,max=20"`
	Icono               *string `json:"icono" binding:"required,max=100"`
	OrdenDisplay        *int    `json:"orden_display" binding:"required"`
	Activo              *bool   `json:"activo" binding:"required"`
}

type UpdateCategoryRequest struct {
	Nombre              *string `json:"nombre" binding:"omitempty,min=1,max=100"`
	Descripcion         *string `json:"descripcion"`
	Codigo              *string `json:"codigo" binding:"omitempty,min=1,max=20"`
	ColorIdentificacion *string `json:"color_identificacion" binding:"omitempty,max=20"`
	Icono               *string `json:"icono" binding:"omitempty,max=100"`
	OrdenDisplay        *int    `json:"orden_display"`
	Activo              *bool   `json:"activo"`
}
