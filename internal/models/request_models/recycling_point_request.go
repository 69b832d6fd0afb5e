package request_models

type CreateRecyclingPointRequest struct {
	Nombre          string   `json:"nombre" binding:"required,max=150"`
	Direccion       string   `json:"direccion" binding:"required,max=255"`
	Ciudad          string   `json:"ciudad" binding:"required,max=100"`
	Latitud         *float64 `json:"latitud" binding:"required"`
	Longitud        *float64 `json:"longitud" binding:"required"`
	TipoInstalacion string   `json:"tipo_instalacion" binding:"required,max=50"`
	HorarioApertura *string  `json:"horario_apertura"`
	HorarioCierre   *string  `json:"horario_cierre"`
	Telefono        *string  `json:"telefono" binding:"omitempty,max=30"`
	Email           *string  `json:"email" binding:"omitempty,email,max=150"`
	Estado          *string  `json:"estado"`
}

type UpdateRecyclingPointRequest struct {
	Nombre          *string  `json:"nombre" binding:"omitempty,min=1,max=150"`
	Direccion       *string  `json:"direccion" binding:"omitempty,min=1,max=255"`
	Ciudad          *string  `json:"ciudad" binding:"omitempty,min=1,max=100"`
	Latitud         *float64 `json:"latitud"`
	Longitud        *float64 `json:"longitud"`
	TipoInstalacion *string  `json:"tipo_instalacion" binding:"omitempty,min=1,max=50"`
	HorarioApertura *string  `json:"horario_apertura"`
	HorarioCierre   *string  `json:"horario_cierre"`
	Telefono        *string  `json:"telefono" binding:"omitempty,max=30"`
	Email           *string  `json:"email" binding:"omitempty,email,max=150"`
	Estado          *string  `json:"estado"`
}

// SetPointMaterialRequest links a material to a point. Acepta defaults to
// true when omitted.
type SetPointMaterialRequest struct {
	Acepta          *bool    `json:"acepta"`
	Observaciones   *string  `json:"observaciones"`
	CantidadMaxima  *float64 `json:"cantidad_maxima" binding:"omitempty,gte=0,lt=100000000"`
	HorarioEspecial *string  `json:"horario_especial" binding:"omitempty,max=100"`
}
