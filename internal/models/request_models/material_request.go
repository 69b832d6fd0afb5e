package request_models

type CreateMaterialRequest struct {
	Nombre                 string  `json:"nombre" binding:"required,max=150"`
	Codigo                 *string `json:"codigo" binding:"omitempty,max=20"`
	Descripcion            *string `json:"descripcion"`
	PreparacionRequerida   *string `json:"preparacion_requerida"`
	BeneficioAmbiental     *string `json:"beneficio_ambiental"`
	RequiereManejoEspecial *bool   `json:"requiere_manejo_especial"`
	Ejemplos               *string `json:"ejemplos"`
	MaterialesNoAceptados  *string `json:"materiales_no_aceptados"`
	EsPeligroso            *bool   `json:"es_peligroso"`
	CategoriaID            *int64  `json:"categoria_id"`
	Activo                 *bool   `json:"activo"`
}

type UpdateMaterialRequest struct {
	Nombre                 *string `json:"nombre" binding:"omitempty,min=1,max=150"`
	Codigo                 *string `json:"codigo" binding:"omitempty,max=20"`
	Descripcion            *string `json:"descripcion"`
	PreparacionRequerida   *string `json:"preparacion_requerida"`
	BeneficioAmbiental     *string `json:"beneficio_ambiental"`
	RequiereManejoEspecial *bool   `json:"requiere_manejo_especial"`
	Ejemplos               *string `json:"ejemplos"`
	MaterialesNoAceptados  *string `json:"materiales_no_aceptados"`
	EsPeligroso            *bool   `json:"es_peligroso"`
	CategoriaID            *int64  `json:"categoria_id"`
	Activo                 *bool   `json:"activo"`
}
