package response_models

type MaterialResponse struct {
	ID                     int64   `json:"id"`
	Nombre                 string  `json:"nombre"`
	Codigo                 *string `json:"codigo"`
	Descripcion            *string `json:"descripcion"`
	PreparacionRequerida   *string `json:"preparacion_requerida"`
	BeneficioAmbiental     *string `json:"beneficio_ambiental"`
	RequiereManejoEspecial bool    `json:"requiere_manejo_especial"`
	Ejemplos               *string `json:"ejemplos"`
	MaterialesNoAceptados  *string `json:"materiales_no_aceptados"`
	EsPeligroso            bool    `json:"es_peligroso"`
	CategoriaID            int64   `json:"categoria_id"`
	Activo                 bool    `json:"activo"`

	// Filled only by reads that join the category.
	CategoriaNombre *string `json:"categoria_nombre,omitempty"`
	CategoriaColor  *string `json:"categoria_color,omitempty"`
	CategoriaIcono  *string `json:"categoria_icono,omitempty"`
}

// AcceptedMaterialResponse is one entry of a point's accepted materials.
type AcceptedMaterialResponse struct {
	ID                   int64    `json:"id"`
	Nombre               string   `json:"nombre"`
	Codigo               *string  `json:"codigo"`
	Descripcion          *string  `json:"descripcion"`
	PreparacionRequerida *string  `json:"preparacion_requerida"`
	EsPeligroso          bool     `json:"es_peligroso"`
	CategoriaNombre      string   `json:"categoria_nombre"`
	CategoriaColor       *string  `json:"categoria_color"`
	CategoriaIcono       *string  `json:"categoria_icono"`
	Observaciones        *string  `json:"observaciones"`
	CantidadMaxima       *float64 `json:"cantidad_maxima"`
	HorarioEspecial      *string  `json:"horario_especial"`
}

type MaterialPointsResponse struct {
	Material         MaterialResponse         `json:"material"`
	TotalPuntos      int                      `json:"total_puntos"`
	PuntosQueAceptan []AcceptingPointResponse `json:"puntos_que_aceptan"`
}
