package response_models

type CategoryResponse struct {
	ID                  int64   `json:"id"`
	Nombre              string  `json:"nombre"`
	Descripcion         *string `json:"descripcion"`
	Codigo              string  `json:"codigo"`
	ColorIdentificacion *string `json:"color_identificacion"`
	Icono               *string `json:"icono"`
	OrdenDisplay        int     `json:"orden_display"`
	Activo              bool    `json:"activo"`
}

type DeleteResponse struct {
	ID      int64  `json:"id"`
	Mensaje string `json:"mensaje"`
}
