package response_models

type RecyclingPointResponse struct {
	ID              int64   `json:"id"`
	Nombre          string  `json:"nombre"`
	Direccion       string  `json:"direccion"`
	Ciudad          string  `json:"ciudad"`
	Latitud         float64 `json:"latitud"`
	Longitud        float64 `json:"longitud"`
	TipoInstalacion string  `json:"tipo_instalacion"`
	HorarioApertura *string `json:"horario_apertura"`
	HorarioCierre   *string `json:"horario_cierre"`
	Telefono        *string `json:"telefono"`
	Email           *string `json:"email"`
	Estado          string  `json:"estado"`
	Geohash         string  `json:"geohash"`

	TotalMaterialesAceptados *int64   `json:"total_materiales_aceptados,omitempty"`
	DistanciaKm              *float64 `json:"distancia_km,omitempty"`
}

type SearchLocation struct {
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
	RadioKm  float64 `json:"radio_km"`
}

type NearbySearchResponse struct {
	UbicacionBusqueda SearchLocation           `json:"ubicacion_busqueda"`
	PuntosEncontrados int                      `json:"puntos_encontrados"`
	Puntos            []RecyclingPointResponse `json:"puntos"`
}

type PointMaterialsResponse struct {
	PuntoReciclaje      RecyclingPointResponse     `json:"punto_reciclaje"`
	TotalMateriales     int                        `json:"total_materiales"`
	MaterialesAceptados []AcceptedMaterialResponse `json:"materiales_aceptados"`
}

// AcceptingPointResponse is one entry of a material's accepting points.
type AcceptingPointResponse struct {
	ID              int64    `json:"id"`
	Nombre          string   `json:"nombre"`
	Direccion       string   `json:"direccion"`
	Ciudad          string   `json:"ciudad"`
	Latitud         float64  `json:"latitud"`
	Longitud        float64  `json:"longitud"`
	TipoInstalacion string   `json:"tipo_instalacion"`
	HorarioApertura *string  `json:"horario_apertura"`
	HorarioCierre   *string  `json:"horario_cierre"`
	Telefono        *string  `json:"telefono"`
	Email           *string  `json:"email"`
	Observaciones   *string  `json:"observaciones"`
	CantidadMaxima  *float64 `json:"cantidad_maxima"`
	HorarioEspecial *string  `json:"horario_especial"`
}

type PointMaterialResponse struct {
	PuntoReciclajeID int64    `json:"punto_reciclaje_id"`
	MaterialID       int64    `json:"material_id"`
	Acepta           bool     `json:"acepta"`
	Observaciones    *string  `json:"observaciones"`
	CantidadMaxima   *float64 `json:"cantidad_maxima"`
	HorarioEspecial  *string  `json:"horario_especial"`
}
