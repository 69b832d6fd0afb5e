package response_models

type TableCounts struct {
	Categorias      int64 `json:"categorias"`
	Materiales      int64 `json:"materiales"`
	PuntosReciclaje int64 `json:"puntos_reciclaje"`
}

type DatabaseTestResponse struct {
	Estado  string      `json:"estado"`
	Version string      `json:"version"`
	Tablas  TableCounts `json:"tablas"`
}

type RootResponse struct {
	Nombre    string            `json:"nombre"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
