package db_models

const (
	PointStatusActive      = "activo"
	PointStatusInactive    = "inactivo"
	PointStatusMaintenance = "mantenimiento"
)

// ValidPointStatus reports whether s is one of the known point statuses.
func ValidPointStatus(s string) bool {
	switch s {
	case PointStatusActive, PointStatusInactive, PointStatusMaintenance:
		return true
	}
	return false
}

// RecyclingPoint is a physical drop-off facility. Only points whose Estado
// is PointStatusActive are visible to read queries.
type RecyclingPoint struct {
	BaseModel
	Nombre          string  `gorm:"column:nombre;not null"`
	Direccion       string  `gorm:"column:direccion;not null"`
	Ciudad          string  `gorm:"column:ciudad;not null"`
	Latitud         float64 `gorm:"column:latitud;not null"`
	Longitud        float64 `gorm:"column:longitud;not null"`
	TipoInstalacion string  `gorm:"column:tipo_instalacion;not null"`
	HorarioApertura *string `gorm:"column:horario_apertura"`
	HorarioCierre   *string `gorm:"column:horario_cierre"`
	Telefono        *string `gorm:"column:telefono"`
	Email           *string `gorm:"column:email"`
	Estado          string  `gorm:"column:estado;not null"`
}

func (RecyclingPoint) TableName() string { return "puntos_reciclaje" }
