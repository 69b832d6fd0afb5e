package db_models

// PointMaterial records whether and how a point accepts a material.
// A row with Acepta=false is an explicit "not accepted here".
type PointMaterial struct {
	PuntoReciclajeID int64    `gorm:"column:punto_reciclaje_id;primaryKey"`
	MaterialID       int64    `gorm:"column:material_id;primaryKey"`
	Acepta           bool     `gorm:"column:acepta;not null"`
	Observaciones    *string  `gorm:"column:observaciones"`
	CantidadMaxima   *float64 `gorm:"column:cantidad_maxima"`
	HorarioEspecial  *string  `gorm:"column:horario_especial"`
}

func (PointMaterial) TableName() string { return "punto_materiales" }
