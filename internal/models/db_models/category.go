package db_models

// Category groups materials, e.g. "Plásticos" or "Metales".
type Category struct {
	BaseModel
	Nombre              string  `gorm:"column:nombre;not null;unique"`
	Descripcion         *string `gorm:"column:descripcion"`
	Codigo              string  `gorm:"column:codigo;not null;unique"`
	ColorIdentificacion *string `gorm:"column:color_identificacion"`
	Icono               *string `gorm:"column:icono"`
	OrdenDisplay        int     `gorm:"column:orden_display;not null"`
	Activo              bool    `gorm:"column:activo;not null"`
}

func (Category) TableName() string { return "categorias" }
