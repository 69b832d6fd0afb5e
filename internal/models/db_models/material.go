package db_models

// Material is a recyclable item type owned by exactly one category.
type Material struct {
	BaseModel
	Nombre                 string  `gorm:"column:nombre;not null;unique"`
	Codigo                 *string `gorm:"column:codigo;unique"`
	Descripcion            *string `gorm:"column:descripcion"`
	PreparacionRequerida   *string `gorm:"column:preparacion_requerida"`
	BeneficioAmbiental     *string `gorm:"column:beneficio_ambiental"`
	RequiereManejoEspecial bool    `gorm:"column:requiere_manejo_especial;not null"`
	Ejemplos               *string `gorm:"column:ejemplos"`
	MaterialesNoAceptados  *string `gorm:"column:materiales_no_aceptados"`
	EsPeligroso            bool    `gorm:"column:es_peligroso;not null"`
	CategoriaID            int64   `gorm:"column:categoria_id;not null"`
	Activo                 bool    `gorm:"column:activo;not null"`
}

func (Material) TableName() string { return "materiales" }
