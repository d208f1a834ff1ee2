package models

// AdministrativeUnit is a seeded reference row; read-only at runtime.
type AdministrativeUnit struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:200;not null;uniqueIndex" json:"nombre"`
}

// TableName specifies the table name for AdministrativeUnit
func (AdministrativeUnit) TableName() string {
	return "unidades_administrativas"
}

// GoodsServiceType is a seeded reference row; read-only at runtime.
type GoodsServiceType struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"size:200;not null;uniqueIndex" json:"nombre"`
}

// TableName specifies the table name for GoodsServiceType
func (GoodsServiceType) TableName() string {
	return "tipos_bien_servicio"
}
