package database

import (
	"fmt"

	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate applies the schema and seeds the reference catalogs.
// Catalog rows are upserted by primary key so reruns are harmless.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Acquisition{},
		&models.AcquisitionHistory{},
		&models.AdministrativeUnit{},
		&models.GoodsServiceType{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seedCatalogs(db); err != nil {
		return fmt.Errorf("failed to seed catalogs: %w", err)
	}

	return nil
}

func seedCatalogs(db *gorm.DB) error {
	units := []models.AdministrativeUnit{
		{ID: 1, Nombre: "Dirección General"},
		{ID: 2, Nombre: "Subdirección de Gestión Financiera"},
		{ID: 3, Nombre: "Oficina Asesora Jurídica"},
		{ID: 4, Nombre: "Oficina de Tecnologías de la Información"},
		{ID: 5, Nombre: "Subdirección de Aseguramiento"},
		{ID: 6, Nombre: "Subdirección de Operación de Reconocimientos"},
		{ID: 7, Nombre: "Oficina de Planeación"},
		{ID: 8, Nombre: "Oficina de Control Interno"},
	}

	types := []models.GoodsServiceType{
		{ID: 1, Nombre: "Medicamentos"},
		{ID: 2, Nombre: "Dispositivos médicos"},
		{ID: 3, Nombre: "Equipos biomédicos"},
		{ID: 4, Nombre: "Servicios de tecnología"},
		{ID: 5, Nombre: "Servicios de consultoría"},
		{ID: 6, Nombre: "Servicios de mantenimiento"},
		{ID: 7, Nombre: "Papelería y suministros"},
		{ID: 8, Nombre: "Servicios logísticos"},
		{ID: 9, Nombre: "Licencias de software"},
		{ID: 10, Nombre: "Servicios de capacitación"},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&units).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error
}
