package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Acquisition AcquisitionRepository
	Catalog     CatalogRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Acquisition: NewAcquisitionRepository(db),
		Catalog:     NewCatalogRepository(db),
	}
}
