package services

import (
	"github.com/jcalbornoz/adressbackendnet/internal/repository"
)

// Services holds all service instances
type Services struct {
	Acquisition *AcquisitionService
	Catalog     *CatalogService
	Export      *ExportService
	History     *HistoryService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories) *Services {
	historySvc := NewHistoryService(repos.Acquisition)

	return &Services{
		Acquisition: NewAcquisitionService(repos.Acquisition, historySvc),
		Catalog:     NewCatalogService(repos.Catalog),
		Export:      NewExportService(repos.Acquisition),
		History:     historySvc,
	}
}
