package repository

import (
	"context"

	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository reads the two seeded reference lists.
type CatalogRepository interface {
	AdministrativeUnits(ctx context.Context) ([]string, error)
	GoodsServiceTypes(ctx context.Context) ([]string, error)
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) AdministrativeUnits(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.AdministrativeUnit{}).
		Order("nombre ASC").
		Pluck("nombre", &names).Error
	return names, err
}

func (r *catalogRepository) GoodsServiceTypes(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.GoodsServiceType{}).
		Order("nombre ASC").
		Pluck("nombre", &names).Error
	return names, err
}
