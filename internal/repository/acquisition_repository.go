package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"gorm.io/gorm"
)

// AcquisitionFilters are the optional, AND-combined list filters.
type AcquisitionFilters struct {
	Unidad     string
	Tipo       string
	Proveedor  string
	Estado     string
	FechaDesde *time.Time
	FechaHasta *time.Time
}

// AcquisitionRepository defines the interface for acquisition data access
type AcquisitionRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Acquisition, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filters *AcquisitionFilters) ([]models.Acquisition, error)
	CreateWithHistory(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error
	SaveWithHistory(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error
	ListHistory(ctx context.Context, acquisitionID uint) ([]models.AcquisitionHistory, error)
}

type acquisitionRepository struct {
	db *gorm.DB
}

// NewAcquisitionRepository creates a new acquisition repository
func NewAcquisitionRepository(db *gorm.DB) AcquisitionRepository {
	return &acquisitionRepository{db: db}
}

func (r *acquisitionRepository) FindByID(ctx context.Context, id uint) (*models.Acquisition, error) {
	var acq models.Acquisition
	err := r.db.WithContext(ctx).First(&acq, id).Error
	if err != nil {
		return nil, err
	}
	return &acq, nil
}

func (r *acquisitionRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Acquisition{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *acquisitionRepository) List(ctx context.Context, filters *AcquisitionFilters) ([]models.Acquisition, error) {
	var acquisitions []models.Acquisition

	db := r.db.WithContext(ctx).Model(&models.Acquisition{})

	if filters != nil {
		if filters.Unidad != "" {
			db = db.Where("unidad LIKE ?", "%"+filters.Unidad+"%")
		}
		if filters.Tipo != "" {
			db = db.Where("tipo LIKE ?", "%"+filters.Tipo+"%")
		}
		if filters.Proveedor != "" {
			db = db.Where("proveedor LIKE ?", "%"+filters.Proveedor+"%")
		}

		// Any value other than ACTIVO/INACTIVO applies no status filter
		switch strings.ToUpper(filters.Estado) {
		case "ACTIVO":
			db = db.Where("activo = ?", true)
		case "INACTIVO":
			db = db.Where("activo = ?", false)
		}

		// Inclusive at day granularity: [desde, hasta + 1 day)
		if filters.FechaDesde != nil {
			db = db.Where("fecha_adquisicion >= ?", filters.FechaDesde.Format("2006-01-02"))
		}
		if filters.FechaHasta != nil {
			db = db.Where("fecha_adquisicion < ?", filters.FechaHasta.AddDate(0, 0, 1).Format("2006-01-02"))
		}
	}

	err := db.Order("fecha_adquisicion DESC").Find(&acquisitions).Error
	return acquisitions, err
}

// CreateWithHistory inserts the record and its audit entry atomically.
// The entry's AcquisitionID is filled from the assigned primary key.
func (r *acquisitionRepository) CreateWithHistory(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(acq).Error; err != nil {
			return err
		}
		entry.AcquisitionID = acq.ID
		return tx.Create(entry).Error
	})
}

// SaveWithHistory persists a full-row update and its audit entry atomically.
func (r *acquisitionRepository) SaveWithHistory(ctx context.Context, acq *models.Acquisition, entry *models.AcquisitionHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(acq).Error; err != nil {
			return err
		}
		entry.AcquisitionID = acq.ID
		return tx.Create(entry).Error
	})
}

func (r *acquisitionRepository) ListHistory(ctx context.Context, acquisitionID uint) ([]models.AcquisitionHistory, error) {
	var entries []models.AcquisitionHistory
	err := r.db.WithContext(ctx).
		Where("acquisition_id = ?", acquisitionID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}
