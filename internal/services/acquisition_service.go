package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"github.com/jcalbornoz/adressbackendnet/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AcquisitionService orchestrates validate → compute derived total →
// persist → append audit entry for every mutation, plus the filtered reads.
type AcquisitionService struct {
	repo    repository.AcquisitionRepository
	history *HistoryService
}

func NewAcquisitionService(repo repository.AcquisitionRepository, history *HistoryService) *AcquisitionService {
	return &AcquisitionService{repo: repo, history: history}
}

func (s *AcquisitionService) List(ctx context.Context, filters *repository.AcquisitionFilters) ([]models.Acquisition, error) {
	return s.repo.List(ctx, filters)
}

func (s *AcquisitionService) FindByID(ctx context.Context, id uint) (*models.Acquisition, error) {
	acq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return acq, nil
}

// Create validates the payload, derives the total and persists the record
// with its CREADO audit entry in one transaction. The record is always
// created active.
func (s *AcquisitionService) Create(ctx context.Context, req *models.AcquisitionRequest) (*models.Acquisition, error) {
	if verr := ValidateAcquisition(req); verr != nil {
		return nil, verr
	}

	acq := &models.Acquisition{
		Presupuesto:      req.Presupuesto,
		Unidad:           strings.TrimSpace(req.Unidad),
		Tipo:             strings.TrimSpace(req.Tipo),
		Cantidad:         req.Cantidad,
		ValorUnitario:    req.ValorUnitario,
		ValorTotal:       totalValue(req.Cantidad, req.ValorUnitario),
		FechaAdquisicion: req.FechaAdquisicion.Time,
		Proveedor:        strings.TrimSpace(req.Proveedor),
		Documentacion:    trimOptional(req.Documentacion),
		Activo:           true,
	}

	entry := s.history.NewEntry(models.HistoryActionCreated, "Registro creado con proveedor "+acq.Proveedor)
	if err := s.repo.CreateWithHistory(ctx, acq, entry); err != nil {
		return nil, err
	}
	return acq, nil
}

// Update is a full replace: every field is overwritten and the total
// recomputed. Validation runs before the existence check, so a bad payload
// for an unknown id still reports the validation error.
func (s *AcquisitionService) Update(ctx context.Context, id uint, req *models.AcquisitionRequest) (*models.Acquisition, error) {
	if verr := ValidateAcquisition(req); verr != nil {
		return nil, verr
	}

	acq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	acq.Presupuesto = req.Presupuesto
	acq.Unidad = strings.TrimSpace(req.Unidad)
	acq.Tipo = strings.TrimSpace(req.Tipo)
	acq.Cantidad = req.Cantidad
	acq.ValorUnitario = req.ValorUnitario
	acq.ValorTotal = totalValue(req.Cantidad, req.ValorUnitario)
	acq.FechaAdquisicion = req.FechaAdquisicion.Time
	acq.Proveedor = strings.TrimSpace(req.Proveedor)
	acq.Documentacion = trimOptional(req.Documentacion)

	entry := s.history.NewEntry(models.HistoryActionUpdated, "Campos de la adquisición actualizados")
	if err := s.repo.SaveWithHistory(ctx, acq, entry); err != nil {
		return nil, err
	}
	return acq, nil
}

// SetStatus flips the active flag only. No field validation is needed since
// nothing else changes.
func (s *AcquisitionService) SetStatus(ctx context.Context, id uint, activo bool) (*models.Acquisition, error) {
	acq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	acq.Activo = activo

	estado := "INACTIVO"
	if activo {
		estado = "ACTIVO"
	}
	entry := s.history.NewEntry(models.HistoryActionStatusChanged, "Estado cambiado a "+estado)
	if err := s.repo.SaveWithHistory(ctx, acq, entry); err != nil {
		return nil, err
	}
	return acq, nil
}

// History returns the audit entries newest first. A nonexistent id is
// reported as not found rather than an empty list.
func (s *AcquisitionService) History(ctx context.Context, id uint) ([]models.AcquisitionHistory, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.history.ForAcquisition(ctx, id)
}

// totalValue derives the stored total from quantity × unit value. The client
// never supplies it; it is recomputed on every write.
func totalValue(cantidad int, valorUnitario decimal.Decimal) decimal.Decimal {
	return valorUnitario.Mul(decimal.NewFromInt(int64(cantidad))).Round(2)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
