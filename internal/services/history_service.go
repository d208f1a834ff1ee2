package services

import (
	"context"
	"time"

	"github.com/jcalbornoz/adressbackendnet/internal/models"
	"github.com/jcalbornoz/adressbackendnet/internal/repository"
)

// HistoryService builds and reads the append-only audit trail. Entries are
// persisted by the acquisition repository inside the same transaction as the
// mutation they describe; no mutation path for existing entries exists.
type HistoryService struct {
	repo repository.AcquisitionRepository
}

func NewHistoryService(repo repository.AcquisitionRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// NewEntry builds an audit row stamped with the current UTC time.
// AcquisitionID is filled by the repository at insert time.
func (s *HistoryService) NewEntry(action, summary string) *models.AcquisitionHistory {
	return &models.AcquisitionHistory{
		Action:    action,
		Summary:   summary,
		Timestamp: time.Now().UTC(),
	}
}

// ForAcquisition returns the audit entries for one record, newest first.
func (s *HistoryService) ForAcquisition(ctx context.Context, acquisitionID uint) ([]models.AcquisitionHistory, error) {
	return s.repo.ListHistory(ctx, acquisitionID)
}
