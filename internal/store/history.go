package store

import (
	"context"

	"clinic-backend/internal/models"
)

// HistoryRepository stores clinical history entries. Entries are append-only
// through the API.
type HistoryRepository struct{ base }

func (r *HistoryRepository) Create(ctx context.Context, h *models.ClinicalHistory) error {
	return r.create(ctx, h)
}

func (r *HistoryRepository) Get(ctx context.Context, id uint) (*models.ClinicalHistory, error) {
	var h models.ClinicalHistory
	if err := r.get(ctx, &h, id); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]models.ClinicalHistory, error) {
	entries := []models.ClinicalHistory{}
	if err := r.find(ctx, &entries, nil); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepository) ByPatient(ctx context.Context, patientID uint) ([]models.ClinicalHistory, error) {
	entries := []models.ClinicalHistory{}
	if err := r.find(ctx, &entries, "patient_id = ?", patientID); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.ClinicalHistory{}, nil)
}
