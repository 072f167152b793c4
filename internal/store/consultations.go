package store

import (
	"context"
	"time"

	"clinic-backend/internal/models"
)

type ConsultationRepository struct{ base }

func (r *ConsultationRepository) Create(ctx context.Context, q *models.QuickConsultation) error {
	return r.create(ctx, q)
}

func (r *ConsultationRepository) Get(ctx context.Context, id uint) (*models.QuickConsultation, error) {
	var q models.QuickConsultation
	if err := r.get(ctx, &q, id); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *ConsultationRepository) List(ctx context.Context) ([]models.QuickConsultation, error) {
	consultations := []models.QuickConsultation{}
	if err := r.find(ctx, &consultations, nil); err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *ConsultationRepository) Update(ctx context.Context, q *models.QuickConsultation) error {
	return r.update(ctx, q)
}

func (r *ConsultationRepository) Delete(ctx context.Context, id uint) (*models.QuickConsultation, error) {
	q, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.delete(ctx, &models.QuickConsultation{}, id); err != nil {
		return nil, err
	}
	return q, nil
}

func (r *ConsultationRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.QuickConsultation{}, nil)
}

// CountActiveBetween counts ACTIVE consultations dated in [from, to).
func (r *ConsultationRepository) CountActiveBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.count(ctx, &models.QuickConsultation{}, "status = ? AND date >= ? AND date < ?", models.ConsultationActive, from, to)
}
