package store

import (
	"context"
	"time"

	"clinic-backend/internal/models"
)

type AppointmentRepository struct{ base }

func (r *AppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	return r.create(ctx, a)
}

func (r *AppointmentRepository) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	var a models.Appointment
	if err := r.get(ctx, &a, id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	if err := r.find(ctx, &appointments, nil); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *models.Appointment) error {
	return r.update(ctx, a)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) (*models.Appointment, error) {
	a, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.delete(ctx, &models.Appointment{}, id); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Appointment{}, nil)
}

// CountByStatusBetween counts appointments in the given status whose
// date_time falls in [from, to).
func (r *AppointmentRepository) CountByStatusBetween(ctx context.Context, status models.AppointmentStatus, from, to time.Time) (int64, error) {
	return r.count(ctx, &models.Appointment{}, "status = ? AND date_time >= ? AND date_time < ?", status, from, to)
}
