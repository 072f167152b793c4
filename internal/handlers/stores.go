package handlers

import (
	"context"
	"time"

	"clinic-backend/internal/models"
	"clinic-backend/internal/store"
)

// The interfaces below are the subsets of the store repositories each
// handler uses.

type PatientStore interface {
	Create(ctx context.Context, p *models.Patient) error
	Get(ctx context.Context, id uint) (*models.Patient, error)
	List(ctx context.Context) ([]models.Patient, error)
	Page(ctx context.Context, q store.PageQuery) ([]models.Patient, int64, error)
	Update(ctx context.Context, p *models.Patient) error
	Delete(ctx context.Context, id uint) (*models.Patient, error)
	Count(ctx context.Context) (int64, error)
}

type DoctorStore interface {
	Create(ctx context.Context, d *models.Doctor) error
	Get(ctx context.Context, id uint) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	BySpecialty(ctx context.Context, term string) ([]models.Doctor, error)
	Count(ctx context.Context) (int64, error)
	Experience(ctx context.Context) ([]*float64, error)
}

type AppointmentStore interface {
	Create(ctx context.Context, a *models.Appointment) error
	Get(ctx context.Context, id uint) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	Update(ctx context.Context, a *models.Appointment) error
	Delete(ctx context.Context, id uint) (*models.Appointment, error)
	Count(ctx context.Context) (int64, error)
	CountByStatusBetween(ctx context.Context, status models.AppointmentStatus, from, to time.Time) (int64, error)
}

type HistoryStore interface {
	Create(ctx context.Context, h *models.ClinicalHistory) error
	List(ctx context.Context) ([]models.ClinicalHistory, error)
	ByPatient(ctx context.Context, patientID uint) ([]models.ClinicalHistory, error)
	Count(ctx context.Context) (int64, error)
}

type ConsultationStore interface {
	Create(ctx context.Context, q *models.QuickConsultation) error
	Get(ctx context.Context, id uint) (*models.QuickConsultation, error)
	List(ctx context.Context) ([]models.QuickConsultation, error)
	Update(ctx context.Context, q *models.QuickConsultation) error
	Delete(ctx context.Context, id uint) (*models.QuickConsultation, error)
	Count(ctx context.Context) (int64, error)
	CountActiveBetween(ctx context.Context, from, to time.Time) (int64, error)
}

var (
	_ PatientStore      = (*store.PatientRepository)(nil)
	_ DoctorStore       = (*store.DoctorRepository)(nil)
	_ AppointmentStore  = (*store.AppointmentRepository)(nil)
	_ HistoryStore      = (*store.HistoryRepository)(nil)
	_ ConsultationStore = (*store.ConsultationRepository)(nil)
)
