package store

import (
	"context"
	"strings"

	"clinic-backend/internal/models"
)

type PatientRepository struct{ base }

func (r *PatientRepository) Create(ctx context.Context, p *models.Patient) error {
	return r.create(ctx, p)
}

func (r *PatientRepository) Get(ctx context.Context, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.get(ctx, &p, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	if err := r.find(ctx, &patients, nil); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, p *models.Patient) error {
	return r.update(ctx, p)
}

// Delete removes the patient and returns the row as it was.
func (r *PatientRepository) Delete(ctx context.Context, id uint) (*models.Patient, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.delete(ctx, &models.Patient{}, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Patient{}, nil)
}

// PageQuery selects one page of patients. Page is 1-based.
type PageQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// Keys are what the frontend sends, values are column names.
var patientSortFields = map[string]string{
	"id":         "id",
	"firstname":  "first_name",
	"first_name": "first_name",
	"lastname":   "last_name",
	"last_name":  "last_name",
	"email":      "email",
	"medicalid":  "medical_id",
	"medical_id": "medical_id",
	"createdat":  "created_at",
	"created_at": "created_at",
}

// Page returns the requested page and the total number of patients.
// Unknown sort fields fall back to id.
func (r *PatientRepository) Page(ctx context.Context, q PageQuery) ([]models.Patient, int64, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	column, ok := patientSortFields[strings.ToLower(q.SortBy)]
	if !ok {
		column = "id"
	}
	order := strings.ToLower(q.SortOrder)
	if order != "asc" && order != "desc" {
		order = "asc"
	}

	patients := []models.Patient{}
	err = r.db.WithContext(ctx).
		Order(column + " " + order).
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&patients).Error
	if err != nil {
		return nil, 0, translate(r.table, err)
	}
	return patients, total, nil
}
