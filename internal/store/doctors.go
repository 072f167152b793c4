package store

import (
	"context"
	"strings"

	"clinic-backend/internal/models"
)

type DoctorRepository struct{ base }

func (r *DoctorRepository) Create(ctx context.Context, d *models.Doctor) error {
	return r.create(ctx, d)
}

func (r *DoctorRepository) Get(ctx context.Context, id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.get(ctx, &d, id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if err := r.find(ctx, &doctors, nil); err != nil {
		return nil, err
	}
	return doctors, nil
}

// BySpecialty matches term anywhere in the specialty, ignoring case. An empty
// term returns every doctor.
func (r *DoctorRepository) BySpecialty(ctx context.Context, term string) ([]models.Doctor, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx)
	}
	doctors := []models.Doctor{}
	if err := r.find(ctx, &doctors, "LOWER(specialty) LIKE ?", "%"+strings.ToLower(term)+"%"); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Doctor{}, nil)
}

// Experience returns years_of_experience for every doctor; nil where unknown.
func (r *DoctorRepository) Experience(ctx context.Context) ([]*float64, error) {
	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).Select("id", "years_of_experience").Order("id").Find(&doctors).Error; err != nil {
		return nil, translate(r.table, err)
	}
	out := make([]*float64, len(doctors))
	for i, d := range doctors {
		if d.YearsOfExperience != nil {
			v := float64(*d.YearsOfExperience)
			out[i] = &v
		}
	}
	return out, nil
}
