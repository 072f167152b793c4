package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"clinic-backend/internal/models"
	"clinic-backend/internal/store"
)

// In-memory stand-ins for the store repositories. They apply the same
// creation defaults and uniqueness rules the database would.

type fakePatients struct {
	now  func() time.Time
	rows map[uint]models.Patient
	next uint
	err  error
}

var _ PatientStore = (*fakePatients)(nil)

func (f *fakePatients) unique(p *models.Patient) error {
	for id, row := range f.rows {
		if id == p.ID {
			continue
		}
		if row.Email == p.Email {
			return &store.ConstraintViolation{Table: "patients", Constraint: "idx_patients_email", Kind: store.ConstraintUnique}
		}
		if row.MedicalID != nil && p.MedicalID != nil && *row.MedicalID == *p.MedicalID {
			return &store.ConstraintViolation{Table: "patients", Constraint: "idx_patients_medical_id", Kind: store.ConstraintUnique}
		}
	}
	return nil
}

func (f *fakePatients) Create(_ context.Context, p *models.Patient) error {
	if f.err != nil {
		return f.err
	}
	p.PrepareCreate(f.now())
	if err := f.unique(p); err != nil {
		return err
	}
	f.next++
	p.ID = f.next
	f.rows[p.ID] = *p
	return nil
}

func (f *fakePatients) Get(_ context.Context, id uint) (*models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &row, nil
}

func (f *fakePatients) List(_ context.Context) ([]models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Patient{}
	for _, row := range f.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePatients) Page(ctx context.Context, q store.PageQuery) ([]models.Patient, int64, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	start := (q.Page - 1) * q.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + q.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (f *fakePatients) Update(_ context.Context, p *models.Patient) error {
	row, ok := f.rows[p.ID]
	if !ok {
		return store.ErrNotFound
	}
	if err := f.unique(p); err != nil {
		return err
	}
	updated := *p
	updated.CreatedAt = row.CreatedAt
	f.rows[p.ID] = updated
	return nil
}

func (f *fakePatients) Delete(ctx context.Context, id uint) (*models.Patient, error) {
	p, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(f.rows, id)
	return p, nil
}

func (f *fakePatients) Count(context.Context) (int64, error) { return int64(len(f.rows)), f.err }

type fakeDoctors struct {
	now  func() time.Time
	rows map[uint]models.Doctor
	next uint
}

var _ DoctorStore = (*fakeDoctors)(nil)

func (f *fakeDoctors) Create(_ context.Context, d *models.Doctor) error {
	d.PrepareCreate(f.now())
	for _, row := range f.rows {
		if row.Email == d.Email {
			return &store.ConstraintViolation{Table: "doctors", Constraint: "idx_doctors_email", Kind: store.ConstraintUnique}
		}
		if row.LicenseNumber == d.LicenseNumber {
			return &store.ConstraintViolation{Table: "doctors", Constraint: "idx_doctors_license_number", Kind: store.ConstraintUnique}
		}
	}
	f.next++
	d.ID = f.next
	f.rows[d.ID] = *d
	return nil
}

func (f *fakeDoctors) Get(_ context.Context, id uint) (*models.Doctor, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &row, nil
}

func (f *fakeDoctors) List(_ context.Context) ([]models.Doctor, error) {
	out := []models.Doctor{}
	for _, row := range f.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDoctors) BySpecialty(ctx context.Context, term string) ([]models.Doctor, error) {
	all, _ := f.List(ctx)
	out := []models.Doctor{}
	for _, d := range all {
		if strings.Contains(strings.ToLower(d.Specialty), strings.ToLower(strings.TrimSpace(term))) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDoctors) Count(context.Context) (int64, error) { return int64(len(f.rows)), nil }

func (f *fakeDoctors) Experience(ctx context.Context) ([]*float64, error) {
	all, _ := f.List(ctx)
	out := make([]*float64, len(all))
	for i, d := range all {
		if d.YearsOfExperience != nil {
			v := float64(*d.YearsOfExperience)
			out[i] = &v
		}
	}
	return out, nil
}

type fakeAppointments struct {
	now  func() time.Time
	rows map[uint]models.Appointment
	next uint
}

var _ AppointmentStore = (*fakeAppointments)(nil)

func (f *fakeAppointments) Create(_ context.Context, a *models.Appointment) error {
	a.PrepareCreate(f.now())
	f.next++
	a.ID = f.next
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeAppointments) Get(_ context.Context, id uint) (*models.Appointment, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &row, nil
}

func (f *fakeAppointments) List(_ context.Context) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, row := range f.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAppointments) Update(_ context.Context, a *models.Appointment) error {
	row, ok := f.rows[a.ID]
	if !ok {
		return store.ErrNotFound
	}
	updated := *a
	updated.CreatedAt = row.CreatedAt
	f.rows[a.ID] = updated
	return nil
}

func (f *fakeAppointments) Delete(ctx context.Context, id uint) (*models.Appointment, error) {
	a, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(f.rows, id)
	return a, nil
}

func (f *fakeAppointments) Count(context.Context) (int64, error) { return int64(len(f.rows)), nil }

func (f *fakeAppointments) CountByStatusBetween(_ context.Context, status models.AppointmentStatus, from, to time.Time) (int64, error) {
	var n int64
	for _, row := range f.rows {
		if row.Status == status && !row.DateTime.Before(from) && row.DateTime.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeHistory struct {
	now  func() time.Time
	rows []models.ClinicalHistory
}

var _ HistoryStore = (*fakeHistory)(nil)

func (f *fakeHistory) Create(_ context.Context, h *models.ClinicalHistory) error {
	h.PrepareCreate(f.now())
	h.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, *h)
	return nil
}

func (f *fakeHistory) List(context.Context) ([]models.ClinicalHistory, error) {
	return append([]models.ClinicalHistory{}, f.rows...), nil
}

func (f *fakeHistory) ByPatient(_ context.Context, patientID uint) ([]models.ClinicalHistory, error) {
	out := []models.ClinicalHistory{}
	for _, row := range f.rows {
		if row.PatientID == patientID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeHistory) Count(context.Context) (int64, error) { return int64(len(f.rows)), nil }

type fakeConsultations struct {
	now  func() time.Time
	rows map[uint]models.QuickConsultation
	next uint
}

var _ ConsultationStore = (*fakeConsultations)(nil)

func (f *fakeConsultations) Create(_ context.Context, q *models.QuickConsultation) error {
	q.PrepareCreate(f.now())
	f.next++
	q.ID = f.next
	f.rows[q.ID] = *q
	return nil
}

func (f *fakeConsultations) Get(_ context.Context, id uint) (*models.QuickConsultation, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &row, nil
}

func (f *fakeConsultations) List(_ context.Context) ([]models.QuickConsultation, error) {
	out := []models.QuickConsultation{}
	for _, row := range f.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeConsultations) Update(_ context.Context, q *models.QuickConsultation) error {
	row, ok := f.rows[q.ID]
	if !ok {
		return store.ErrNotFound
	}
	updated := *q
	updated.CreatedAt = row.CreatedAt
	f.rows[q.ID] = updated
	return nil
}

func (f *fakeConsultations) Delete(ctx context.Context, id uint) (*models.QuickConsultation, error) {
	q, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(f.rows, id)
	return q, nil
}

func (f *fakeConsultations) Count(context.Context) (int64, error) { return int64(len(f.rows)), nil }

func (f *fakeConsultations) CountActiveBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, row := range f.rows {
		if row.Status == models.ConsultationActive && !row.Date.Before(from) && row.Date.Before(to) {
			n++
		}
	}
	return n, nil
}
