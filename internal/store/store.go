package store

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Store is the storage boundary for all clinic records. Identity assignment
// and uniqueness are left to the database.
type Store struct {
	Patients      *PatientRepository
	Doctors       *DoctorRepository
	Appointments  *AppointmentRepository
	History       *HistoryRepository
	Consultations *ConsultationRepository
}

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New(db *gorm.DB, opts ...Option) *Store {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		Patients:      &PatientRepository{base{db: db, now: o.now, table: "patients"}},
		Doctors:       &DoctorRepository{base{db: db, now: o.now, table: "doctors"}},
		Appointments:  &AppointmentRepository{base{db: db, now: o.now, table: "appointments"}},
		History:       &HistoryRepository{base{db: db, now: o.now, table: "clinical_history"}},
		Consultations: &ConsultationRepository{base{db: db, now: o.now, table: "quick_consultations"}},
	}
}

type preparer interface {
	PrepareCreate(now time.Time)
}

// base holds the statements shared by every repository.
type base struct {
	db    *gorm.DB
	now   func() time.Time
	table string
}

// create applies the creation defaults and inserts rec. The generated id is
// written back into rec.
func (b base) create(ctx context.Context, rec preparer) error {
	rec.PrepareCreate(b.now())
	return translate(b.table, b.db.WithContext(ctx).Create(rec).Error)
}

func (b base) get(ctx context.Context, dest interface{}, id uint) error {
	return translate(b.table, b.db.WithContext(ctx).First(dest, id).Error)
}

func (b base) find(ctx context.Context, dest interface{}, query interface{}, args ...interface{}) error {
	tx := b.db.WithContext(ctx)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	return translate(b.table, tx.Order("id").Find(dest).Error)
}

// update writes every column except id and created_at.
func (b base) update(ctx context.Context, rec interface{}) error {
	res := b.db.WithContext(ctx).Model(rec).Select("*").Omit("id", "created_at").Updates(rec)
	if res.Error != nil {
		return translate(b.table, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (b base) delete(ctx context.Context, model interface{}, id uint) error {
	res := b.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return translate(b.table, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (b base) count(ctx context.Context, model interface{}, query interface{}, args ...interface{}) (int64, error) {
	var n int64
	tx := b.db.WithContext(ctx).Model(model)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, translate(b.table, err)
	}
	return n, nil
}
