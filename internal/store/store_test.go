package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"clinic-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var fixedNow = time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Store) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, openStore(t, db)
}

func openStore(t *testing.T, db *sql.DB) *Store {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return New(gdb, WithClock(func() time.Time { return fixedNow }))
}

func TestAppointmentCreate_DefaultsStatusAndCreatedAt(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	dateTime := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WithArgs(1, 2, "John Doe", "Dr. Wilson", dateTime, "checkup", "SCHEDULED", nil, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	a := models.NewAppointment(1, 2, "John Doe", "Dr. Wilson", dateTime, "checkup", "", nil)
	err := s.Appointments.Create(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, uint(7), a.ID)
	assert.Equal(t, models.AppointmentScheduled, a.Status)
	assert.Equal(t, fixedNow, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationCreate_DateEqualsCreatedAt(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "quick_consultations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	q := models.NewQuickConsultation(1, "John Doe", 2, "Dr. Brown", time.Time{}, "follow-up", "")
	require.NoError(t, s.Consultations.Create(context.Background(), q))

	assert.Equal(t, uint(3), q.ID)
	assert.Equal(t, models.ConsultationActive, q.Status)
	assert.Equal(t, fixedNow, q.CreatedAt)
	assert.True(t, q.Date.Equal(q.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorCreate_DuplicateEmail(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "doctors"`).
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "doctors", ConstraintName: "idx_doctors_email"})

	d := models.NewDoctor("Sarah", "Wilson", "sarah.wilson@hospital.com", "Cardiology", "555", "LIC009", nil)
	err := s.Doctors.Create(context.Background(), d)

	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err))

	var cv *ConstraintViolation
	require.True(t, errors.As(err, &cv))
	assert.Equal(t, ConstraintUnique, cv.Kind)
	assert.Equal(t, "doctors", cv.Table)
	assert.Equal(t, "idx_doctors_email", cv.Constraint)
	assert.Contains(t, cv.Error(), "idx_doctors_email")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorCreate_DuplicateLicense(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "doctors"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_doctors_license_number"})

	d := models.NewDoctor("Emily", "Davis", "emily@hospital.com", "Neurology", "555", "LIC001", nil)
	err := s.Doctors.Create(context.Background(), d)

	var cv *ConstraintViolation
	require.True(t, errors.As(err, &cv))
	assert.Equal(t, ConstraintUnique, cv.Kind)
	assert.Equal(t, "doctors", cv.Table)
	assert.Equal(t, "idx_doctors_license_number", cv.Constraint)
}

func TestPatientCreate_Violations(t *testing.T) {
	tests := []struct {
		name       string
		pgErr      *pgconn.PgError
		wantKind   ConstraintKind
		constraint string
	}{
		{"duplicate email", &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_email"}, ConstraintUnique, "idx_patients_email"},
		{"duplicate medical id", &pgconn.PgError{Code: "23505", ConstraintName: "idx_patients_medical_id"}, ConstraintUnique, "idx_patients_medical_id"},
		{"missing phone", &pgconn.PgError{Code: "23502", ColumnName: "phone"}, ConstraintNotNull, ""},
		{"check violation", &pgconn.PgError{Code: "23514", ConstraintName: "patients_email_check"}, ConstraintCheck, "patients_email_check"},
		{"other integrity class", &pgconn.PgError{Code: "23P01"}, ConstraintOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, s := setupMockDB(t)
			defer db.Close()

			mock.ExpectQuery(`INSERT INTO "patients"`).WillReturnError(tt.pgErr)

			medicalID := "MED001"
			p := models.NewPatient("John", "Doe", "john.doe@email.com", "555", nil, nil, nil, &medicalID)
			err := s.Patients.Create(context.Background(), p)

			var cv *ConstraintViolation
			require.True(t, errors.As(err, &cv))
			assert.Equal(t, tt.wantKind, cv.Kind)
			assert.Equal(t, "patients", cv.Table)
			assert.Equal(t, tt.constraint, cv.Constraint)
			assert.Same(t, tt.pgErr, errors.Unwrap(cv))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.Nil(t, translate("patients", nil))
	assert.ErrorIs(t, translate("patients", gorm.ErrRecordNotFound), ErrNotFound)
	assert.True(t, IsConstraintViolation(translate("patients", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey))))
	assert.True(t, IsConstraintViolation(translate("patients", gorm.ErrForeignKeyViolated)))

	plain := errors.New("connection refused")
	assert.Same(t, plain, translate("patients", plain))
	assert.False(t, IsConstraintViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, IsConstraintViolation(translate("patients", &pgconn.PgError{Code: "42P01"})))
}

func TestPatientGet_NotFound(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE "patients"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := s.Patients.Get(context.Background(), 42)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientUpdate_LeavesCreatedAtAlone(t *testing.T) {
	matcher := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		if strings.Contains(actualSQL, "created_at") {
			return fmt.Errorf("update touches created_at: %s", actualSQL)
		}
		return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
	})
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	defer db.Close()
	s := openStore(t, db)

	mock.ExpectExec(`UPDATE "patients" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	p := models.NewPatient("John", "Doe", "john.doe@email.com", "555-0000", nil, nil, nil, nil)
	p.ID = 1
	p.CreatedAt = fixedNow.Add(-24 * time.Hour)

	require.NoError(t, s.Patients.Update(context.Background(), p))
	assert.Equal(t, fixedNow.Add(-24*time.Hour), p.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUpdate_Missing(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE "appointments" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	a := models.NewAppointment(1, 2, "John Doe", "Dr. Wilson", fixedNow, "checkup", models.AppointmentCompleted, nil)
	a.ID = 99

	assert.ErrorIs(t, s.Appointments.Update(context.Background(), a), ErrNotFound)
}

func TestAppointmentDelete_ReturnsDeletedRow(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "patient_id", "doctor_id", "patient_name", "doctor_name", "date_time", "reason", "status", "notes", "created_at"}).
		AddRow(5, 1, 2, "John Doe", "Dr. Wilson", fixedNow, "checkup", "SCHEDULED", nil, fixedNow)
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).WillReturnRows(rows)
	mock.ExpectExec(`DELETE FROM "appointments"`).WillReturnResult(sqlmock.NewResult(0, 1))

	a, err := s.Appointments.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, uint(5), a.ID)
	assert.Equal(t, models.AppointmentScheduled, a.Status)
	assert.Nil(t, a.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorBySpecialty(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "specialty"}).
		AddRow(1, "Sarah", "Wilson", "Cardiology")
	mock.ExpectQuery(`SELECT \* FROM "doctors" WHERE LOWER\(specialty\) LIKE \$1`).
		WithArgs("%cardio%").
		WillReturnRows(rows)

	doctors, err := s.Doctors.BySpecialty(context.Background(), " Cardio ")

	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Wilson", doctors[0].LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorExperience(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "years_of_experience"}).
		AddRow(1, 12).
		AddRow(2, nil).
		AddRow(3, 8)
	mock.ExpectQuery(`SELECT "id","years_of_experience" FROM "doctors"`).WillReturnRows(rows)

	years, err := s.Doctors.Experience(context.Background())

	require.NoError(t, err)
	require.Len(t, years, 3)
	assert.Equal(t, 12.0, *years[0])
	assert.Nil(t, years[1])
	assert.Equal(t, 8.0, *years[2])
}

func TestHistoryByPatient(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "patient_id", "patient_name", "diagnosis"}).
		AddRow(1, 1, "John Doe", "Hypertension").
		AddRow(2, 1, "John Doe", "Regular checkup")
	mock.ExpectQuery(`SELECT \* FROM "clinical_history" WHERE patient_id = \$1`).
		WithArgs(1).
		WillReturnRows(rows)

	entries, err := s.History.ByPatient(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Regular checkup", entries[1].Diagnosis)
}

func TestConsultationCountActiveBetween(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	from := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "quick_consultations" WHERE status = \$1 AND date >= \$2 AND date < \$3`).
		WithArgs("ACTIVE", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := s.Consultations.CountActiveBetween(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentCountByStatusBetween(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	from := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE status = \$1 AND date_time >= \$2 AND date_time < \$3`).
		WithArgs("SCHEDULED", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := s.Appointments.CountByStatusBetween(context.Background(), models.AppointmentScheduled, from, to)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientPage_UnknownSortFallsBackToID(t *testing.T) {
	db, mock, s := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "patients" ORDER BY id desc LIMIT (\$1|10) OFFSET (\$2|10)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name"}).AddRow(15, "Ann"))

	patients, total, err := s.Patients.Page(context.Background(), PageQuery{Page: 2, PageSize: 10, SortBy: "password", SortOrder: "DESC"})

	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, patients, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
