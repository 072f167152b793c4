package handlers

import (
	"context"
	"strings"

	"clinic-backend/internal/models"
)

// lookupParties loads the patient and doctor a record refers to, so their
// display names can be copied onto it.
func lookupParties(ctx context.Context, patients PatientStore, doctors DoctorStore, patientID, doctorID uint) (*models.Patient, *models.Doctor, error) {
	patient, err := patients.Get(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	doctor, err := doctors.Get(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	return patient, doctor, nil
}

// Status names are accepted in any case; "" means "use the default".
func parseAppointmentStatus(s string) (models.AppointmentStatus, bool) {
	if s == "" {
		return "", true
	}
	status := models.AppointmentStatus(strings.ToUpper(s))
	return status, status.Valid()
}

func parseConsultationStatus(s string) (models.ConsultationStatus, bool) {
	if s == "" {
		return "", true
	}
	status := models.ConsultationStatus(strings.ToUpper(s))
	return status, status.Valid()
}
