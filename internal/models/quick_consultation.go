package models

import "time"

// ConsultationStatus is the state of a quick consultation, stored by name.
type ConsultationStatus string

const (
	ConsultationActive    ConsultationStatus = "ACTIVE"
	ConsultationCompleted ConsultationStatus = "COMPLETED"
)

func (s ConsultationStatus) Valid() bool {
	return s == ConsultationActive || s == ConsultationCompleted
}

// QuickConsultation defines a short, unscheduled doctor/patient contact.
type QuickConsultation struct {
	ID          uint               `json:"id" gorm:"primaryKey;autoIncrement"`
	PatientID   uint               `json:"patientId" gorm:"column:patient_id;not null;index"`
	PatientName string             `json:"patientName" gorm:"column:patient_name;not null"`
	DoctorID    uint               `json:"doctorId" gorm:"column:doctor_id;not null;index"`
	DoctorName  string             `json:"doctorName" gorm:"column:doctor_name;not null"`
	Date        time.Time          `json:"date" gorm:"not null"`
	Notes       string             `json:"notes" gorm:"type:text;not null"`
	Status      ConsultationStatus `json:"status" gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time          `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false"`
}

func NewQuickConsultation(patientID uint, patientName string, doctorID uint, doctorName string, date time.Time, notes string, status ConsultationStatus) *QuickConsultation {
	return &QuickConsultation{
		PatientID:   patientID,
		PatientName: patientName,
		DoctorID:    doctorID,
		DoctorName:  doctorName,
		Date:        date,
		Notes:       notes,
		Status:      status,
	}
}

// PrepareCreate fills creation defaults. An unset date takes the same instant
// as CreatedAt.
func (q *QuickConsultation) PrepareCreate(now time.Time) {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	if q.Date.IsZero() {
		q.Date = q.CreatedAt
	}
	if q.Status == "" {
		q.Status = ConsultationActive
	}
}

func (QuickConsultation) TableName() string { return "quick_consultations" }
