package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment, stored by name.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Valid reports whether s is one of the defined appointment states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment defines the structure for scheduled patient visits.
type Appointment struct {
	ID          uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	PatientID   uint              `json:"patientId" gorm:"column:patient_id;not null;index"`
	DoctorID    uint              `json:"doctorId" gorm:"column:doctor_id;not null;index"`
	PatientName string            `json:"patientName" gorm:"column:patient_name;not null"`
	DoctorName  string            `json:"doctorName" gorm:"column:doctor_name;not null"`
	DateTime    time.Time         `json:"dateTime" gorm:"column:date_time;not null"`
	Reason      string            `json:"reason" gorm:"not null"`
	Status      AppointmentStatus `json:"status" gorm:"type:varchar(32);not null"`
	Notes       *string           `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time         `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false"`
}

// NewAppointment builds an appointment from caller-supplied fields. Status
// may be empty; it is defaulted by PrepareCreate.
func NewAppointment(patientID, doctorID uint, patientName, doctorName string, dateTime time.Time, reason string, status AppointmentStatus, notes *string) *Appointment {
	return &Appointment{
		PatientID:   patientID,
		DoctorID:    doctorID,
		PatientName: patientName,
		DoctorName:  doctorName,
		DateTime:    dateTime,
		Reason:      reason,
		Status:      status,
		Notes:       notes,
	}
}

// PrepareCreate fills creation defaults. It must run once, right before the
// record is first inserted.
func (a *Appointment) PrepareCreate(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.Status == "" {
		a.Status = AppointmentScheduled
	}
}

func (Appointment) TableName() string { return "appointments" }
