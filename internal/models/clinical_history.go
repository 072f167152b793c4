package models

import "time"

// ClinicalHistory defines a diagnosis/treatment entry in a patient's record.
type ClinicalHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	PatientID   uint      `json:"patientId" gorm:"column:patient_id;not null;index"`
	PatientName string    `json:"patientName" gorm:"column:patient_name;not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Diagnosis   string    `json:"diagnosis" gorm:"not null"`
	Treatment   string    `json:"treatment" gorm:"type:text;not null"`
	Notes       string    `json:"notes" gorm:"type:text;not null"`
	DoctorName  string    `json:"doctorName" gorm:"column:doctor_name;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false"`
}

// NewClinicalHistory builds a history entry. A zero date is replaced with the
// creation instant by PrepareCreate.
func NewClinicalHistory(patientID uint, patientName string, date time.Time, diagnosis, treatment, notes, doctorName string) *ClinicalHistory {
	return &ClinicalHistory{
		PatientID:   patientID,
		PatientName: patientName,
		Date:        date,
		Diagnosis:   diagnosis,
		Treatment:   treatment,
		Notes:       notes,
		DoctorName:  doctorName,
	}
}

func (h *ClinicalHistory) PrepareCreate(now time.Time) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}
	if h.Date.IsZero() {
		h.Date = h.CreatedAt
	}
}

func (ClinicalHistory) TableName() string { return "clinical_history" }
