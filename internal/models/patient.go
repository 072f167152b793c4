package models

import "time"

// Patient defines the structure for patient records.
type Patient struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName   string    `json:"firstName" gorm:"column:first_name;not null"`
	LastName    string    `json:"lastName" gorm:"column:last_name;not null"`
	Email       string    `json:"email" gorm:"not null;uniqueIndex:idx_patients_email"`
	Phone       string    `json:"phone" gorm:"not null"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty" gorm:"column:date_of_birth"` // Optional field
	Gender      *string   `json:"gender,omitempty"`                                  // Optional field
	Address     *string   `json:"address,omitempty"`                                 // Optional field
	MedicalID   *string   `json:"medicalId,omitempty" gorm:"column:medical_id;uniqueIndex:idx_patients_medical_id"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false"`
}

func NewPatient(firstName, lastName, email, phone string, dateOfBirth, gender, address, medicalID *string) *Patient {
	return &Patient{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       phone,
		DateOfBirth: dateOfBirth,
		Gender:      gender,
		Address:     address,
		MedicalID:   medicalID,
	}
}

func (p *Patient) PrepareCreate(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
}

// DisplayName is the name copied onto appointments, consultations and history.
func (p *Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

func (Patient) TableName() string { return "patients" }
