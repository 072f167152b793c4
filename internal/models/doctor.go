package models

import "time"

// Doctor defines the structure for doctor records.
type Doctor struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName         string    `json:"firstName" gorm:"column:first_name;not null"`
	LastName          string    `json:"lastName" gorm:"column:last_name;not null"`
	Email             string    `json:"email" gorm:"not null;uniqueIndex:idx_doctors_email"`
	Specialty         string    `json:"specialty" gorm:"not null;index"`
	Phone             string    `json:"phone" gorm:"not null"`
	LicenseNumber     string    `json:"licenseNumber" gorm:"column:license_number;not null;uniqueIndex:idx_doctors_license_number"`
	YearsOfExperience *int      `json:"yearsOfExperience,omitempty" gorm:"column:years_of_experience"` // Optional field
	CreatedAt         time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime:false"`
}

func NewDoctor(firstName, lastName, email, specialty, phone, licenseNumber string, yearsOfExperience *int) *Doctor {
	return &Doctor{
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		Specialty:         specialty,
		Phone:             phone,
		LicenseNumber:     licenseNumber,
		YearsOfExperience: yearsOfExperience,
	}
}

func (d *Doctor) PrepareCreate(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
}

// Title is the name shown on records that reference this doctor.
func (d *Doctor) Title() string {
	return "Dr. " + d.LastName
}

func (Doctor) TableName() string { return "doctors" }
