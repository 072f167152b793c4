package handlers

import (
	"net/http"

	"clinic-backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateDoctorRequest struct {
	FirstName         string `json:"firstName" binding:"required"`
	LastName          string `json:"lastName" binding:"required"`
	Email             string `json:"email" binding:"required"`
	Specialty         string `json:"specialty" binding:"required"`
	Phone             string `json:"phone" binding:"required"`
	LicenseNumber     string `json:"licenseNumber" binding:"required"`
	YearsOfExperience *int   `json:"yearsOfExperience" binding:"omitempty,min=0"`
}

type DoctorHandler struct {
	doctors DoctorStore
	log     *zap.Logger
}

func NewDoctorHandler(doctors DoctorStore, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{doctors: doctors, log: log}
}

func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Doctors not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "count": len(doctors)})
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields: firstName, lastName, email, specialty, phone, licenseNumber", err)
		return
	}

	doctor := models.NewDoctor(req.FirstName, req.LastName, req.Email, req.Specialty,
		req.Phone, req.LicenseNumber, req.YearsOfExperience)
	if err := h.doctors.Create(c.Request.Context(), doctor); err != nil {
		respondError(c, h.log, err, "Doctor not found")
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := parseID(c, "id", "doctor")
	if !ok {
		return
	}
	doctor, err := h.doctors.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Doctor not found")
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// GetDoctorsBySpecialty filters on the :specialty path segment, falling back
// to the ?specialty query parameter.
func (h *DoctorHandler) GetDoctorsBySpecialty(c *gin.Context) {
	term := c.Param("specialty")
	if term == "" {
		term = c.Query("specialty")
	}
	doctors, err := h.doctors.BySpecialty(c.Request.Context(), term)
	if err != nil {
		respondError(c, h.log, err, "Doctors not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "count": len(doctors)})
}
