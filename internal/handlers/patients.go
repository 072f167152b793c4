package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"clinic-backend/internal/models"
	"clinic-backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// --- Structs for Request Binding ---

type CreatePatientRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	MedicalID   *string `json:"medicalId"`
}

// UpdatePatientRequest carries a partial update; nil fields are left as they are.
type UpdatePatientRequest struct {
	FirstName   *string `json:"firstName" binding:"omitempty,min=1"`
	LastName    *string `json:"lastName" binding:"omitempty,min=1"`
	Email       *string `json:"email" binding:"omitempty,min=1"`
	Phone       *string `json:"phone" binding:"omitempty,min=1"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	MedicalID   *string `json:"medicalId"`
}

func (r *UpdatePatientRequest) apply(p *models.Patient) {
	setString(&p.FirstName, r.FirstName)
	setString(&p.LastName, r.LastName)
	setString(&p.Email, r.Email)
	setString(&p.Phone, r.Phone)
	if r.DateOfBirth != nil {
		p.DateOfBirth = r.DateOfBirth
	}
	if r.Gender != nil {
		p.Gender = r.Gender
	}
	if r.Address != nil {
		p.Address = r.Address
	}
	if r.MedicalID != nil {
		p.MedicalID = nullIfBlank(r.MedicalID)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// nullIfBlank maps a blank value to NULL, so that several patients without a
// medical id do not collide on its unique index.
func nullIfBlank(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}

// --- Handler Functions ---

type PatientHandler struct {
	patients PatientStore
	log      *zap.Logger
}

func NewPatientHandler(patients PatientStore, log *zap.Logger) *PatientHandler {
	return &PatientHandler{patients: patients, log: log}
}

// GetPatients lists all patients. When a page parameter is present the
// result is paginated and sorted instead.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	if _, paged := c.GetQuery("page"); paged {
		h.getPatientsWithPage(c)
		return
	}

	patients, err := h.patients.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Patients not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients, "count": len(patients)})
}

func (h *PatientHandler) getPatientsWithPage(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	patients, total, err := h.patients.Page(c.Request.Context(), store.PageQuery{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.DefaultQuery("sortBy", "id"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
	})
	if err != nil {
		respondError(c, h.log, err, "Patients not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patients": patients,
		"count":    len(patients),
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields: firstName, lastName, email, phone", err)
		return
	}

	patient := models.NewPatient(req.FirstName, req.LastName, req.Email, req.Phone,
		req.DateOfBirth, req.Gender, req.Address, nullIfBlank(req.MedicalID))
	if err := h.patients.Create(c.Request.Context(), patient); err != nil {
		respondError(c, h.log, err, "Patient not found")
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}
	patient, err := h.patients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Patient not found")
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}
	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid patient update", err)
		return
	}

	patient, err := h.patients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Patient not found")
		return
	}
	req.apply(patient)

	if err := h.patients.Update(c.Request.Context(), patient); err != nil {
		respondError(c, h.log, err, "Patient not found")
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id", "patient")
	if !ok {
		return
	}
	patient, err := h.patients.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Patient not found")
		return
	}
	c.JSON(http.StatusOK, patient)
}
