package handlers

import (
	"net/http"

	"clinic-backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateConsultationRequest struct {
	PatientID RecordID   `json:"patientId" binding:"required"`
	DoctorID  RecordID   `json:"doctorId" binding:"required"`
	Notes     string     `json:"notes" binding:"required"`
	Date      *LocalTime `json:"date"`
	Status    string     `json:"status"`
}

type UpdateConsultationRequest struct {
	Notes  *string    `json:"notes" binding:"omitempty,min=1"`
	Date   *LocalTime `json:"date"`
	Status *string    `json:"status"`
}

type ConsultationHandler struct {
	consultations ConsultationStore
	patients      PatientStore
	doctors       DoctorStore
	log           *zap.Logger
}

func NewConsultationHandler(consultations ConsultationStore, patients PatientStore, doctors DoctorStore, log *zap.Logger) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations, patients: patients, doctors: doctors, log: log}
}

func (h *ConsultationHandler) GetConsultations(c *gin.Context) {
	consultations, err := h.consultations.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Consultations not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultations": consultations, "count": len(consultations)})
}

func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	var req CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields: patientId, doctorId, notes", err)
		return
	}
	status, ok := parseConsultationStatus(req.Status)
	if !ok {
		badRequest(c, "Invalid consultation status: "+req.Status, nil)
		return
	}

	ctx := c.Request.Context()
	patient, doctor, err := lookupParties(ctx, h.patients, h.doctors, uint(req.PatientID), uint(req.DoctorID))
	if err != nil {
		respondError(c, h.log, err, "Patient or doctor not found")
		return
	}

	consultation := models.NewQuickConsultation(patient.ID, patient.DisplayName(), doctor.ID, doctor.Title(),
		timeOrZero(req.Date), req.Notes, status)
	if err := h.consultations.Create(ctx, consultation); err != nil {
		respondError(c, h.log, err, "Consultation not found")
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

func (h *ConsultationHandler) GetConsultationByID(c *gin.Context) {
	id, ok := parseID(c, "id", "consultation")
	if !ok {
		return
	}
	consultation, err := h.consultations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Consultation not found")
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	id, ok := parseID(c, "id", "consultation")
	if !ok {
		return
	}
	var req UpdateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid consultation update", err)
		return
	}

	ctx := c.Request.Context()
	consultation, err := h.consultations.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "Consultation not found")
		return
	}
	if req.Status != nil {
		status, ok := parseConsultationStatus(*req.Status)
		if !ok || status == "" {
			badRequest(c, "Invalid consultation status: "+*req.Status, nil)
			return
		}
		consultation.Status = status
	}
	setString(&consultation.Notes, req.Notes)
	if req.Date != nil {
		consultation.Date = req.Date.Time
	}

	if err := h.consultations.Update(ctx, consultation); err != nil {
		respondError(c, h.log, err, "Consultation not found")
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	id, ok := parseID(c, "id", "consultation")
	if !ok {
		return
	}
	consultation, err := h.consultations.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Consultation not found")
		return
	}
	c.JSON(http.StatusOK, consultation)
}
