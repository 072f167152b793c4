package handlers

import (
	"net/http"

	"clinic-backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const unknownDoctorName = "Dr. Unknown"

type AddHistoryRequest struct {
	PatientID   RecordID   `json:"patientId" binding:"required"`
	PatientName string     `json:"patientName"`
	Date        *LocalTime `json:"date"`
	Diagnosis   string     `json:"diagnosis" binding:"required"`
	Treatment   string     `json:"treatment" binding:"required"`
	Notes       string     `json:"notes" binding:"required"`
	DoctorName  string     `json:"doctorName"`
}

type HistoryHandler struct {
	history  HistoryStore
	patients PatientStore
	log      *zap.Logger
}

func NewHistoryHandler(history HistoryStore, patients PatientStore, log *zap.Logger) *HistoryHandler {
	return &HistoryHandler{history: history, patients: patients, log: log}
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	entries, err := h.history.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "History not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries, "count": len(entries)})
}

func (h *HistoryHandler) GetPatientHistory(c *gin.Context) {
	patientID, ok := parseID(c, "patientId", "patient")
	if !ok {
		return
	}
	entries, err := h.history.ByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, h.log, err, "History not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries, "count": len(entries)})
}

// AddToHistory records a new entry. A missing patientName is taken from the
// patient record; a missing doctorName becomes "Dr. Unknown".
func (h *HistoryHandler) AddToHistory(c *gin.Context) {
	var req AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields: patientId, diagnosis, treatment, notes", err)
		return
	}

	ctx := c.Request.Context()
	patientName := req.PatientName
	if patientName == "" {
		patient, err := h.patients.Get(ctx, uint(req.PatientID))
		if err != nil {
			respondError(c, h.log, err, "Patient not found")
			return
		}
		patientName = patient.DisplayName()
	}
	doctorName := req.DoctorName
	if doctorName == "" {
		doctorName = unknownDoctorName
	}

	entry := models.NewClinicalHistory(uint(req.PatientID), patientName, timeOrZero(req.Date), req.Diagnosis, req.Treatment, req.Notes, doctorName)
	if err := h.history.Create(ctx, entry); err != nil {
		respondError(c, h.log, err, "History not found")
		return
	}
	c.JSON(http.StatusCreated, entry)
}
