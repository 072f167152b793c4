package handlers

import (
	"net/http"

	"clinic-backend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateAppointmentRequest struct {
	PatientID RecordID   `json:"patientId" binding:"required"`
	DoctorID  RecordID   `json:"doctorId" binding:"required"`
	DateTime  *LocalTime `json:"dateTime" binding:"required"`
	Reason    string     `json:"reason" binding:"required"`
	Status    string     `json:"status"`
	Notes     *string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID *RecordID  `json:"patientId" binding:"omitempty,min=1"`
	DoctorID  *RecordID  `json:"doctorId" binding:"omitempty,min=1"`
	DateTime  *LocalTime `json:"dateTime"`
	Reason    *string    `json:"reason" binding:"omitempty,min=1"`
	Status    *string    `json:"status"`
	Notes     *string    `json:"notes"`
}

type AppointmentHandler struct {
	appointments AppointmentStore
	patients     PatientStore
	doctors      DoctorStore
	log          *zap.Logger
}

func NewAppointmentHandler(appointments AppointmentStore, patients PatientStore, doctors DoctorStore, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, patients: patients, doctors: doctors, log: log}
}

func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, err := h.appointments.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Appointments not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments, "count": len(appointments)})
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields: patientId, doctorId, dateTime, reason", err)
		return
	}
	status, ok := parseAppointmentStatus(req.Status)
	if !ok {
		badRequest(c, "Invalid appointment status: "+req.Status, nil)
		return
	}

	ctx := c.Request.Context()
	patient, doctor, err := lookupParties(ctx, h.patients, h.doctors, uint(req.PatientID), uint(req.DoctorID))
	if err != nil {
		respondError(c, h.log, err, "Patient or doctor not found")
		return
	}

	appointment := models.NewAppointment(patient.ID, doctor.ID, patient.DisplayName(), doctor.Title(),
		req.DateTime.Time, req.Reason, status, req.Notes)
	if err := h.appointments.Create(ctx, appointment); err != nil {
		respondError(c, h.log, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id, ok := parseID(c, "id", "appointment")
	if !ok {
		return
	}
	appointment, err := h.appointments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment applies a partial update. Changing the patient or doctor
// refreshes the copied names as well.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id", "appointment")
	if !ok {
		return
	}
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid appointment update", err)
		return
	}

	ctx := c.Request.Context()
	appointment, err := h.appointments.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "Appointment not found")
		return
	}

	if req.Status != nil {
		status, ok := parseAppointmentStatus(*req.Status)
		if !ok || status == "" {
			badRequest(c, "Invalid appointment status: "+*req.Status, nil)
			return
		}
		appointment.Status = status
	}
	if req.PatientID != nil || req.DoctorID != nil {
		patientID, doctorID := appointment.PatientID, appointment.DoctorID
		if req.PatientID != nil {
			patientID = uint(*req.PatientID)
		}
		if req.DoctorID != nil {
			doctorID = uint(*req.DoctorID)
		}
		patient, doctor, err := lookupParties(ctx, h.patients, h.doctors, patientID, doctorID)
		if err != nil {
			respondError(c, h.log, err, "Patient or doctor not found")
			return
		}
		appointment.PatientID, appointment.PatientName = patient.ID, patient.DisplayName()
		appointment.DoctorID, appointment.DoctorName = doctor.ID, doctor.Title()
	}
	if req.DateTime != nil {
		appointment.DateTime = req.DateTime.Time
	}
	setString(&appointment.Reason, req.Reason)
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	if err := h.appointments.Update(ctx, appointment); err != nil {
		respondError(c, h.log, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id", "appointment")
	if !ok {
		return
	}
	appointment, err := h.appointments.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appointment)
}
