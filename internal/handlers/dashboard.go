package handlers

import (
	"net/http"
	"time"

	"clinic-backend/internal/models"
	"clinic-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	patients      PatientStore
	doctors       DoctorStore
	appointments  AppointmentStore
	history       HistoryStore
	consultations ConsultationStore
	now           func() time.Time
	log           *zap.Logger
}

func NewDashboardHandler(patients PatientStore, doctors DoctorStore, appointments AppointmentStore,
	history HistoryStore, consultations ConsultationStore, now func() time.Time, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		patients:      patients,
		doctors:       doctors,
		appointments:  appointments,
		history:       history,
		consultations: consultations,
		now:           now,
		log:           log,
	}
}

// GetDashboard returns the figures shown on the front page: totals per
// record type, today's scheduled appointments and active consultations, and
// the doctors' experience spread.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	counts := map[string]int64{}
	now := h.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	counters := []struct {
		key   string
		count func() (int64, error)
	}{
		{"patients", func() (int64, error) { return h.patients.Count(ctx) }},
		{"doctors", func() (int64, error) { return h.doctors.Count(ctx) }},
		{"appointments", func() (int64, error) { return h.appointments.Count(ctx) }},
		{"history", func() (int64, error) { return h.history.Count(ctx) }},
		{"consultations", func() (int64, error) { return h.consultations.Count(ctx) }},
		{"scheduledAppointments", func() (int64, error) {
			return h.appointments.CountByStatusBetween(ctx, models.AppointmentScheduled, dayStart, dayEnd)
		}},
		{"todaysActiveConsultations", func() (int64, error) {
			return h.consultations.CountActiveBetween(ctx, dayStart, dayEnd)
		}},
	}
	for _, counter := range counters {
		n, err := counter.count()
		if err != nil {
			respondError(c, h.log, err, "Dashboard data not found")
			return
		}
		counts[counter.key] = n
	}

	years, err := h.doctors.Experience(ctx)
	if err != nil {
		respondError(c, h.log, err, "Dashboard data not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":           counts,
		"doctorExperience": utils.CalculateStats(years),
	})
}

// Ping answers with the configured message.
func Ping(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}
