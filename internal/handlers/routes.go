package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Stores bundles the repositories the API reads and writes.
type Stores struct {
	Patients      PatientStore
	Doctors       DoctorStore
	Appointments  AppointmentStore
	History       HistoryStore
	Consultations ConsultationStore
}

// RegisterRoutes mounts the clinic API on api, normally the /api group.
func RegisterRoutes(api gin.IRouter, s Stores, now func() time.Time, pingMessage string, log *zap.Logger) {
	patientHandler := NewPatientHandler(s.Patients, log)
	doctorHandler := NewDoctorHandler(s.Doctors, log)
	appointmentHandler := NewAppointmentHandler(s.Appointments, s.Patients, s.Doctors, log)
	historyHandler := NewHistoryHandler(s.History, s.Patients, log)
	consultationHandler := NewConsultationHandler(s.Consultations, s.Patients, s.Doctors, log)
	dashboardHandler := NewDashboardHandler(s.Patients, s.Doctors, s.Appointments, s.History, s.Consultations, now, log)

	api.GET("/ping", Ping(pingMessage))
	api.GET("/dashboard", dashboardHandler.GetDashboard)

	api.GET("/patients", patientHandler.GetPatients)
	api.POST("/patients", patientHandler.CreatePatient)
	api.GET("/patients/:id", patientHandler.GetPatientByID)
	api.PUT("/patients/:id", patientHandler.UpdatePatient)
	api.DELETE("/patients/:id", patientHandler.DeletePatient)

	api.GET("/appointments", appointmentHandler.GetAppointments)
	api.POST("/appointments", appointmentHandler.CreateAppointment)
	api.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
	api.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	api.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)

	api.GET("/doctors", doctorHandler.GetDoctors)
	api.POST("/doctors", doctorHandler.CreateDoctor)
	api.GET("/doctors/specialty/:specialty", doctorHandler.GetDoctorsBySpecialty)
	api.GET("/doctors/:id", doctorHandler.GetDoctorByID)

	api.GET("/history", historyHandler.GetHistory)
	api.GET("/history/patient/:patientId", historyHandler.GetPatientHistory)
	api.POST("/history", historyHandler.AddToHistory)

	api.GET("/consultations", consultationHandler.GetConsultations)
	api.POST("/consultations", consultationHandler.CreateConsultation)
	api.GET("/consultations/:id", consultationHandler.GetConsultationByID)
	api.PUT("/consultations/:id", consultationHandler.UpdateConsultation)
	api.DELETE("/consultations/:id", consultationHandler.DeleteConsultation)
}
