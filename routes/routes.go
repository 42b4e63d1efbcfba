package routes

import (
	"net/http"
	"time"

	"sanara/config"
	"sanara/handlers"
	"sanara/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProfessionalRoutes registers professional management and slot
// browsing endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, h *handlers.ProfessionalHandler) {
	api := r.Group("/api/professionals")
	{
		api.POST("", h.CreateProfessionalHandler)
		api.GET("", h.ListProfessionalsHandler)
		api.GET("/:id", h.GetProfessionalHandler)
		api.PUT("/:id", h.UpdateProfessionalHandler)
		api.PUT("/:id/availability", h.ReplaceAvailabilityHandler)
		api.GET("/:id/available-slots", h.GetAvailableSlotsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, h *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", h.CreateAppointmentHandler)
		api.GET("/:id", h.GetAppointmentHandler)
		api.PUT("/:id", h.UpdateAppointmentHandler)
		api.GET("/patients/:patientId", h.ListPatientAppointmentsHandler)
		api.GET("/professionals/:professionalId", h.ListProfessionalAppointmentsHandler)
	}
}

// RegisterPatientRoutes registers patient CRUD endpoints.
func RegisterPatientRoutes(r *gin.Engine, h *handlers.PatientHandler) {
	api := r.Group("/api/patients")
	{
		api.POST("", h.CreatePatientHandler)
		api.GET("", h.ListPatientsHandler)
		api.GET("/:id", h.GetPatientHandler)
		api.PUT("/:id", h.UpdatePatientHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// SetupRoutes applies the CORS policy and wires all route groups.
func SetupRoutes(
	r *gin.Engine,
	professionalHandler *handlers.ProfessionalHandler,
	appointmentHandler *handlers.AppointmentHandler,
	patientHandler *handlers.PatientHandler,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProfessionalRoutes(r, professionalHandler)
	RegisterAppointmentRoutes(r, appointmentHandler)
	RegisterPatientRoutes(r, patientHandler)
	RegisterHealthRoute(r)
}
