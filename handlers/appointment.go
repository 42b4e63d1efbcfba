package handlers

import (
	"net/http"

	"sanara/models"
	"sanara/services/appointment"
	"sanara/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment booking workflow.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler books an appointment. An overlap with an existing
// occupying appointment yields 409 so clients can offer a different time; any
// other failure is a system error worth retrying as-is.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	updated, err := h.Service.UpdateAppointment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	found, err := h.Service.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *AppointmentHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	appointments, err := h.Service.ListPatientAppointments(c.Request.Context(), c.Param("patientId"), status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListProfessionalAppointmentsHandler(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	appointments, err := h.Service.ListProfessionalAppointments(c.Request.Context(), c.Param("professionalId"), status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}
