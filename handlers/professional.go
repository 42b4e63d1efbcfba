package handlers

import (
	"net/http"
	"time"

	"sanara/models"
	"sanara/services/professional"
	"sanara/services/scheduling"
	"sanara/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfessionalHandler exposes professional CRUD and slot browsing.
type ProfessionalHandler struct {
	Service   professional.ProfessionalService
	Scheduler scheduling.SchedulingEngine
	Calendar  *scheduling.Calendar
}

// NewProfessionalHandler constructs a ProfessionalHandler.
func NewProfessionalHandler(svc professional.ProfessionalService, engine scheduling.SchedulingEngine, cal *scheduling.Calendar) *ProfessionalHandler {
	return &ProfessionalHandler{Service: svc, Scheduler: engine, Calendar: cal}
}

func (h *ProfessionalHandler) CreateProfessionalHandler(c *gin.Context) {
	var req models.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.CreateProfessional(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProfessionalHandler) UpdateProfessionalHandler(c *gin.Context) {
	var req models.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	updated, err := h.Service.UpdateProfessional(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProfessionalHandler) GetProfessionalHandler(c *gin.Context) {
	found, err := h.Service.GetProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *ProfessionalHandler) ListProfessionalsHandler(c *gin.Context) {
	professionals, err := h.Service.ListProfessionals(c.Request.Context(), c.Query("speciality"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if professionals == nil {
		professionals = []models.Professional{}
	}
	c.JSON(http.StatusOK, professionals)
}

func (h *ProfessionalHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	var windows []models.AvailabilityWindow
	if err := c.ShouldBindJSON(&windows); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	updated, err := h.Service.ReplaceWeeklyAvailability(c.Request.Context(), c.Param("id"), windows)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetAvailableSlotsHandler returns the bookable slots of a professional on a
// date. A fetch failure is an explicit error response, never an empty list
// that looks fully booked.
func (h *ProfessionalHandler) GetAvailableSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	dateParam := c.Query("date")
	if dateParam == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "expected date=YYYY-MM-DD")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateParam, h.Calendar.Location())
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected date=YYYY-MM-DD")
		return
	}

	slots, err := h.Scheduler.FreeSlotsForDate(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		logger.Error("failed to compute free slots",
			zap.String("professionalID", c.Param("id")), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	if slots == nil {
		slots = []models.Slot{}
	}

	c.JSON(http.StatusOK, gin.H{
		"professionalId": c.Param("id"),
		"date":           dateParam,
		"slots":          slots,
	})
}
