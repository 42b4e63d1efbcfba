package handlers

import (
	"net/http"

	"sanara/models"
	"sanara/services/patient"
	"sanara/utils"

	"github.com/gin-gonic/gin"
)

// PatientHandler exposes patient CRUD.
type PatientHandler struct {
	Service patient.PatientService
}

// NewPatientHandler constructs a PatientHandler.
func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Service: svc}
}

func (h *PatientHandler) CreatePatientHandler(c *gin.Context) {
	var req models.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.CreatePatient(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	found, err := h.Service.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	var req models.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	updated, err := h.Service.UpdatePatient(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PatientHandler) ListPatientsHandler(c *gin.Context) {
	patients, err := h.Service.ListPatients(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	c.JSON(http.StatusOK, patients)
}
