package appointment

import (
	"context"

	"sanara/models"
)

// AppointmentService manages the appointment booking workflow: policy
// validation, conflict gating, persistence, and notification scheduling.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListPatientAppointments(ctx context.Context, patientID string, status models.AppointmentStatus) ([]models.Appointment, error)
	ListProfessionalAppointments(ctx context.Context, professionalID string, status models.AppointmentStatus) ([]models.Appointment, error)
}
