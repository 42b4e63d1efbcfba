package appointmentRepo

import (
	"context"
	"time"

	"sanara/models"
)

// AppointmentRepository persists appointments. Create is the authoritative
// conflict guard: it re-checks overlap under a transaction, so a stale
// pre-check in the scheduling layer can never double-book a professional.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	ListOccupying(ctx context.Context, professionalID string, from, to time.Time) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string, status models.AppointmentStatus) ([]models.Appointment, error)
	ListByProfessional(ctx context.Context, professionalID string, status models.AppointmentStatus) ([]models.Appointment, error)
}
