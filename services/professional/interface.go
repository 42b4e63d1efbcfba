package professional

import (
	"context"

	"sanara/models"
)

// ProfessionalService manages professional records and their weekly
// availability templates.
type ProfessionalService interface {
	CreateProfessional(ctx context.Context, req models.CreateProfessionalRequest) (*models.Professional, error)
	UpdateProfessional(ctx context.Context, id string, req models.UpdateProfessionalRequest) (*models.Professional, error)
	GetProfessional(ctx context.Context, id string) (*models.Professional, error)
	ListProfessionals(ctx context.Context, speciality string) ([]models.Professional, error)
	ReplaceWeeklyAvailability(ctx context.Context, id string, windows []models.AvailabilityWindow) (*models.Professional, error)
}
