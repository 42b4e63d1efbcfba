package professionalRepo

import (
	"context"

	"sanara/models"
)

// ProfessionalRepository persists professionals and their weekly availability
// templates. ReplaceWeeklyAvailability enforces the one-window-per-weekday
// invariant at write time; readers may assume validated data.
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *models.Professional) error
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	Update(ctx context.Context, professional *models.Professional) error
	List(ctx context.Context, speciality string) ([]models.Professional, error)
	ReplaceWeeklyAvailability(ctx context.Context, id string, windows []models.AvailabilityWindow) error
	GetWeeklyAvailability(ctx context.Context, id string) ([]models.AvailabilityWindow, error)
}
