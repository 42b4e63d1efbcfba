package professional

import (
	"context"
	"fmt"

	professionalRepo "sanara/database/repository/professional"
	"sanara/models"
	"sanara/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultProfessionalService is the production implementation.
type DefaultProfessionalService struct {
	Repo professionalRepo.ProfessionalRepository
}

// CreateProfessional registers a professional, optionally with an initial
// availability template.
func (s *DefaultProfessionalService) CreateProfessional(ctx context.Context, req models.CreateProfessionalRequest) (*models.Professional, error) {
	logger := utils.GetLogger()

	if err := ValidateWindows(req.Availability); err != nil {
		return nil, err
	}

	professional := &models.Professional{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Speciality:   req.Speciality,
		CRM:          req.CRM,
		Availability: req.Availability,
	}
	if professional.Availability == nil {
		professional.Availability = []models.AvailabilityWindow{}
	}

	if err := s.Repo.Create(ctx, professional); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}

	logger.Info("professional created", zap.String("professionalID", professional.ID))
	return professional, nil
}

// UpdateProfessional applies a partial profile update. Availability is not
// touched here; it is replaced wholesale through ReplaceWeeklyAvailability.
func (s *DefaultProfessionalService) UpdateProfessional(ctx context.Context, id string, req models.UpdateProfessionalRequest) (*models.Professional, error) {
	professional, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		professional.Name = req.Name
	}
	if req.Email != "" {
		professional.Email = req.Email
	}
	if req.Speciality != "" {
		professional.Speciality = req.Speciality
	}
	if req.CRM != "" {
		professional.CRM = req.CRM
	}

	if err := s.Repo.Update(ctx, professional); err != nil {
		return nil, fmt.Errorf("failed to update professional %s: %w", id, err)
	}
	return professional, nil
}

// GetProfessional fetches a professional by ID.
func (s *DefaultProfessionalService) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	return s.Repo.GetByID(ctx, id)
}

// ListProfessionals lists professionals, optionally filtered by speciality.
func (s *DefaultProfessionalService) ListProfessionals(ctx context.Context, speciality string) ([]models.Professional, error) {
	return s.Repo.List(ctx, speciality)
}

// ReplaceWeeklyAvailability validates the new window set and swaps it in
// wholesale. Existing windows are replaced, never merged.
func (s *DefaultProfessionalService) ReplaceWeeklyAvailability(ctx context.Context, id string, windows []models.AvailabilityWindow) (*models.Professional, error) {
	logger := utils.GetLogger()

	if err := ValidateWindows(windows); err != nil {
		return nil, err
	}
	if windows == nil {
		windows = []models.AvailabilityWindow{}
	}

	if err := s.Repo.ReplaceWeeklyAvailability(ctx, id, windows); err != nil {
		return nil, err
	}

	logger.Info("availability replaced",
		zap.String("professionalID", id),
		zap.Int("windows", len(windows)))

	return s.Repo.GetByID(ctx, id)
}
