package patient

import (
	"context"
	"fmt"
	"time"

	patientRepo "sanara/database/repository/patient"
	"sanara/models"

	"github.com/google/uuid"
)

// PatientService manages clinic patient records.
type PatientService interface {
	CreatePatient(ctx context.Context, req models.CreatePatientRequest) (*models.Patient, error)
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, id string, req models.UpdatePatientRequest) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}

func (s *DefaultPatientService) CreatePatient(ctx context.Context, req models.CreatePatientRequest) (*models.Patient, error) {
	patient := &models.Patient{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		BirthDate:   req.BirthDate,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *DefaultPatientService) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPatientService) UpdatePatient(ctx context.Context, id string, req models.UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.BirthDate != "" {
		patient.BirthDate = req.BirthDate
	}

	if err := s.Repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *DefaultPatientService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return s.Repo.List(ctx)
}
