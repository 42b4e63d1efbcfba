package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sanara/models"
	"sanara/utils"
)

type mockPatientRepo struct {
	mock.Mock
}

func (m *mockPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientRepo) List(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func TestCreatePatient(t *testing.T) {
	repo := new(mockPatientRepo)
	svc := &DefaultPatientService{Repo: repo}

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreatePatient(context.Background(), models.CreatePatientRequest{
		Name:      "João Lima",
		Email:     "joao@example.com",
		BirthDate: "1990-04-12",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestUpdatePatient_PartialFields(t *testing.T) {
	repo := new(mockPatientRepo)
	svc := &DefaultPatientService{Repo: repo}

	existing := &models.Patient{ID: "pat-1", Name: "João Lima", Email: "joao@example.com"}
	repo.On("GetByID", mock.Anything, "pat-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.UpdatePatient(context.Background(), "pat-1",
		models.UpdatePatientRequest{PhoneNumber: "+55 11 91234-5678"})
	require.NoError(t, err)

	assert.Equal(t, "+55 11 91234-5678", updated.PhoneNumber)
	// Untouched fields survive.
	assert.Equal(t, "joao@example.com", updated.Email)
}

func TestUpdatePatient_NotFound(t *testing.T) {
	repo := new(mockPatientRepo)
	svc := &DefaultPatientService{Repo: repo}

	repo.On("GetByID", mock.Anything, "ghost").Return(nil, utils.NewNotFoundError("patient", "ghost"))

	_, err := svc.UpdatePatient(context.Background(), "ghost", models.UpdatePatientRequest{Name: "x"})

	var nfErr *utils.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
