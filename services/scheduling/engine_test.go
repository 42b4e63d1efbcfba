package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sanara/models"
)

type mockAvailabilityStore struct {
	mock.Mock
}

func (m *mockAvailabilityStore) GetWeeklyAvailability(ctx context.Context, professionalID string) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, professionalID)
	windows, _ := args.Get(0).([]models.AvailabilityWindow)
	return windows, args.Error(1)
}

type mockAppointmentStore struct {
	mock.Mock
}

func (m *mockAppointmentStore) ListOccupying(ctx context.Context, professionalID string, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, professionalID, from, to)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func newTestEngine(avail *mockAvailabilityStore, appts *mockAppointmentStore) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		Availability: avail,
		Appointments: appts,
		Calendar:     NewCalendar(time.UTC),
	}
}

func booking(start, end time.Time, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:             "appt-1",
		ProfessionalID: "prof-1",
		PatientID:      "pat-1",
		StartTime:      start,
		EndTime:        end,
		Status:         status,
	}
}

func TestFreeSlotsForDate_RemovesBookedSlots(t *testing.T) {
	avail := new(mockAvailabilityStore)
	appts := new(mockAppointmentStore)
	engine := newTestEngine(avail, appts)

	windows := []models.AvailabilityWindow{mondayWindow("09:00", "11:00", 30)}
	booked := booking(
		time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		models.AppointmentConfirmed,
	)

	avail.On("GetWeeklyAvailability", mock.Anything, "prof-1").Return(windows, nil)
	appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).
		Return([]models.Appointment{booked}, nil)

	slots, err := engine.FreeSlotsForDate(context.Background(), "prof-1", monday)
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), slots[1].Start)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), slots[2].Start)
}

func TestFreeSlotsForDate_CancelledAppointmentFreesSlot(t *testing.T) {
	avail := new(mockAvailabilityStore)
	appts := new(mockAppointmentStore)
	engine := newTestEngine(avail, appts)

	windows := []models.AvailabilityWindow{mondayWindow("09:00", "10:00", 30)}
	cancelled := booking(
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		models.AppointmentCancelled,
	)

	avail.On("GetWeeklyAvailability", mock.Anything, "prof-1").Return(windows, nil)
	appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).
		Return([]models.Appointment{cancelled}, nil)

	slots, err := engine.FreeSlotsForDate(context.Background(), "prof-1", monday)
	require.NoError(t, err)
	require.Len(t, slots, 2)
}

func TestFreeSlotsForDate_NoWindowIsEmptyNotError(t *testing.T) {
	avail := new(mockAvailabilityStore)
	appts := new(mockAppointmentStore)
	engine := newTestEngine(avail, appts)

	avail.On("GetWeeklyAvailability", mock.Anything, "prof-1").Return(nil, nil)
	appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).Return(nil, nil)

	slots, err := engine.FreeSlotsForDate(context.Background(), "prof-1", monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFreeSlotsForDate_Repeatable(t *testing.T) {
	avail := new(mockAvailabilityStore)
	appts := new(mockAppointmentStore)
	engine := newTestEngine(avail, appts)

	windows := []models.AvailabilityWindow{mondayWindow("09:00", "11:00", 30)}
	booked := booking(
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		models.AppointmentScheduled,
	)

	avail.On("GetWeeklyAvailability", mock.Anything, "prof-1").Return(windows, nil)
	appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).
		Return([]models.Appointment{booked}, nil)

	first, err := engine.FreeSlotsForDate(context.Background(), "prof-1", monday)
	require.NoError(t, err)
	second, err := engine.FreeSlotsForDate(context.Background(), "prof-1", monday)
	require.NoError(t, err)

	// The engine is stateless; the same inputs always yield the same grid.
	assert.Equal(t, first, second)
}

func TestFreeSlotsForDate_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")

	t.Run("availability failure", func(t *testing.T) {
		avail := new(mockAvailabilityStore)
		appts := new(mockAppointmentStore)
		engine := newTestEngine(avail, appts)

		avail.On("GetWeeklyAvailability", mock.Anything, "prof-1").Return(nil, storeErr)
		appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).Return(nil, nil)

		slots, err := engine.FreeSlotsForDate(context.Background(), "prof-1", monday)
		require.ErrorIs(t, err, storeErr)
		assert.Nil(t, slots)
	})

	t.Run("appointment failure", func(t *testing.T) {
		avail := new(mockAvailabilityStore)
		appts := new(mockAppointmentStore)
		engine := newTestEngine(avail, appts)

		avail.On("GetWeeklyAvailability", mock.Anything, "prof-1").Return(nil, nil)
		appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).Return(nil, storeErr)

		slots, err := engine.FreeSlotsForDate(context.Background(), "prof-1", monday)
		require.ErrorIs(t, err, storeErr)
		assert.Nil(t, slots)
	})
}

func TestHasConflict(t *testing.T) {
	avail := new(mockAvailabilityStore)
	appts := new(mockAppointmentStore)
	engine := newTestEngine(avail, appts)

	booked := booking(
		time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		models.AppointmentConfirmed,
	)
	appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).
		Return([]models.Appointment{booked}, nil)

	conflict, err := engine.HasConflict(context.Background(), "prof-1",
		time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, conflict)

	// Back-to-back with the booking: allowed.
	conflict, err = engine.HasConflict(context.Background(), "prof-1",
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, conflict)
}

// A conflict check is answered from existing appointments even when the weekly
// template has no window for that day.
func TestHasConflict_NoAvailabilityWindow(t *testing.T) {
	avail := new(mockAvailabilityStore)
	appts := new(mockAppointmentStore)
	engine := newTestEngine(avail, appts)

	sunday := monday.AddDate(0, 0, -1)
	booked := models.Appointment{
		ID:             "appt-2",
		ProfessionalID: "prof-1",
		StartTime:      sunday.Add(9 * time.Hour),
		EndTime:        sunday.Add(9*time.Hour + 30*time.Minute),
		Status:         models.AppointmentScheduled,
	}
	appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).
		Return([]models.Appointment{booked}, nil)

	conflict, err := engine.HasConflict(context.Background(), "prof-1",
		sunday.Add(9*time.Hour+15*time.Minute), sunday.Add(9*time.Hour+45*time.Minute))
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestHasConflict_PropagatesStoreError(t *testing.T) {
	avail := new(mockAvailabilityStore)
	appts := new(mockAppointmentStore)
	engine := newTestEngine(avail, appts)

	storeErr := errors.New("primary stepped down")
	appts.On("ListOccupying", mock.Anything, "prof-1", mock.Anything, mock.Anything).
		Return(nil, storeErr)

	conflict, err := engine.HasConflict(context.Background(), "prof-1",
		monday.Add(9*time.Hour), monday.Add(10*time.Hour))
	require.ErrorIs(t, err, storeErr)
	assert.False(t, conflict)
}
