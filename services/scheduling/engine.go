package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sanara/models"
	"sanara/utils"

	"go.uber.org/zap"
)

// AvailabilityStore supplies a professional's weekly availability template.
type AvailabilityStore interface {
	GetWeeklyAvailability(ctx context.Context, professionalID string) ([]models.AvailabilityWindow, error)
}

// AppointmentStore supplies the occupying appointments of a professional
// whose interval intersects [from, to).
type AppointmentStore interface {
	ListOccupying(ctx context.Context, professionalID string, from, to time.Time) ([]models.Appointment, error)
}

// SchedulingEngine computes bookable slots and gates new bookings against
// overlap.
type SchedulingEngine interface {
	// FreeSlotsForDate returns the bookable slots of a professional on the
	// given calendar date, ascending. An empty result means fully booked or
	// no availability configured, not an error.
	FreeSlotsForDate(ctx context.Context, professionalID string, date time.Time) ([]models.Slot, error)
	// HasConflict reports whether any occupying appointment overlaps the
	// half-open candidate interval [start, end). It is a best-effort
	// pre-check; the appointment store re-validates at create time.
	HasConflict(ctx context.Context, professionalID string, start, end time.Time) (bool, error)
}

// DefaultSchedulingEngine is the production implementation. It is stateless:
// all mutable state lives behind the two stores, so no locking is needed and
// independent calls never interfere.
type DefaultSchedulingEngine struct {
	Availability AvailabilityStore
	Appointments AppointmentStore
	Calendar     *Calendar
}

// FreeSlotsForDate derives the raw grid for the date and removes every slot
// that overlaps an occupying appointment. Windows and appointments are
// fetched concurrently; neither fetch depends on the other.
func (se *DefaultSchedulingEngine) FreeSlotsForDate(ctx context.Context, professionalID string, date time.Time) ([]models.Slot, error) {
	logger := utils.GetLogger()
	dayStart, dayEnd := se.Calendar.DayBounds(date)

	var (
		wg           sync.WaitGroup
		windows      []models.AvailabilityWindow
		appointments []models.Appointment
		windowsErr   error
		apptsErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		windows, windowsErr = se.Availability.GetWeeklyAvailability(ctx, professionalID)
	}()
	go func() {
		defer wg.Done()
		appointments, apptsErr = se.Appointments.ListOccupying(ctx, professionalID, dayStart, dayEnd)
	}()
	wg.Wait()

	if windowsErr != nil {
		return nil, fmt.Errorf("failed to fetch availability for professional %s: %w", professionalID, windowsErr)
	}
	if apptsErr != nil {
		return nil, fmt.Errorf("failed to fetch appointments for professional %s: %w", professionalID, apptsErr)
	}

	raw := se.Calendar.RawSlotsForDate(windows, date)
	free := make([]models.Slot, 0, len(raw))
	for _, slot := range raw {
		if !se.slotTaken(slot, appointments) {
			free = append(free, slot)
		}
	}

	logger.Debug("computed free slots",
		zap.String("professionalID", professionalID),
		zap.String("date", dayStart.Format("2006-01-02")),
		zap.Int("raw", len(raw)),
		zap.Int("free", len(free)))

	return free, nil
}

// HasConflict fetches occupying appointments around the candidate's date and
// evaluates the shared overlap predicate. It works even on days with no
// configured availability window: existing appointments are ground truth, the
// weekly template is only used for slot suggestion.
func (se *DefaultSchedulingEngine) HasConflict(ctx context.Context, professionalID string, start, end time.Time) (bool, error) {
	// Widen the fetch by a day on each side to catch appointments that cross
	// midnight.
	dayStart, dayEnd := se.Calendar.DayBounds(start)
	from := dayStart.AddDate(0, 0, -1)
	to := dayEnd.AddDate(0, 0, 1)

	appointments, err := se.Appointments.ListOccupying(ctx, professionalID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to fetch appointments for professional %s: %w", professionalID, err)
	}

	for _, appt := range appointments {
		if !appt.Status.Occupying() {
			continue
		}
		if Overlaps(start, end, appt.StartTime, appt.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

// slotTaken applies the same overlap predicate HasConflict uses. A slot's end
// is always its start plus the generating window's duration; no fixed
// duration is ever assumed.
func (se *DefaultSchedulingEngine) slotTaken(slot models.Slot, appointments []models.Appointment) bool {
	for _, appt := range appointments {
		if !appt.Status.Occupying() {
			continue
		}
		if Overlaps(slot.Start, slot.End, appt.StartTime, appt.EndTime) {
			return true
		}
	}
	return false
}
