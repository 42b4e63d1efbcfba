package appointment

import (
	"context"
	"fmt"
	"time"

	"sanara/config"
	appointmentRepo "sanara/database/repository/appointment"
	professionalRepo "sanara/database/repository/professional"
	"sanara/models"
	"sanara/services/notification"
	"sanara/services/scheduling"
	"sanara/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Appointments  appointmentRepo.AppointmentRepository
	Professionals professionalRepo.ProfessionalRepository
	Scheduler     scheduling.SchedulingEngine
	Calendar      *scheduling.Calendar
	Notifier      notification.NotificationService
}

// CreateAppointment validates booking policy, pre-checks for conflicts, and
// persists the appointment. The repository re-validates overlap under its own
// transaction, so the pre-check here is advisory only. Notification enqueue
// failures are logged and never fail the booking.
func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()
	now := time.Now()

	if req.Type != models.AppointmentVideoCall && req.Type != models.AppointmentChat {
		return nil, utils.NewValidationError("type", "must be VIDEO_CALL or CHAT")
	}

	minStart := now.Add(time.Duration(config.AppConfig.MinAdvanceHours) * time.Hour)
	if req.StartTime.Before(minStart) {
		return nil, utils.NewValidationError("startTime", fmt.Sprintf(
			"appointments must be scheduled at least %d hour(s) in advance", config.AppConfig.MinAdvanceHours))
	}
	maxStart := now.AddDate(0, 0, config.AppConfig.MaxFutureDays)
	if req.StartTime.After(maxStart) {
		return nil, utils.NewValidationError("startTime", fmt.Sprintf(
			"appointments cannot be scheduled more than %d days in advance", config.AppConfig.MaxFutureDays))
	}

	professional, err := s.Professionals.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		return nil, err
	}

	endTime := req.StartTime.Add(s.durationFor(professional.Availability, req.StartTime))

	conflict, err := s.Scheduler.HasConflict(ctx, req.ProfessionalID, req.StartTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if conflict {
		return nil, utils.NewConflictError("this time slot is already booked")
	}

	appointment := &models.Appointment{
		ID:             uuid.New().String(),
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		Status:         models.AppointmentScheduled,
		Type:           req.Type,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if err := s.Notifier.ScheduleAppointmentNotifications(ctx, appointment); err != nil {
		// The appointment is already booked; losing a reminder is not worth
		// failing the request over.
		logger.Error("failed to schedule notifications",
			zap.String("appointmentID", appointment.ID), zap.Error(err))
	}

	logger.Info("appointment created",
		zap.String("appointmentID", appointment.ID),
		zap.String("professionalID", appointment.ProfessionalID),
		zap.Time("startTime", appointment.StartTime))

	return appointment, nil
}

// UpdateAppointment applies a status transition and/or reschedule. A
// reschedule is re-checked for conflicts against all other occupying
// appointments of the professional.
func (s *DefaultAppointmentService) UpdateAppointment(ctx context.Context, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appointment, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, utils.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
		}
		appointment.Status = req.Status
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if req.StartTime != nil {
		professional, err := s.Professionals.GetByID(ctx, appointment.ProfessionalID)
		if err != nil {
			return nil, err
		}
		newStart := *req.StartTime
		newEnd := newStart.Add(s.durationFor(professional.Availability, newStart))

		conflict, err := s.hasConflictExcluding(ctx, appointment.ProfessionalID, newStart, newEnd, appointment.ID)
		if err != nil {
			return nil, fmt.Errorf("conflict check failed: %w", err)
		}
		if conflict {
			return nil, utils.NewConflictError("this time slot is already booked")
		}
		appointment.StartTime = newStart
		appointment.EndTime = newEnd
	}

	appointment.UpdatedAt = time.Now()
	if err := s.Appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	if req.Status == models.AppointmentCancelled {
		if err := s.Notifier.NotifyCancellation(ctx, appointment); err != nil {
			logger.Error("failed to enqueue cancellation notification",
				zap.String("appointmentID", appointment.ID), zap.Error(err))
		}
	}

	logger.Info("appointment updated", zap.String("appointmentID", appointment.ID))
	return appointment, nil
}

// GetAppointment fetches an appointment by ID.
func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Appointments.GetByID(ctx, id)
}

// ListPatientAppointments lists a patient's appointments, optionally filtered
// by status.
func (s *DefaultAppointmentService) ListPatientAppointments(ctx context.Context, patientID string, status models.AppointmentStatus) ([]models.Appointment, error) {
	if status != "" && !status.Valid() {
		return nil, utils.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.Appointments.ListByPatient(ctx, patientID, status)
}

// ListProfessionalAppointments lists a professional's appointments, optionally
// filtered by status.
func (s *DefaultAppointmentService) ListProfessionalAppointments(ctx context.Context, professionalID string, status models.AppointmentStatus) ([]models.Appointment, error) {
	if status != "" && !status.Valid() {
		return nil, utils.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.Appointments.ListByProfessional(ctx, professionalID, status)
}

// durationFor resolves the appointment length from the day's availability
// window, falling back to the configured default when the day has no window.
// The slot duration always comes from configuration, never from a hard-coded
// constant.
func (s *DefaultAppointmentService) durationFor(windows []models.AvailabilityWindow, start time.Time) time.Duration {
	if window, ok := s.Calendar.WindowForDate(windows, start); ok {
		return time.Duration(window.SlotDuration) * time.Minute
	}
	return time.Duration(config.AppConfig.DefaultDurationMin) * time.Minute
}

// hasConflictExcluding mirrors the engine's conflict check but skips the
// appointment being rescheduled, which would otherwise collide with itself.
func (s *DefaultAppointmentService) hasConflictExcluding(ctx context.Context, professionalID string, start, end time.Time, excludeID string) (bool, error) {
	dayStart, dayEnd := s.Calendar.DayBounds(start)
	occupying, err := s.Appointments.ListOccupying(ctx, professionalID, dayStart.AddDate(0, 0, -1), dayEnd.AddDate(0, 0, 1))
	if err != nil {
		return false, err
	}
	for _, other := range occupying {
		if other.ID == excludeID || !other.Status.Occupying() {
			continue
		}
		if scheduling.Overlaps(start, end, other.StartTime, other.EndTime) {
			return true, nil
		}
	}
	return false, nil
}
