package notification

import (
	"context"

	"sanara/models"
)

// NotificationService schedules patient-facing messages around an
// appointment's lifecycle. Delivery is asynchronous; enqueue failures are
// reported but must never fail the booking that triggered them.
type NotificationService interface {
	// ScheduleAppointmentNotifications enqueues an immediate confirmation plus
	// a reminder for each configured offset before the appointment start.
	ScheduleAppointmentNotifications(ctx context.Context, appointment *models.Appointment) error
	// NotifyCancellation enqueues an immediate cancellation message.
	NotifyCancellation(ctx context.Context, appointment *models.Appointment) error
}
