package models

import "time"

type NotificationType string

const (
	NotificationReminder     NotificationType = "REMINDER"
	NotificationConfirmation NotificationType = "CONFIRMATION"
	NotificationCancellation NotificationType = "CANCELLATION"
)

// NotificationMessage is the payload enqueued for asynchronous delivery to a
// patient around an appointment's lifecycle.
type NotificationMessage struct {
	AppointmentID string           `json:"appointmentId"`
	PatientID     string           `json:"patientId"`
	Type          NotificationType `json:"type"`
	ScheduledFor  time.Time        `json:"scheduledFor"`
}
