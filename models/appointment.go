package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentCompleted  AppointmentStatus = "COMPLETED"
	AppointmentCancelled  AppointmentStatus = "CANCELLED"
)

// Occupying reports whether an appointment in this status blocks its time
// range. Completed and cancelled appointments free their slot immediately.
func (s AppointmentStatus) Occupying() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress:
		return true
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

type AppointmentType string

const (
	AppointmentVideoCall AppointmentType = "VIDEO_CALL"
	AppointmentChat      AppointmentType = "CHAT"
)

// Appointment represents a booked consultation between a patient and a
// professional.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`
	PatientID      string            `bson:"patientId" json:"patientId"`
	ProfessionalID string            `bson:"professionalId" json:"professionalId"`
	StartTime      time.Time         `bson:"startTime" json:"startTime"`
	EndTime        time.Time         `bson:"endTime" json:"endTime"`
	Status         AppointmentStatus `bson:"status" json:"status"`
	Type           AppointmentType   `bson:"type" json:"type"`
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// CreateAppointmentRequest is the payload for booking an appointment.
type CreateAppointmentRequest struct {
	PatientID      string          `json:"patientId" binding:"required"`
	ProfessionalID string          `json:"professionalId" binding:"required"`
	StartTime      time.Time       `json:"startTime" binding:"required"`
	Type           AppointmentType `json:"type" binding:"required"`
	Notes          string          `json:"notes"`
}

// UpdateAppointmentRequest carries a reschedule and/or status transition.
type UpdateAppointmentRequest struct {
	StartTime *time.Time        `json:"startTime"`
	Status    AppointmentStatus `json:"status"`
	Notes     *string           `json:"notes"`
}
