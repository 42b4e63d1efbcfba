package models

import "time"

// Patient represents a clinic patient record.
type Patient struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	BirthDate   string    `bson:"birthDate,omitempty" json:"birthDate,omitempty"` // "YYYY-MM-DD"
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// CreatePatientRequest is the payload for registering a patient.
type CreatePatientRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthDate"`
}

// UpdatePatientRequest carries partial patient updates.
type UpdatePatientRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthDate"`
}
