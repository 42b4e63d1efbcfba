package models

// AvailabilityWindow is a professional's recurring open interval for one
// weekday, the template slots are generated from. A professional has at most
// one window per weekday; updates replace the whole set, never merge.
type AvailabilityWindow struct {
	DayOfWeek    int    `bson:"dayOfWeek" json:"dayOfWeek"`       // 0 (Sunday) through 6 (Saturday)
	StartTime    string `bson:"startTime" json:"startTime"`       // "HH:mm", 24-hour
	EndTime      string `bson:"endTime" json:"endTime"`           // "HH:mm", must be after StartTime
	SlotDuration int    `bson:"slotDuration" json:"slotDuration"` // minutes per slot
}

// Professional represents a healthcare professional and their weekly
// availability template.
type Professional struct {
	ID           string               `bson:"id" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Email        string               `bson:"email" json:"email"`
	Speciality   string               `bson:"speciality" json:"speciality"`
	CRM          string               `bson:"crm" json:"crm"` // professional registration number
	Availability []AvailabilityWindow `bson:"availability" json:"availability"`
}

// CreateProfessionalRequest is the payload for registering a professional.
type CreateProfessionalRequest struct {
	Name         string               `json:"name" binding:"required"`
	Email        string               `json:"email" binding:"required,email"`
	Speciality   string               `json:"speciality" binding:"required"`
	CRM          string               `json:"crm" binding:"required"`
	Availability []AvailabilityWindow `json:"availability"`
}

// UpdateProfessionalRequest carries partial profile updates.
type UpdateProfessionalRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Speciality string `json:"speciality"`
	CRM        string `json:"crm"`
}
