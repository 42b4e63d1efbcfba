package models

import "time"

// Slot is a candidate appointment start time with its implicit end. Slots are
// derived fresh on every query and never persisted; identity is the
// (Start, End) pair.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
