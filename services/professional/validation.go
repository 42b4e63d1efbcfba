package professional

import (
	"fmt"

	"sanara/models"
	"sanara/services/scheduling"
	"sanara/utils"
)

// MinSlotDuration is the shortest slot a professional may offer, in minutes.
const MinSlotDuration = 15

// ValidateWindows checks a whole availability set before it is written.
// Malformed windows never reach the slot generator; it assumes validated
// input.
func ValidateWindows(windows []models.AvailabilityWindow) error {
	seenDays := make(map[int]bool, len(windows))

	for i, w := range windows {
		field := fmt.Sprintf("availability[%d]", i)

		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return utils.NewValidationError(field+".dayOfWeek", "must be between 0 (Sunday) and 6 (Saturday)")
		}
		if seenDays[w.DayOfWeek] {
			return utils.NewValidationError(field+".dayOfWeek", fmt.Sprintf("duplicate window for day %d; one window per weekday", w.DayOfWeek))
		}
		seenDays[w.DayOfWeek] = true

		start, err := scheduling.ParseClock(w.StartTime)
		if err != nil {
			return utils.NewValidationError(field+".startTime", "must be in HH:mm format")
		}
		end, err := scheduling.ParseClock(w.EndTime)
		if err != nil {
			return utils.NewValidationError(field+".endTime", "must be in HH:mm format")
		}
		if start >= end {
			return utils.NewValidationError(field, "startTime must be before endTime")
		}
		if w.SlotDuration < MinSlotDuration {
			return utils.NewValidationError(field+".slotDuration", fmt.Sprintf("must be at least %d minutes", MinSlotDuration))
		}
	}
	return nil
}
