package professional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanara/models"
	"sanara/utils"
)

func window(day int, start, end string, duration int) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		DayOfWeek:    day,
		StartTime:    start,
		EndTime:      end,
		SlotDuration: duration,
	}
}

func TestValidateWindows(t *testing.T) {
	tests := []struct {
		name      string
		windows   []models.AvailabilityWindow
		wantField string
	}{
		{"empty set is valid", nil, ""},
		{
			"full week is valid",
			[]models.AvailabilityWindow{
				window(1, "08:00", "12:00", 30),
				window(2, "08:00", "12:00", 30),
				window(3, "13:00", "18:00", 60),
				window(5, "09:00", "17:00", 15),
			},
			"",
		},
		{"weekday below range", []models.AvailabilityWindow{window(-1, "08:00", "12:00", 30)}, "availability[0].dayOfWeek"},
		{"weekday above range", []models.AvailabilityWindow{window(7, "08:00", "12:00", 30)}, "availability[0].dayOfWeek"},
		{
			"duplicate weekday",
			[]models.AvailabilityWindow{
				window(1, "08:00", "12:00", 30),
				window(1, "14:00", "18:00", 30),
			},
			"availability[1].dayOfWeek",
		},
		{"malformed start time", []models.AvailabilityWindow{window(1, "8am", "12:00", 30)}, "availability[0].startTime"},
		{"malformed end time", []models.AvailabilityWindow{window(1, "08:00", "24:30", 30)}, "availability[0].endTime"},
		{"start equals end", []models.AvailabilityWindow{window(1, "12:00", "12:00", 30)}, "availability[0]"},
		{"start after end", []models.AvailabilityWindow{window(1, "18:00", "09:00", 30)}, "availability[0]"},
		{"duration below minimum", []models.AvailabilityWindow{window(1, "08:00", "12:00", 10)}, "availability[0].slotDuration"},
		{"zero duration", []models.AvailabilityWindow{window(1, "08:00", "12:00", 0)}, "availability[0].slotDuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindows(tt.windows)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *utils.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

// The first invalid window wins; later windows are not reached.
func TestValidateWindows_ReportsFirstFailure(t *testing.T) {
	err := ValidateWindows([]models.AvailabilityWindow{
		window(1, "bad", "12:00", 30),
		window(9, "08:00", "12:00", 30),
	})

	var vErr *utils.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "availability[0].startTime", vErr.Field)
}
