package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanara/models"
)

// 2024-01-01 is a Monday.
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func mondayWindow(start, end string, duration int) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		DayOfWeek:    1,
		StartTime:    start,
		EndTime:      end,
		SlotDuration: duration,
	}
}

func TestRawSlotsForDate_Grid(t *testing.T) {
	cal := NewCalendar(time.UTC)
	windows := []models.AvailabilityWindow{mondayWindow("09:00", "10:30", 30)}

	slots := cal.RawSlotsForDate(windows, monday)

	require.Len(t, slots, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), slots[1].Start)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), slots[2].Start)
	for _, s := range slots {
		assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
	}
}

func TestRawSlotsForDate_TrailingPartialDiscarded(t *testing.T) {
	cal := NewCalendar(time.UTC)
	windows := []models.AvailabilityWindow{mondayWindow("09:00", "10:00", 45)}

	slots := cal.RawSlotsForDate(windows, monday)

	// 09:45 + 45m would run past 10:00, but 09:45 is still strictly before the
	// window's end so it is emitted. The next start, 10:30, is not.
	require.Len(t, slots, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 45, 0, 0, time.UTC), slots[1].Start)
}

func TestRawSlotsForDate_NoWindowForWeekday(t *testing.T) {
	cal := NewCalendar(time.UTC)
	windows := []models.AvailabilityWindow{mondayWindow("09:00", "17:00", 30)}
	tuesday := monday.AddDate(0, 0, 1)

	assert.Empty(t, cal.RawSlotsForDate(windows, tuesday))
	assert.Empty(t, cal.RawSlotsForDate(nil, monday))
}

func TestRawSlotsForDate_MalformedWindowYieldsEmpty(t *testing.T) {
	cal := NewCalendar(time.UTC)
	tests := []struct {
		name   string
		window models.AvailabilityWindow
	}{
		{"bad start time", mondayWindow("9am", "17:00", 30)},
		{"bad end time", mondayWindow("09:00", "25:00", 30)},
		{"zero duration", mondayWindow("09:00", "17:00", 0)},
		{"end before start", mondayWindow("17:00", "09:00", 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, cal.RawSlotsForDate([]models.AvailabilityWindow{tt.window}, monday))
		})
	}
}

func TestRawSlotsForDate_AscendingAndRepeatable(t *testing.T) {
	cal := NewCalendar(time.UTC)
	windows := []models.AvailabilityWindow{mondayWindow("08:00", "12:00", 20)}

	first := cal.RawSlotsForDate(windows, monday)
	second := cal.RawSlotsForDate(windows, monday)

	require.NotEmpty(t, first)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Start.Before(first[i].Start), "slots must be ascending")
	}
	// The grid is derived fresh on every call; nothing is cached.
	assert.Equal(t, first, second)
}

func TestDayBounds(t *testing.T) {
	cal := NewCalendar(time.UTC)
	start, end := cal.DayBounds(time.Date(2024, 1, 1, 14, 37, 12, 0, time.UTC))

	assert.Equal(t, monday, start)
	assert.Equal(t, monday.AddDate(0, 0, 1), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("14:30")
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, minutes)

	for _, bad := range []string{"", "9:00am", "24:00", "12:60", "noon"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "ParseClock(%q) should fail", bad)
	}
}
