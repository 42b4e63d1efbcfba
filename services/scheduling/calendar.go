package scheduling

import (
	"fmt"
	"time"

	"sanara/models"
)

// Calendar derives the raw, unbooked slot grid for a concrete date from a
// professional's weekly availability windows. It is a pure computation: no
// caching, no stored state, appointments are not consulted.
type Calendar struct {
	loc *time.Location
}

// NewCalendar returns a Calendar that anchors wall-clock window times in loc.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{loc: loc}
}

// Location returns the calendar's time location.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// WindowForDate returns the single window configured for date's weekday, if
// any. Windows are unique per weekday; the first match wins.
func (c *Calendar) WindowForDate(windows []models.AvailabilityWindow, date time.Time) (models.AvailabilityWindow, bool) {
	weekday := int(date.In(c.loc).Weekday())
	for _, w := range windows {
		if w.DayOfWeek == weekday {
			return w, true
		}
	}
	return models.AvailabilityWindow{}, false
}

// RawSlotsForDate emits a slot every SlotDuration minutes from the window's
// start, while the slot's start is strictly before the window's end. A
// trailing partial window is discarded, not truncated. A day with no
// configured window yields no slots; that is not an error. Windows are
// validated at registration time, so a malformed one simply yields an empty
// grid here.
func (c *Calendar) RawSlotsForDate(windows []models.AvailabilityWindow, date time.Time) []models.Slot {
	window, ok := c.WindowForDate(windows, date)
	if !ok {
		return nil
	}

	start, err := c.clockOn(date, window.StartTime)
	if err != nil {
		return nil
	}
	end, err := c.clockOn(date, window.EndTime)
	if err != nil {
		return nil
	}
	if window.SlotDuration <= 0 || !start.Before(end) {
		return nil
	}

	step := time.Duration(window.SlotDuration) * time.Minute
	var slots []models.Slot
	for t := start; t.Before(end); t = t.Add(step) {
		slots = append(slots, models.Slot{Start: t, End: t.Add(step)})
	}
	return slots
}

// DayBounds returns the [00:00, 24:00) range of date in the calendar's
// location.
func (c *Calendar) DayBounds(date time.Time) (time.Time, time.Time) {
	d := date.In(c.loc)
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, c.loc)
	return midnight, midnight.AddDate(0, 0, 1)
}

// clockOn anchors an "HH:mm" wall-clock value on the given calendar date.
func (c *Calendar) clockOn(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", clock, err)
	}
	d := date.In(c.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, c.loc), nil
}

// ParseClock validates an "HH:mm" 24-hour time-of-day string and returns it
// as minutes from midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
