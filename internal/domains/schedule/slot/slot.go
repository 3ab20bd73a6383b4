// Package slot generates bookable time slots inside open windows. All
// times of day are minutes since midnight, parsed from and formatted to
// HH:MM.
package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidDuration = errors.New("slot duration must be positive")
)

type Slot struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Display string `json:"display"`
}

type Window struct {
	Start string
	End   string
}

// ParseClock converts HH:MM to minutes since midnight. A trailing
// seconds component is tolerated, TIME columns include one.
func ParseClock(value string) (int, error) {
	if len(value) > 5 {
		value = value[:5]
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}

	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Generate emits consecutive slots of exactly durationMinutes starting
// at the window start. The cursor advances by the duration, so slots are
// contiguous and never overlap, and no partial trailing slot is emitted:
// a remainder shorter than the duration stays unscheduled.
func Generate(window Window, durationMinutes int) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	start, err := ParseClock(window.Start)
	if err != nil {
		return nil, err
	}

	end, err := ParseClock(window.End)
	if err != nil {
		return nil, err
	}

	var slots []Slot

	for cursor := start; cursor+durationMinutes <= end; cursor += durationMinutes {
		slotStart := FormatClock(cursor)
		slotEnd := FormatClock(cursor + durationMinutes)

		slots = append(slots, Slot{
			Start:   slotStart,
			End:     slotEnd,
			Display: slotStart + " - " + slotEnd,
		})
	}

	return slots, nil
}

// GenerateAll concatenates the slots of each window in order.
func GenerateAll(windows []Window, durationMinutes int) ([]Slot, error) {
	var slots []Slot

	for _, window := range windows {
		generated, err := Generate(window, durationMinutes)
		if err != nil {
			return nil, err
		}

		slots = append(slots, generated...)
	}

	return slots, nil
}

// Overlaps reports whether two half-open minute intervals intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
