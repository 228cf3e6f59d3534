// Package avail defines the core domain types for raidnight: the half-hour
// slot grid, per-user weekly availability, and parties.
package avail

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Grid dimensions.
const (
	// SlotsPerDay is 24 hours * 2 slots per hour.
	SlotsPerDay = 48
	// DaysPerWeek is the number of days per week; day 0 is Sunday.
	DaysPerWeek = 7
	// SlotMinutes is the slot duration in minutes.
	SlotMinutes = 30
)

// Validation errors.
var (
	ErrInvalidSlotKey   = errors.New("slot key must be in day-slot form")
	ErrSlotOutOfRange   = errors.New("slot position out of range")
	ErrInvalidSlotState = errors.New("invalid slot state")
)

// SlotState is the marking a user gives one half-hour slot.
// The zero value is StateNone: no explicit marking.
type SlotState int

const (
	StateNone SlotState = iota
	StateAvailable
	StatePreferred
	StateUnavailable
)

// String returns the persisted form of the state. StateNone has no
// persisted form; it renders as "none" for display only.
func (s SlotState) String() string {
	switch s {
	case StateAvailable:
		return "available"
	case StatePreferred:
		return "preferred"
	case StateUnavailable:
		return "unavailable"
	default:
		return "none"
	}
}

// ParseState parses a persisted state string.
func ParseState(s string) (SlotState, error) {
	switch s {
	case "available":
		return StateAvailable, nil
	case "preferred":
		return StatePreferred, nil
	case "unavailable":
		return StateUnavailable, nil
	case "none", "":
		return StateNone, nil
	default:
		return StateNone, fmt.Errorf("%w: %q", ErrInvalidSlotState, s)
	}
}

// Next returns the state after one click in the edit cycle:
// none -> available -> preferred -> unavailable -> none.
func (s SlotState) Next() SlotState {
	switch s {
	case StateNone:
		return StateAvailable
	case StateAvailable:
		return StatePreferred
	case StatePreferred:
		return StateUnavailable
	default:
		return StateNone
	}
}

// Open reports whether the state counts as usable time for a session:
// available or preferred. None and unavailable both fail closed.
func (s SlotState) Open() bool {
	return s == StateAvailable || s == StatePreferred
}

// ValidPosition reports whether (day, slot) addresses a cell of the grid.
func ValidPosition(day, slot int) bool {
	return day >= 0 && day < DaysPerWeek && slot >= 0 && slot < SlotsPerDay
}

// SlotKey serializes a grid position as "{day}-{slot}".
func SlotKey(day, slot int) string {
	return strconv.Itoa(day) + "-" + strconv.Itoa(slot)
}

// ParseSlotKey parses a "{day}-{slot}" key back into a grid position.
func ParseSlotKey(key string) (day, slot int, err error) {
	d, s, ok := strings.Cut(key, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotKey, key)
	}
	day, err = strconv.Atoi(d)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotKey, key)
	}
	slot, err = strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotKey, key)
	}
	if !ValidPosition(day, slot) {
		return 0, 0, fmt.Errorf("%w: %q", ErrSlotOutOfRange, key)
	}
	return day, slot, nil
}

// SlotTime formats a slot index as a 12-hour clock time, e.g. 17 -> "8:30 AM".
func SlotTime(slot int) string {
	mins := slot * SlotMinutes
	hour := mins / 60
	minute := mins % 60

	period := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		display = hour - 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// DayNames holds full day names indexed by day-of-week, Sunday first.
var DayNames = [DaysPerWeek]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DayAbbrevs holds three-letter day names indexed by day-of-week.
var DayAbbrevs = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// HourSlots groups a day's slots into hourly pairs for the coarse view.
// Pair i covers slots 2i and 2i+1.
func HourSlots(hour int) (first, second int) {
	return hour * 2, hour*2 + 1
}
