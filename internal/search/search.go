// Package search implements the party overlap search: finding contiguous
// windows where every member can play a session of the requested length.
package search

import (
	"sort"

	"github.com/arosati/raidnight/internal/avail"
)

// Classification labels a window by the strongest marking inside it.
type Classification int

const (
	// Available means every member marked every slot available or preferred.
	Available Classification = iota
	// Preferred means available plus at least one preferred slot by someone.
	Preferred
)

// String returns the display form of the classification.
func (c Classification) String() string {
	if c == Preferred {
		return "preferred"
	}
	return "available"
}

// Window is one candidate session start of the requested duration.
// EndSlot is exclusive. Windows are recomputed per search, never stored.
type Window struct {
	Day            int
	StartSlot      int
	EndSlot        int
	Classification Classification
}

// SlotsNeeded converts a session duration in whole hours to half-hour slots.
func SlotsNeeded(durationHours int) int {
	return durationHours * 2
}

// FindWindows enumerates every contiguous window of durationHours where all
// members overlap, one window per valid start offset per day. Overlapping
// windows at consecutive offsets are all emitted; the caller presents
// discrete candidate start times, not merged free ranges.
//
// A member whose week has no markings disqualifies every window: absence of
// data is unavailability, not consent. Invalid durations yield no windows.
// Results come back ranked by Rank; callers need not sort.
func FindWindows(members map[string]avail.Week, durationHours int) []Window {
	needed := SlotsNeeded(durationHours)
	if needed <= 0 || needed > avail.SlotsPerDay || len(members) == 0 {
		return nil
	}

	var windows []Window
	for day := 0; day < avail.DaysPerWeek; day++ {
		for start := 0; start+needed <= avail.SlotsPerDay; start++ {
			w, ok := examine(members, day, start, needed)
			if ok {
				windows = append(windows, w)
			}
		}
	}

	Rank(windows)
	return windows
}

// examine checks one candidate range for validity and classification.
func examine(members map[string]avail.Week, day, start, needed int) (Window, bool) {
	preferred := false
	for _, week := range members {
		for slot := start; slot < start+needed; slot++ {
			state := week.State(day, slot)
			if !state.Open() {
				return Window{}, false
			}
			if state == avail.StatePreferred {
				preferred = true
			}
		}
	}

	w := Window{Day: day, StartSlot: start, EndSlot: start + needed}
	if preferred {
		w.Classification = Preferred
	}
	return w, true
}

// Rank sorts windows in place: preferred before available, then by day,
// then by start slot.
func Rank(windows []Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Classification != windows[j].Classification {
			return windows[i].Classification == Preferred
		}
		if windows[i].Day != windows[j].Day {
			return windows[i].Day < windows[j].Day
		}
		return windows[i].StartSlot < windows[j].StartSlot
	})
}
