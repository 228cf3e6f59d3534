package ui

import (
	"fmt"
	"strings"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/search"
)

// formatWindow renders one overlap window as a single line.
func formatWindow(w search.Window) string {
	line := fmt.Sprintf("%-9s %s to %s", avail.DayNames[w.Day], avail.SlotTime(w.StartSlot), endTime(w.EndSlot))
	if w.Classification == search.Preferred {
		return formatPreferred("★ " + line)
	}
	return formatAvailable("  " + line)
}

// formatFindFooter renders the result-count line under a window listing.
// A star means at least one member prefers the time, not all of them.
func formatFindFooter(windows, members int) string {
	return fmt.Sprintf("%d windows, %d members checked. ★ = at least one member prefers this time.", windows, members)
}

// endTime renders the exclusive end boundary of a window.
func endTime(endSlot int) string {
	if endSlot >= avail.SlotsPerDay {
		return "12:00 AM"
	}
	return avail.SlotTime(endSlot)
}

// stateRun is a maximal run of consecutive same-state slots in one day.
type stateRun struct {
	start, end int // slot range, end exclusive
	state      avail.SlotState
}

// dayRuns collapses one day of a week into its non-empty runs.
func dayRuns(w avail.Week, day int) []stateRun {
	var runs []stateRun
	for slot := 0; slot < avail.SlotsPerDay; slot++ {
		state := w.State(day, slot)
		if state == avail.StateNone {
			continue
		}
		if n := len(runs); n > 0 && runs[n-1].end == slot && runs[n-1].state == state {
			runs[n-1].end = slot + 1
			continue
		}
		runs = append(runs, stateRun{start: slot, end: slot + 1, state: state})
	}
	return runs
}

// formatRun renders one availability run as "7:00 PM to 11:00 PM (preferred)".
func formatRun(r stateRun) string {
	s := fmt.Sprintf("%s to %s", avail.SlotTime(r.start), endTime(r.end))
	switch r.state {
	case avail.StatePreferred:
		return formatPreferred(s + " (preferred)")
	case avail.StateUnavailable:
		return formatUnavailable(s + " (unavailable)")
	default:
		return formatAvailable(s)
	}
}

// separator returns a horizontal rule sized to the terminal.
func separator() string {
	width := termWidth()
	if width > 60 {
		width = 60
	}
	return formatMuted(strings.Repeat("-", width))
}
