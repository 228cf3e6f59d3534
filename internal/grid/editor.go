// Package grid implements the availability edit engine: the pure
// state-transition core behind clicks, drag-painting, and region recolors.
// It has no rendering dependencies; the TUI drives it from gestures.
package grid

import (
	"github.com/arosati/raidnight/internal/avail"
)

// Editor mutates one user's in-memory week in response to gestures.
// All mutations stay in memory; persistence is an explicit, separate save.
type Editor struct {
	week avail.Week

	// Drag gesture state. A gesture runs from Press to Release. The gesture
	// only counts as a drag once at least one slot beyond the anchor has
	// been painted; otherwise Release applies the click cycle.
	pressed    bool
	dragDay    int
	dragAnchor int
	dragged    bool

	dirty bool
}

// New creates an editor over the given week. The editor takes ownership of
// the week; callers should hand it a fresh load or a clone.
func New(week avail.Week) *Editor {
	return &Editor{week: week}
}

// Week returns the week being edited.
func (e *Editor) Week() avail.Week {
	return e.week
}

// Reset replaces the edited week, discarding any in-flight gesture and
// clearing the dirty flag. Used when a different week is loaded.
func (e *Editor) Reset(week avail.Week) {
	e.week = week
	e.pressed = false
	e.dragged = false
	e.dirty = false
}

// Dirty reports whether the week has unsaved edits.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (e *Editor) MarkSaved() {
	e.dirty = false
}

// State returns the current state at (day, slot).
func (e *Editor) State(day, slot int) avail.SlotState {
	return e.week.State(day, slot)
}

// Set writes a state directly, bypassing gesture logic.
func (e *Editor) Set(day, slot int, state avail.SlotState) {
	if !avail.ValidPosition(day, slot) {
		return
	}
	e.week.Set(day, slot, state)
	e.dirty = true
}

// Click applies one step of the edit cycle at (day, slot):
// none -> available -> preferred -> unavailable -> none.
func (e *Editor) Click(day, slot int) {
	if !avail.ValidPosition(day, slot) {
		return
	}
	e.week.Set(day, slot, e.week.State(day, slot).Next())
	e.dirty = true
}

// Press anchors a gesture at (day, slot). Nothing is painted yet; whether
// the gesture becomes a drag or a click is decided by what follows.
func (e *Editor) Press(day, slot int) {
	if !avail.ValidPosition(day, slot) {
		return
	}
	e.pressed = true
	e.dragDay = day
	e.dragAnchor = slot
	e.dragged = false
}

// Drag extends the active gesture to (day, slot). Moving into a different
// day column mutates nothing. Within the anchor column it paints every slot
// between the anchor and the current index, inclusive, to available,
// regardless of direction.
func (e *Editor) Drag(day, slot int) {
	if !e.pressed || day != e.dragDay || !avail.ValidPosition(day, slot) {
		return
	}
	if slot == e.dragAnchor && !e.dragged {
		// Still on the anchor cell; not a drag yet.
		return
	}

	lo, hi := e.dragAnchor, slot
	if lo > hi {
		lo, hi = hi, lo
	}
	for s := lo; s <= hi; s++ {
		e.week.Set(day, s, avail.StateAvailable)
	}
	e.dragged = true
	e.dirty = true
}

// Release ends the active gesture. If the gesture never painted beyond its
// anchor it is a click and the cycle applies; a drag suppresses the click
// exactly once. Release without a prior Press is a no-op.
func (e *Editor) Release() {
	if !e.pressed {
		return
	}
	if !e.dragged {
		e.Click(e.dragDay, e.dragAnchor)
	}
	e.pressed = false
	e.dragged = false
}

// Fill recolors the maximal contiguous same-state run touching (day, slot)
// to newState. Connectivity is same-day, adjacent slot index only. Filling
// with none clears the run's entries.
func (e *Editor) Fill(day, slot int, newState avail.SlotState) {
	if !avail.ValidPosition(day, slot) {
		return
	}

	target := e.week.State(day, slot)
	visited := make(map[int]bool, avail.SlotsPerDay)
	queue := []int{slot}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if s < 0 || s >= avail.SlotsPerDay || visited[s] {
			continue
		}
		visited[s] = true

		if e.week.State(day, s) != target {
			continue
		}
		e.week.Set(day, s, newState)
		queue = append(queue, s-1, s+1)
	}
	e.dirty = true
}

// ClearWeek discards every marking for the week. The caller is responsible
// for user confirmation before invoking it.
func (e *Editor) ClearWeek() {
	e.week.Clear()
	e.dirty = true
}
