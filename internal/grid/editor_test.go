package grid

import (
	"testing"

	"github.com/arosati/raidnight/internal/avail"
)

// weekFromString builds a week from one-character-per-slot day strings.
// 'a' = available, 'p' = preferred, 'u' = unavailable, '-' = none.
// Days are separated by "|"; slots beyond the string stay none.
func weekFromString(days ...string) avail.Week {
	w := avail.NewWeek()
	for day, s := range days {
		for slot, ch := range s {
			switch ch {
			case 'a':
				w.Set(day, slot, avail.StateAvailable)
			case 'p':
				w.Set(day, slot, avail.StatePreferred)
			case 'u':
				w.Set(day, slot, avail.StateUnavailable)
			}
		}
	}
	return w
}

// printDay renders the first n slots of a day in the same notation.
func printDay(w avail.Week, day, n int) string {
	out := make([]byte, n)
	for slot := 0; slot < n; slot++ {
		switch w.State(day, slot) {
		case avail.StateAvailable:
			out[slot] = 'a'
		case avail.StatePreferred:
			out[slot] = 'p'
		case avail.StateUnavailable:
			out[slot] = 'u'
		default:
			out[slot] = '-'
		}
	}
	return string(out)
}

func TestEditor_ClickCycles(t *testing.T) {
	e := New(avail.NewWeek())

	want := []avail.SlotState{
		avail.StateAvailable,
		avail.StatePreferred,
		avail.StateUnavailable,
		avail.StateNone,
	}
	for i, w := range want {
		e.Click(2, 5)
		if got := e.State(2, 5); got != w {
			t.Fatalf("after click %d: state = %s, want %s", i+1, got, w)
		}
	}

	// The cycle closed: no residual entry remains.
	if e.Week().Len() != 0 {
		t.Errorf("four clicks left %d residual entries", e.Week().Len())
	}
}

func TestEditor_PressReleaseWithoutMovementIsClick(t *testing.T) {
	e := New(avail.NewWeek())

	e.Press(3, 12)
	e.Release()

	if got := e.State(3, 12); got != avail.StateAvailable {
		t.Errorf("state = %s, want available", got)
	}
}

func TestEditor_DragPaintsRangeBothDirections(t *testing.T) {
	for _, tt := range []struct {
		name     string
		from, to int
	}{
		{"downward", 10, 14},
		{"upward", 14, 10},
	} {
		t.Run(tt.name, func(t *testing.T) {
			e := New(avail.NewWeek())
			e.Press(0, tt.from)
			e.Drag(0, tt.to)
			e.Release()

			if got, want := printDay(e.Week(), 0, 16), "----------aaaaa-"; got != want {
				t.Errorf("day 0 = %q, want %q", got, want)
			}
		})
	}
}

func TestEditor_DragOverwritesPriorStates(t *testing.T) {
	e := New(weekFromString("----------puu---"))
	e.Press(0, 10)
	e.Drag(0, 13)
	e.Release()

	if got, want := printDay(e.Week(), 0, 16), "----------aaaa--"; got != want {
		t.Errorf("day 0 = %q, want %q", got, want)
	}
}

func TestEditor_DragIgnoresOtherColumns(t *testing.T) {
	e := New(avail.NewWeek())
	e.Press(2, 5)
	e.Drag(3, 5) // crossed into another day: no mutation anywhere
	e.Drag(3, 9)
	e.Release()

	for slot := 0; slot < avail.SlotsPerDay; slot++ {
		if got := e.State(3, slot); got != avail.StateNone {
			t.Fatalf("day 3 slot %d mutated to %s", slot, got)
		}
	}
	// No drag happened, so release applied the click at the anchor.
	if got := e.State(2, 5); got != avail.StateAvailable {
		t.Errorf("anchor state = %s, want available (click fallback)", got)
	}
}

func TestEditor_DragSuppressesClickOncePerGesture(t *testing.T) {
	e := New(avail.NewWeek())

	// Gesture one: a real drag. The release must not also cycle the anchor.
	e.Press(0, 10)
	e.Drag(0, 11)
	e.Release()
	if got := e.State(0, 10); got != avail.StateAvailable {
		t.Fatalf("after drag: anchor = %s, want available", got)
	}

	// Gesture two: a plain click on the same cell must cycle again.
	e.Press(0, 10)
	e.Release()
	if got := e.State(0, 10); got != avail.StatePreferred {
		t.Errorf("after click: anchor = %s, want preferred", got)
	}
}

func TestEditor_DragBackToAnchorStillPaints(t *testing.T) {
	e := New(avail.NewWeek())
	e.Press(0, 10)
	e.Drag(0, 12)
	e.Drag(0, 10)
	e.Release()

	if got, want := printDay(e.Week(), 0, 14), "----------aaa-"; got != want {
		t.Errorf("day 0 = %q, want %q", got, want)
	}
}

func TestEditor_FillStopsAtStateBoundary(t *testing.T) {
	// Day 0: slots 0-4 available, slot 5 preferred.
	e := New(weekFromString("aaaaap"))

	e.Fill(0, 2, avail.StateUnavailable)

	if got, want := printDay(e.Week(), 0, 7), "uuuuup-"; got != want {
		t.Errorf("day 0 = %q, want %q", got, want)
	}
}

func TestEditor_FillDoesNotCrossDays(t *testing.T) {
	e := New(weekFromString("aaa", "aaa"))
	e.Fill(0, 1, avail.StatePreferred)

	if got, want := printDay(e.Week(), 0, 4), "ppp-"; got != want {
		t.Errorf("day 0 = %q, want %q", got, want)
	}
	if got, want := printDay(e.Week(), 1, 4), "aaa-"; got != want {
		t.Errorf("day 1 = %q, want %q", got, want)
	}
}

func TestEditor_FillWithNoneClearsEntries(t *testing.T) {
	e := New(weekFromString("--aaa--"))
	e.Fill(0, 3, avail.StateNone)

	if e.Week().Len() != 0 {
		t.Errorf("fill with none left %d entries", e.Week().Len())
	}
}

func TestEditor_FillNoneRegion(t *testing.T) {
	// Filling an unmarked region paints the none run without touching the
	// marked neighbors.
	e := New(weekFromString("aa---aa"))
	e.Fill(0, 3, avail.StateAvailable)

	if got, want := printDay(e.Week(), 0, 8), "aaaaaaa-"; got != want {
		t.Errorf("day 0 = %q, want %q", got, want)
	}
}

func TestEditor_FillAtDayEdges(t *testing.T) {
	e := New(avail.NewWeek())
	e.Week().Set(0, 0, avail.StateAvailable)
	e.Week().Set(0, avail.SlotsPerDay-1, avail.StateAvailable)

	e.Fill(0, 0, avail.StatePreferred)
	if got := e.State(0, 0); got != avail.StatePreferred {
		t.Errorf("slot 0 = %s, want preferred", got)
	}
	if got := e.State(0, avail.SlotsPerDay-1); got != avail.StateAvailable {
		t.Errorf("last slot changed to %s", got)
	}
}

func TestEditor_ClearWeek(t *testing.T) {
	e := New(weekFromString("aaaa", "pppp", "uuuu"))
	e.ClearWeek()

	if e.Week().Len() != 0 {
		t.Errorf("ClearWeek left %d entries", e.Week().Len())
	}
	if !e.Dirty() {
		t.Error("ClearWeek did not mark the editor dirty")
	}
}

func TestEditor_DirtyLifecycle(t *testing.T) {
	e := New(avail.NewWeek())
	if e.Dirty() {
		t.Fatal("new editor is dirty")
	}

	e.Click(0, 0)
	if !e.Dirty() {
		t.Fatal("click did not mark dirty")
	}

	e.MarkSaved()
	if e.Dirty() {
		t.Fatal("MarkSaved did not clear dirty")
	}

	e.Reset(avail.NewWeek())
	if e.Dirty() {
		t.Error("Reset did not clear dirty")
	}
}
