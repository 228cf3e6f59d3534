package avail

// Pos addresses one cell of the weekly grid.
type Pos struct {
	Day  int // 0=Sunday .. 6=Saturday
	Slot int // 0..47, half-hour resolution
}

// Week holds one user's availability for one week. Only non-none states are
// stored; a missing entry means StateNone. The zero value is not usable;
// call NewWeek.
type Week struct {
	slots map[Pos]SlotState
}

// NewWeek returns an empty week: every slot is StateNone.
func NewWeek() Week {
	return Week{slots: make(map[Pos]SlotState)}
}

// State returns the state at (day, slot). Out-of-range positions and absent
// entries are StateNone.
func (w Week) State(day, slot int) SlotState {
	if w.slots == nil || !ValidPosition(day, slot) {
		return StateNone
	}
	return w.slots[Pos{day, slot}]
}

// Set stores a state at (day, slot). Setting StateNone removes the entry so
// the map never carries explicit none markers. Out-of-range positions are
// ignored.
func (w Week) Set(day, slot int, state SlotState) {
	if w.slots == nil || !ValidPosition(day, slot) {
		return
	}
	if state == StateNone {
		delete(w.slots, Pos{day, slot})
		return
	}
	w.slots[Pos{day, slot}] = state
}

// Len returns the number of explicitly marked slots.
func (w Week) Len() int {
	return len(w.slots)
}

// Clear removes every marking from the week.
func (w Week) Clear() {
	for k := range w.slots {
		delete(w.slots, k)
	}
}

// Clone returns an independent copy of the week.
func (w Week) Clone() Week {
	c := NewWeek()
	for k, v := range w.slots {
		c.slots[k] = v
	}
	return c
}

// Equal reports whether two weeks carry identical markings.
func (w Week) Equal(other Week) bool {
	if len(w.slots) != len(other.slots) {
		return false
	}
	for k, v := range w.slots {
		if other.slots[k] != v {
			return false
		}
	}
	return true
}

// Each calls fn for every marked slot. Iteration order is unspecified.
func (w Week) Each(fn func(day, slot int, state SlotState)) {
	for k, v := range w.slots {
		fn(k.Day, k.Slot, v)
	}
}

// Encode flattens the week into its transport form: a map from "{day}-{slot}"
// keys to state strings. Only non-none entries appear.
func (w Week) Encode() map[string]string {
	out := make(map[string]string, len(w.slots))
	for k, v := range w.slots {
		out[SlotKey(k.Day, k.Slot)] = v.String()
	}
	return out
}

// DecodeWeek rebuilds a week from its transport form. Unknown keys or states
// fail; "none" entries are dropped rather than stored.
func DecodeWeek(enc map[string]string) (Week, error) {
	w := NewWeek()
	for key, val := range enc {
		day, slot, err := ParseSlotKey(key)
		if err != nil {
			return Week{}, err
		}
		state, err := ParseState(val)
		if err != nil {
			return Week{}, err
		}
		w.Set(day, slot, state)
	}
	return w, nil
}
