package avail

import "testing"

func TestWeek_SetNoneRemovesEntry(t *testing.T) {
	w := NewWeek()
	w.Set(2, 10, StateAvailable)
	if w.Len() != 1 {
		t.Fatalf("Len = %d, want 1", w.Len())
	}

	w.Set(2, 10, StateNone)
	if w.Len() != 0 {
		t.Errorf("setting none left %d residual entries", w.Len())
	}
	if got := w.State(2, 10); got != StateNone {
		t.Errorf("State = %s, want none", got)
	}
}

func TestWeek_OutOfRangeIgnored(t *testing.T) {
	w := NewWeek()
	w.Set(7, 0, StateAvailable)
	w.Set(0, 48, StateAvailable)
	w.Set(-1, -1, StateAvailable)
	if w.Len() != 0 {
		t.Errorf("out-of-range Set stored %d entries", w.Len())
	}
	if got := w.State(9, 99); got != StateNone {
		t.Errorf("out-of-range State = %s, want none", got)
	}
}

func TestWeek_CloneIsIndependent(t *testing.T) {
	w := NewWeek()
	w.Set(1, 20, StatePreferred)

	c := w.Clone()
	c.Set(1, 20, StateUnavailable)
	c.Set(3, 3, StateAvailable)

	if got := w.State(1, 20); got != StatePreferred {
		t.Errorf("original mutated by clone edit: %s", got)
	}
	if w.Len() != 1 {
		t.Errorf("original Len = %d, want 1", w.Len())
	}
}

func TestWeek_Clear(t *testing.T) {
	w := NewWeek()
	for slot := 0; slot < 5; slot++ {
		w.Set(0, slot, StateAvailable)
	}
	w.Clear()
	if w.Len() != 0 {
		t.Errorf("Clear left %d entries", w.Len())
	}
}

func TestWeek_EncodeDecodeRoundTrip(t *testing.T) {
	w := NewWeek()
	w.Set(1, 20, StateAvailable)
	w.Set(1, 21, StatePreferred)
	w.Set(6, 47, StateUnavailable)

	enc := w.Encode()
	if len(enc) != 3 {
		t.Fatalf("Encode produced %d entries, want 3", len(enc))
	}
	if enc["1-21"] != "preferred" {
		t.Errorf("Encode[1-21] = %q, want preferred", enc["1-21"])
	}

	got, err := DecodeWeek(enc)
	if err != nil {
		t.Fatalf("DecodeWeek: %v", err)
	}
	if !got.Equal(w) {
		t.Error("decoded week differs from original")
	}
}

func TestDecodeWeek_Rejects(t *testing.T) {
	if _, err := DecodeWeek(map[string]string{"9-0": "available"}); err == nil {
		t.Error("DecodeWeek accepted an out-of-range day")
	}
	if _, err := DecodeWeek(map[string]string{"0-0": "busy"}); err == nil {
		t.Error("DecodeWeek accepted an unknown state")
	}
}

func TestDecodeWeek_DropsExplicitNone(t *testing.T) {
	w, err := DecodeWeek(map[string]string{"0-0": "none"})
	if err != nil {
		t.Fatalf("DecodeWeek: %v", err)
	}
	if w.Len() != 0 {
		t.Errorf("explicit none stored as entry, Len = %d", w.Len())
	}
}
