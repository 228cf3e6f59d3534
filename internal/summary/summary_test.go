package summary

import (
	"reflect"
	"testing"

	"github.com/arosati/raidnight/internal/avail"
)

func weekWith(day int, slots []int, state avail.SlotState) avail.Week {
	w := avail.NewWeek()
	for _, s := range slots {
		w.Set(day, s, state)
	}
	return w
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		members, want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
	}
	for _, tt := range tests {
		if got := Threshold(tt.members); got != tt.want {
			t.Errorf("Threshold(%d) = %d, want %d", tt.members, got, tt.want)
		}
	}
}

func TestBuild_HalfOfFourQualifies(t *testing.T) {
	members := map[string]avail.Week{
		"a": weekWith(1, []int{20}, avail.StateAvailable),
		"b": weekWith(1, []int{20}, avail.StatePreferred),
		"c": avail.NewWeek(),
		"d": avail.NewWeek(),
	}

	s := Build(members)
	if got, want := s.Days[1].Slots, []int{20}; !reflect.DeepEqual(got, want) {
		t.Errorf("day 1 slots = %v, want %v", got, want)
	}
}

func TestBuild_OneOfThreeDoesNotQualify(t *testing.T) {
	members := map[string]avail.Week{
		"a": weekWith(2, []int{10}, avail.StateAvailable),
		"b": avail.NewWeek(),
		"c": avail.NewWeek(),
	}

	s := Build(members)
	if len(s.Days[2].Slots) != 0 {
		t.Errorf("day 2 slots = %v, want none (1 of 3 is below ceil(1.5))", s.Days[2].Slots)
	}
}

func TestBuild_TwoOfThreeQualifies(t *testing.T) {
	members := map[string]avail.Week{
		"a": weekWith(2, []int{10}, avail.StateAvailable),
		"b": weekWith(2, []int{10}, avail.StateAvailable),
		"c": avail.NewWeek(),
	}

	s := Build(members)
	if got, want := s.Days[2].Slots, []int{10}; !reflect.DeepEqual(got, want) {
		t.Errorf("day 2 slots = %v, want %v", got, want)
	}
}

func TestBuild_UnavailableDoesNotCount(t *testing.T) {
	members := map[string]avail.Week{
		"a": weekWith(0, []int{5}, avail.StateUnavailable),
		"b": weekWith(0, []int{5}, avail.StateAvailable),
	}

	// 1 of 2 open meets ceil(1) = 1; the unavailable marking contributes
	// nothing but does not veto the advisory view.
	s := Build(members)
	if got, want := s.Days[0].Slots, []int{5}; !reflect.DeepEqual(got, want) {
		t.Errorf("day 0 slots = %v, want %v", got, want)
	}
}

func TestBuild_NoMembers(t *testing.T) {
	s := Build(nil)
	for day := range s.Days {
		if len(s.Days[day].Slots) != 0 {
			t.Errorf("day %d has slots with no members", day)
		}
	}
}

func TestDayTimes_Overflow(t *testing.T) {
	members := map[string]avail.Week{
		"a": weekWith(3, []int{16, 17, 18, 19, 20}, avail.StateAvailable),
	}
	s := Build(members)

	got := s.DayTimes(3, 3)
	want := []string{"8:00 AM", "8:30 AM", "9:00 AM", "+2 more"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DayTimes = %v, want %v", got, want)
	}
}

func TestDayTimes_NoOverlap(t *testing.T) {
	s := Build(map[string]avail.Week{"a": avail.NewWeek()})
	got := s.DayTimes(0, 3)
	if !reflect.DeepEqual(got, []string{"No overlap"}) {
		t.Errorf("DayTimes = %v, want [No overlap]", got)
	}
}
