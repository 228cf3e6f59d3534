// Package summary builds the advisory per-day party availability summary.
// It is a looser view than the exact overlap search: a slot qualifies when
// at least half the party (rounded up) marked it open, so members can see
// roughly promising times even when no strict window exists.
package summary

import (
	"fmt"

	"github.com/arosati/raidnight/internal/avail"
)

// DaySummary lists the qualifying slots of one day.
type DaySummary struct {
	Day   int
	Slots []int // slot indices meeting the threshold, ascending
}

// PartySummary is the advisory summary across the whole week.
type PartySummary struct {
	Members int
	Days    [avail.DaysPerWeek]DaySummary
}

// Threshold returns the member count a slot needs: ceil(members * 0.5).
func Threshold(members int) int {
	return (members + 1) / 2
}

// Build computes the summary for a party's member weeks. A slot counts for
// its day when the number of members marking it available or preferred
// meets the threshold. Members with no data still count in the denominator.
func Build(members map[string]avail.Week) PartySummary {
	s := PartySummary{Members: len(members)}
	for day := range s.Days {
		s.Days[day].Day = day
	}
	if len(members) == 0 {
		return s
	}

	need := Threshold(len(members))
	for day := 0; day < avail.DaysPerWeek; day++ {
		for slot := 0; slot < avail.SlotsPerDay; slot++ {
			open := 0
			for _, week := range members {
				if week.State(day, slot).Open() {
					open++
				}
			}
			if open >= need {
				s.Days[day].Slots = append(s.Days[day].Slots, slot)
			}
		}
	}
	return s
}

// DayTimes renders a day's qualifying slots as display times, capped at
// limit entries with a "+N more" overflow marker.
func (s PartySummary) DayTimes(day, limit int) []string {
	if day < 0 || day >= avail.DaysPerWeek {
		return nil
	}
	slots := s.Days[day].Slots
	if len(slots) == 0 {
		return []string{"No overlap"}
	}

	var out []string
	for i, slot := range slots {
		if limit > 0 && i >= limit {
			out = append(out, fmt.Sprintf("+%d more", len(slots)-limit))
			break
		}
		out = append(out, avail.SlotTime(slot))
	}
	return out
}
