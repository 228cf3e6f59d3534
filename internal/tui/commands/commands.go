// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/search"
	"github.com/arosati/raidnight/internal/summary"
)

// WeekLoadedMsg is sent when week availability is loaded.
// Generation identifies the navigation that requested the load so
// responses for weeks the user already moved past can be discarded.
type WeekLoadedMsg struct {
	Week       avail.Week
	WeekStart  time.Time
	Generation uint64
	Warning    string // non-empty when the store failed and an empty week was substituted
}

// WeekSavedMsg is sent when the current week snapshot was persisted.
type WeekSavedMsg struct {
	WeekStart time.Time
}

// WindowsMsg is sent when an overlap search completes.
type WindowsMsg struct {
	Windows  []search.Window
	Duration int // session length in hours
	Members  int
}

// SummaryMsg is sent when the party summary is built.
type SummaryMsg struct {
	Summary *summary.PartySummary
}

// PartyLoadedMsg is sent when party metadata is loaded.
type PartyLoadedMsg struct {
	Party   *avail.Party
	Members []string
}

// ErrMsg is sent when an operation fails.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadWeek loads one user's availability for the given week.
// A store failure is not fatal: the grid opens empty and the failure
// is surfaced as a warning so unsaved edits are not silently possible
// to mistake for loaded data.
func LoadWeek(repo avail.Repository, userID string, weekStart time.Time, generation uint64) tea.Cmd {
	return func() tea.Msg {
		week, err := repo.LoadWeek(context.Background(), userID, weekStart)
		msg := WeekLoadedMsg{Week: week, WeekStart: weekStart, Generation: generation}
		if err != nil {
			slog.Warn("loading week failed, starting empty", "week", weekStart.Format("2006-01-02"), "error", err)
			msg.Week = avail.NewWeek()
			msg.Warning = "Could not load saved availability. Starting with an empty week."
		}
		return msg
	}
}

// SaveWeek persists the week snapshot. On failure the error surfaces
// to the model, which keeps the grid dirty so the user can retry.
func SaveWeek(repo avail.Repository, userID string, weekStart time.Time, w avail.Week) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SaveWeek(context.Background(), userID, weekStart, w); err != nil {
			return ErrMsg{Err: err}
		}
		return WeekSavedMsg{WeekStart: weekStart}
	}
}

// LoadParty loads party metadata and its member list.
func LoadParty(repo avail.Repository, partyID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		party, err := repo.GetParty(ctx, partyID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		members, err := repo.PartyMembers(ctx, partyID)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return PartyLoadedMsg{Party: party, Members: members}
	}
}

// FindWindows loads every member's week and searches for overlap windows.
// A member whose load fails is treated as having an empty week, which
// disqualifies every window they would have been required for.
func FindWindows(repo avail.Repository, partyID string, weekStart time.Time, durationHours int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		members, err := repo.PartyMembers(ctx, partyID)
		if err != nil {
			return ErrMsg{Err: err}
		}

		weeks := loadMemberWeeks(ctx, repo, members, weekStart)
		windows := search.FindWindows(weeks, durationHours)
		return WindowsMsg{Windows: windows, Duration: durationHours, Members: len(members)}
	}
}

// BuildSummary loads every member's week and builds the aggregate summary.
func BuildSummary(repo avail.Repository, partyID string, weekStart time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		members, err := repo.PartyMembers(ctx, partyID)
		if err != nil {
			return ErrMsg{Err: err}
		}

		weeks := loadMemberWeeks(ctx, repo, members, weekStart)
		s := summary.Build(weeks)
		return SummaryMsg{Summary: &s}
	}
}

func loadMemberWeeks(ctx context.Context, repo avail.Repository, members []string, weekStart time.Time) map[string]avail.Week {
	weeks := make(map[string]avail.Week, len(members))
	for _, id := range members {
		w, err := repo.LoadWeek(ctx, id, weekStart)
		if err != nil {
			if !errors.Is(err, avail.ErrStoreUnavailable) {
				slog.Warn("loading member week failed", "member", id, "error", err)
			} else {
				slog.Warn("store unavailable for member week", "member", id, "error", err)
			}
			w = avail.NewWeek()
		}
		weeks[id] = w
	}
	return weeks
}

// ClearStatusAfter clears the status line after the given delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
