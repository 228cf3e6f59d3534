package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/search"
)

type fakeRepo struct {
	weeks   map[string]avail.Week
	loadErr map[string]error
	saved   map[string]avail.Week
	saveErr error
	members []string
}

func (f *fakeRepo) LoadWeek(ctx context.Context, userID string, weekStart time.Time) (avail.Week, error) {
	if err := f.loadErr[userID]; err != nil {
		return avail.Week{}, err
	}
	if w, ok := f.weeks[userID]; ok {
		return w, nil
	}
	return avail.NewWeek(), nil
}

func (f *fakeRepo) SaveWeek(ctx context.Context, userID string, weekStart time.Time, w avail.Week) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.saved == nil {
		f.saved = make(map[string]avail.Week)
	}
	f.saved[userID] = w
	return nil
}

func (f *fakeRepo) CreateUser(ctx context.Context, id, name string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeRepo) CreateParty(ctx context.Context, p *avail.Party) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) GetParty(ctx context.Context, id string) (*avail.Party, error) {
	return &avail.Party{ID: id, Name: "Crew"}, nil
}

func (f *fakeRepo) PartyMembers(ctx context.Context, id string) ([]string, error) {
	return f.members, nil
}

func (f *fakeRepo) AddMember(ctx context.Context, partyID, userID string) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) ListParties(ctx context.Context, userID string) ([]*avail.Party, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Close() error { return nil }

var weekStart = time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)

func TestLoadWeekReturnsWeekLoadedMsg(t *testing.T) {
	w := avail.NewWeek()
	w.Set(1, 20, avail.StateAvailable)
	repo := &fakeRepo{weeks: map[string]avail.Week{"u1": w}}

	msg := LoadWeek(repo, "u1", weekStart, 3)()

	loaded, ok := msg.(WeekLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want WeekLoadedMsg", msg)
	}
	if loaded.Generation != 3 {
		t.Errorf("generation = %d, want 3", loaded.Generation)
	}
	if loaded.Week.State(1, 20) != avail.StateAvailable {
		t.Error("loaded week missing saved entry")
	}
	if loaded.Warning != "" {
		t.Errorf("unexpected warning %q", loaded.Warning)
	}
}

func TestLoadWeekFailureSubstitutesEmptyWeek(t *testing.T) {
	repo := &fakeRepo{loadErr: map[string]error{"u1": avail.ErrStoreUnavailable}}

	msg := LoadWeek(repo, "u1", weekStart, 1)()

	loaded, ok := msg.(WeekLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want WeekLoadedMsg", msg)
	}
	if loaded.Week.Len() != 0 {
		t.Error("failed load should substitute an empty week")
	}
	if loaded.Warning == "" {
		t.Error("failed load should carry a warning")
	}
}

func TestSaveWeekErrorSurfaces(t *testing.T) {
	repo := &fakeRepo{saveErr: avail.ErrStoreUnavailable}

	msg := SaveWeek(repo, "u1", weekStart, avail.NewWeek())()

	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("msg type = %T, want ErrMsg", msg)
	}
	if !errors.Is(errMsg.Err, avail.ErrStoreUnavailable) {
		t.Errorf("error = %v", errMsg.Err)
	}
}

func TestFindWindowsFailedMemberDisqualifies(t *testing.T) {
	w := avail.NewWeek()
	for s := 20; s < 24; s++ {
		w.Set(1, s, avail.StateAvailable)
	}
	repo := &fakeRepo{
		weeks:   map[string]avail.Week{"u1": w, "u2": w},
		loadErr: map[string]error{"u2": avail.ErrStoreUnavailable},
		members: []string{"u1", "u2"},
	}

	msg := FindWindows(repo, "p1", weekStart, 2)()

	res, ok := msg.(WindowsMsg)
	if !ok {
		t.Fatalf("msg type = %T, want WindowsMsg", msg)
	}
	if len(res.Windows) != 0 {
		t.Errorf("windows = %d, want 0 when a member's week could not be loaded", len(res.Windows))
	}
	if res.Members != 2 {
		t.Errorf("members = %d, want 2", res.Members)
	}
}

func TestFindWindowsFindsOverlap(t *testing.T) {
	w := avail.NewWeek()
	for s := 20; s < 24; s++ {
		w.Set(1, s, avail.StateAvailable)
	}
	repo := &fakeRepo{
		weeks:   map[string]avail.Week{"u1": w, "u2": w},
		members: []string{"u1", "u2"},
	}

	msg := FindWindows(repo, "p1", weekStart, 2)()

	res := msg.(WindowsMsg)
	if len(res.Windows) != 1 {
		t.Fatalf("windows = %d, want 1", len(res.Windows))
	}
	want := search.Window{Day: 1, StartSlot: 20, EndSlot: 24, Classification: search.Available}
	if res.Windows[0] != want {
		t.Errorf("window = %+v, want %+v", res.Windows[0], want)
	}
}

func TestFindWindowsResultsRanked(t *testing.T) {
	w := avail.NewWeek()
	for s := 20; s < 24; s++ {
		w.Set(1, s, avail.StateAvailable)
	}
	for s := 20; s < 24; s++ {
		w.Set(4, s, avail.StatePreferred)
	}
	repo := &fakeRepo{
		weeks:   map[string]avail.Week{"u1": w},
		members: []string{"u1"},
	}

	msg := FindWindows(repo, "p1", weekStart, 2)()

	res := msg.(WindowsMsg)
	if len(res.Windows) != 2 {
		t.Fatalf("windows = %d, want 2", len(res.Windows))
	}
	if res.Windows[0].Day != 4 || res.Windows[0].Classification != search.Preferred {
		t.Errorf("first window = %+v, want the preferred Thursday window first", res.Windows[0])
	}
	if res.Windows[1].Day != 1 {
		t.Errorf("second window = %+v, want the Monday window second", res.Windows[1])
	}
}

func TestBuildSummary(t *testing.T) {
	w := avail.NewWeek()
	w.Set(0, 10, avail.StateAvailable)
	repo := &fakeRepo{
		weeks:   map[string]avail.Week{"u1": w},
		members: []string{"u1", "u2"},
	}

	msg := BuildSummary(repo, "p1", weekStart)()

	res, ok := msg.(SummaryMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SummaryMsg", msg)
	}
	if res.Summary.Members != 2 {
		t.Errorf("members = %d, want 2", res.Summary.Members)
	}
	// threshold for 2 members is 1, so u1's slot qualifies
	if len(res.Summary.Days[0].Slots) != 1 || res.Summary.Days[0].Slots[0] != 10 {
		t.Errorf("day 0 slots = %v, want [10]", res.Summary.Days[0].Slots)
	}
}
