// Package tui provides the terminal user interface for raidnight.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/config"
	"github.com/arosati/raidnight/internal/dateutil"
	"github.com/arosati/raidnight/internal/grid"
	"github.com/arosati/raidnight/internal/search"
	"github.com/arosati/raidnight/internal/summary"
	"github.com/arosati/raidnight/internal/tui/commands"
	"github.com/arosati/raidnight/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Entering session hours for an overlap search
	ModeFillPick    // Choosing the state for a flood fill
	ModeConfirm     // Confirming a destructive action (clear week)
	ModeModal       // A results modal is open
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalWindows
	ModalSummary
)

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // 0=Sunday, 6=Saturday
	Slot int // Half-hour slot index, 0..47
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   avail.Repository
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Grid edit state
	editor *grid.Editor

	// State
	weekStart time.Time // Sunday of the displayed week, UTC midnight
	cursor    Position
	mode      Mode
	loading   bool

	// Load generation counter. Each navigation bumps it; a load response
	// carrying an older generation belongs to a week the user already
	// left and is discarded.
	loadGen uint64

	// Paint gesture state
	painting bool

	// Party state
	party        *avail.Party
	partyMembers []string

	// Modal state
	modalType  ModalType
	windows    []search.Window
	windowsDur int
	psummary   *summary.PartySummary

	// Fill picker selection (index into fillStates)
	fillChoice int

	// Confirm dialog selection (0 = yes, 1 = no)
	confirmChoice int

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width        int
	height       int
	colWidth     int
	scrollOffset int

	// Messages
	statusMsg string

	// Error state
	err error
}

// fillStates are the choices offered by the flood-fill picker.
var fillStates = []avail.SlotState{
	avail.StateAvailable,
	avail.StatePreferred,
	avail.StateUnavailable,
	avail.StateNone,
}

// New creates a new TUI model.
func New(repo avail.Repository, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "Session length in hours (1-24)"
	ti.CharLimit = 2
	ti.Width = 30

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	now := time.Now()
	weekStart := dateutil.WeekStart(now)

	return &Model{
		repo:      repo,
		config:    cfg,
		theme:     t,
		styles:    styles,
		editor:    grid.New(avail.NewWeek()),
		weekStart: weekStart,
		cursor:    Position{Day: int(now.Weekday()), Slot: 36}, // default to evening
		mode:      ModeNormal,
		loading:   true,
		loadGen:   1,
		prompt:    ti,
		colWidth:  defaultColWidth,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		commands.LoadWeek(m.repo, m.config.User.ID, m.weekStart, m.loadGen),
	}
	if m.config.Party.ID != "" {
		cmds = append(cmds, commands.LoadParty(m.repo, m.config.Party.ID))
	}
	return tea.Batch(cmds...)
}

// Run starts the TUI.
func Run(repo avail.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo avail.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// navigateWeek moves the displayed week by delta*7 days and starts an
// asynchronous load tagged with a fresh generation.
func (m *Model) navigateWeek(delta int) tea.Cmd {
	m.weekStart = m.weekStart.AddDate(0, 0, 7*delta)
	m.loadGen++
	m.loading = true
	m.painting = false
	return commands.LoadWeek(m.repo, m.config.User.ID, m.weekStart, m.loadGen)
}

func modeString(mode Mode) string {
	switch mode {
	case ModeNormal:
		return "normal"
	case ModePrompt:
		return "prompt"
	case ModeFillPick:
		return "fill"
	case ModeConfirm:
		return "confirm"
	case ModeModal:
		return "modal"
	default:
		return "unknown"
	}
}
