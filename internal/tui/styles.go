// Package tui provides the terminal user interface for raidnight.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arosati/raidnight/internal/tui/theme"
)

// Default day column width - recalculated from the terminal width.
const defaultColWidth = 10

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorAvailable   lipgloss.Color
	colorPreferred   lipgloss.Color
	colorUnavailable lipgloss.Color
	colorWarning     lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Header styles
	HeaderStyle         lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Slot cell styles
	AvailableStyle   lipgloss.Style
	PreferredStyle   lipgloss.Style
	UnavailableStyle lipgloss.Style
	EmptyCellStyle   lipgloss.Style
	CursorStyle      lipgloss.Style
	PaintAnchorStyle lipgloss.Style

	// Legend / stats bar
	LegendStyle            lipgloss.Style
	LegendAvailableStyle   lipgloss.Style
	LegendPreferredStyle   lipgloss.Style
	LegendUnavailableStyle lipgloss.Style

	// Unsaved changes indicator
	DirtyStyle lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle           lipgloss.Style
	ModalTitleStyle      lipgloss.Style
	ModalBodyStyle       lipgloss.Style
	ModalMutedStyle      lipgloss.Style
	ModalHighlightStyle  lipgloss.Style
	ModalPreferredStyle  lipgloss.Style
	ModalHintStyle       lipgloss.Style
	FillOptionStyle       lipgloss.Style
	FillOptionActiveStyle lipgloss.Style
	ConfirmButtonStyle    lipgloss.Style
	ConfirmButtonActive   lipgloss.Style

	// Table container
	TableStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorAvailable = palette.Available
	s.colorPreferred = palette.Preferred
	s.colorUnavailable = palette.Unavailable
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorAccent).
		Bold(true)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(9)

	cell := lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Center)

	s.AvailableStyle = cell.
		Background(palette.AvailableBg).
		Foreground(s.colorAvailable).
		Bold(true)

	s.PreferredStyle = cell.
		Background(palette.PreferredBg).
		Foreground(s.colorPreferred).
		Bold(true)

	s.UnavailableStyle = cell.
		Background(palette.UnavailableBg).
		Foreground(s.colorUnavailable)

	s.EmptyCellStyle = cell.
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CursorStyle = cell.
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.PaintAnchorStyle = cell.
		Background(s.colorWarning).
		Foreground(palette.TextOnWarning).
		Bold(true)

	s.LegendStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.LegendAvailableStyle = lipgloss.NewStyle().
		Foreground(s.colorAvailable).
		Background(s.colorBg).
		Bold(true)

	s.LegendPreferredStyle = lipgloss.NewStyle().
		Foreground(s.colorPreferred).
		Background(s.colorBg).
		Bold(true)

	s.LegendUnavailableStyle = lipgloss.NewStyle().
		Foreground(s.colorUnavailable).
		Background(s.colorBg)

	s.DirtyStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(1, 2).
		Width(56).
		Align(lipgloss.Left)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBgHighlight)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)

	s.ModalMutedStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight)

	s.ModalHighlightStyle = lipgloss.NewStyle().
		Foreground(s.colorAvailable).
		Background(s.colorBgHighlight).
		Bold(true)

	s.ModalPreferredStyle = lipgloss.NewStyle().
		Foreground(s.colorPreferred).
		Background(s.colorBgHighlight).
		Bold(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBgHighlight)

	s.FillOptionStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.FillOptionActiveStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.ConfirmButtonStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Padding(0, 3)

	s.ConfirmButtonActive = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Padding(0, 3).
		Underline(true)

	s.TableStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// AvailableStyleWidth returns the available cell style with the given width.
func (s *Styles) AvailableStyleWidth(width int) lipgloss.Style {
	return s.AvailableStyle.Width(width)
}

// PreferredStyleWidth returns the preferred cell style with the given width.
func (s *Styles) PreferredStyleWidth(width int) lipgloss.Style {
	return s.PreferredStyle.Width(width)
}

// UnavailableStyleWidth returns the unavailable cell style with the given width.
func (s *Styles) UnavailableStyleWidth(width int) lipgloss.Style {
	return s.UnavailableStyle.Width(width)
}

// EmptyCellStyleWidth returns the empty cell style with the given width.
func (s *Styles) EmptyCellStyleWidth(width int) lipgloss.Style {
	return s.EmptyCellStyle.Width(width)
}

// CursorStyleWidth returns the cursor style with the given width.
func (s *Styles) CursorStyleWidth(width int) lipgloss.Style {
	return s.CursorStyle.Width(width)
}

// DayHeaderStyleWidth returns the day header style with the given width.
func (s *Styles) DayHeaderStyleWidth(width int) lipgloss.Style {
	return s.DayHeaderStyle.Width(width)
}

// DayHeaderTodayStyleWidth returns the today header style with the given width.
func (s *Styles) DayHeaderTodayStyleWidth(width int) lipgloss.Style {
	return s.DayHeaderTodayStyle.Width(width)
}
