package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/tui/commands"
)

const maxSlots = avail.SlotsPerDay

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeFillPick:
		return m.handleFillKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.editor.Dirty() {
			m.statusMsg = "Unsaved changes! Press s to save or X to discard"
			return m, nil
		}
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		}
	case "l", "right":
		if m.cursor.Day < avail.DaysPerWeek-1 {
			m.cursor.Day++
		}
	case "j", "down":
		if m.cursor.Slot < maxSlots-1 {
			m.cursor.Slot++
		}
		m.ensureCursorVisible()
	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
		}
		m.ensureCursorVisible()

	// Page navigation
	case "pgdown", "ctrl+d":
		m.cursor.Slot = min(maxSlots-1, m.cursor.Slot+m.visibleRows())
		m.ensureCursorVisible()
	case "pgup", "ctrl+u":
		m.cursor.Slot = max(0, m.cursor.Slot-m.visibleRows())
		m.ensureCursorVisible()
	case "g":
		m.cursor.Slot = 0
		m.ensureCursorVisible()
	case "G":
		m.cursor.Slot = maxSlots - 1
		m.ensureCursorVisible()

	// Week navigation
	case "H", "shift+left":
		if m.editor.Dirty() {
			m.statusMsg = "Unsaved changes! Press s to save or X to discard"
			return m, nil
		}
		return m, m.navigateWeek(-1)
	case "L", "shift+right":
		if m.editor.Dirty() {
			m.statusMsg = "Unsaved changes! Press s to save or X to discard"
			return m, nil
		}
		return m, m.navigateWeek(1)
	case "t":
		if m.editor.Dirty() {
			m.statusMsg = "Unsaved changes! Press s to save or X to discard"
			return m, nil
		}
		return m, m.jumpToCurrentWeek()

	// Editing
	case " ", "enter":
		if m.painting {
			// End of a keyboard paint gesture.
			m.editor.Release()
			m.painting = false
			return m, nil
		}
		m.editor.Click(m.cursor.Day, m.cursor.Slot)
	case "v":
		if m.painting {
			m.editor.Release()
			m.painting = false
		} else {
			m.editor.Press(m.cursor.Day, m.cursor.Slot)
			m.painting = true
			m.statusMsg = "Paint: move to extend, v or Enter to finish"
		}
		return m, nil
	case "f":
		m.mode = ModeFillPick
		m.fillChoice = 0
		return m, nil
	case "c":
		m.mode = ModeConfirm
		m.confirmChoice = 1 // default to No
		return m, nil

	// Persistence
	case "s":
		if m.painting {
			m.editor.Release()
			m.painting = false
		}
		m.statusMsg = "Saving..."
		return m, commands.SaveWeek(m.repo, m.config.User.ID, m.weekStart, m.editor.Week())
	case "X":
		// Discard unsaved edits by reloading the stored snapshot.
		m.loadGen++
		m.loading = true
		m.painting = false
		return m, commands.LoadWeek(m.repo, m.config.User.ID, m.weekStart, m.loadGen)

	// Party operations
	case "/":
		if m.config.Party.ID == "" {
			m.statusMsg = "No party configured. Set party.id in the config file."
			return m, nil
		}
		m.mode = ModePrompt
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink
	case "S":
		if m.config.Party.ID == "" {
			m.statusMsg = "No party configured. Set party.id in the config file."
			return m, nil
		}
		m.statusMsg = "Building summary..."
		return m, commands.BuildSummary(m.repo, m.config.Party.ID, m.weekStart)
	}

	// Extend an active keyboard paint gesture after cursor movement.
	if m.painting {
		m.editor.Drag(m.cursor.Day, m.cursor.Slot)
	}

	return m, nil
}

// handlePromptKeys handles keys while entering the search duration.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		m.prompt.SetValue("")
		return m, nil
	case "enter":
		input := strings.TrimSpace(m.prompt.Value())
		m.mode = ModeNormal
		m.prompt.Blur()
		m.prompt.SetValue("")

		hours, err := strconv.Atoi(input)
		if err != nil || hours < 1 || hours > 24 {
			m.statusMsg = fmt.Sprintf("Invalid session length %q: enter hours between 1 and 24", input)
			return m, commands.ClearStatusAfter(4 * time.Second)
		}
		m.statusMsg = "Searching..."
		return m, commands.FindWindows(m.repo, m.config.Party.ID, m.weekStart, hours)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleFillKeys handles the flood-fill state picker.
func (m Model) handleFillKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil
	case "h", "left":
		if m.fillChoice > 0 {
			m.fillChoice--
		}
	case "l", "right":
		if m.fillChoice < len(fillStates)-1 {
			m.fillChoice++
		}
	case "a":
		return m.applyFill(avail.StateAvailable)
	case "p":
		return m.applyFill(avail.StatePreferred)
	case "u":
		return m.applyFill(avail.StateUnavailable)
	case "n":
		return m.applyFill(avail.StateNone)
	case "enter", " ":
		return m.applyFill(fillStates[m.fillChoice])
	}
	return m, nil
}

func (m Model) applyFill(state avail.SlotState) (tea.Model, tea.Cmd) {
	m.editor.Fill(m.cursor.Day, m.cursor.Slot, state)
	m.mode = ModeNormal
	return m, nil
}

// handleConfirmKeys handles the clear-week confirmation dialog.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.mode = ModeNormal
		return m, nil
	case "y":
		m.editor.ClearWeek()
		m.mode = ModeNormal
		m.statusMsg = "Week cleared (press s to save)"
		return m, nil
	case "h", "left", "l", "right", "tab":
		m.confirmChoice = 1 - m.confirmChoice
		return m, nil
	case "enter":
		if m.confirmChoice == 0 {
			m.editor.ClearWeek()
			m.statusMsg = "Week cleared (press s to save)"
		}
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

// handleModalKeys handles keys while a results modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = ModeNormal
		m.modalType = ModalNone
		return m, nil
	case "y":
		if m.modalType == ModalWindows {
			text := m.windowsCopyText()
			if err := clipboard.WriteAll(text); err != nil {
				m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
			} else {
				m.statusMsg = "Copied to clipboard"
			}
			m.mode = ModeNormal
			m.modalType = ModalNone
			return m, commands.ClearStatusAfter(3 * time.Second)
		}
	}
	return m, nil
}

// jumpToCurrentWeek returns to the week containing today.
func (m *Model) jumpToCurrentWeek() tea.Cmd {
	m.weekStart = currentWeekStart()
	m.loadGen++
	m.loading = true
	m.painting = false
	return commands.LoadWeek(m.repo, m.config.User.ID, m.weekStart, m.loadGen)
}
