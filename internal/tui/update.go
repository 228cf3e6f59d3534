package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arosati/raidnight/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.colWidth = m.calculateColWidth()
		m.ensureCursorVisible()
		return m, nil

	case commands.WeekLoadedMsg:
		// A response for a week the user already navigated away from
		// must not clobber the week they are looking at now.
		if msg.Generation != m.loadGen {
			LogStaleLoad(msg.Generation, m.loadGen)
			return m, nil
		}
		m.editor.Reset(msg.Week)
		m.loading = false
		if msg.Warning != "" {
			m.statusMsg = msg.Warning
			return m, commands.ClearStatusAfter(5 * time.Second)
		}
		m.statusMsg = ""
		return m, nil

	case commands.WeekSavedMsg:
		m.editor.MarkSaved()
		m.statusMsg = "Saved"
		return m, commands.ClearStatusAfter(3 * time.Second)

	case commands.PartyLoadedMsg:
		m.party = msg.Party
		m.partyMembers = msg.Members
		return m, nil

	case commands.WindowsMsg:
		m.windows = msg.Windows
		m.windowsDur = msg.Duration
		m.mode = ModeModal
		m.modalType = ModalWindows
		m.statusMsg = ""
		return m, nil

	case commands.SummaryMsg:
		m.psummary = msg.Summary
		m.mode = ModeModal
		m.modalType = ModalSummary
		m.statusMsg = ""
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		return m, commands.ClearStatusAfter(5 * time.Second)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleMouseMsg translates terminal mouse events into grid gestures.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollOffset = max(0, m.scrollOffset-2)
		return m, nil
	case tea.MouseButtonWheelDown:
		maxOffset := max(0, maxSlots-m.visibleRows())
		m.scrollOffset = min(maxOffset, m.scrollOffset+2)
		return m, nil
	}

	day, slot, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		if msg.Action == tea.MouseActionRelease {
			m.editor.Release()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.cursor = Position{Day: day, Slot: slot}
			m.editor.Press(day, slot)
		}
	case tea.MouseActionMotion:
		m.cursor = Position{Day: day, Slot: slot}
		m.editor.Drag(day, slot)
	case tea.MouseActionRelease:
		m.editor.Release()
	}
	return m, nil
}
