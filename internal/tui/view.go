package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/dateutil"
	"github.com/arosati/raidnight/internal/search"
	"github.com/arosati/raidnight/internal/summary"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	if m.mode == ModeModal && m.modalType != ModalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.renderModal(),
			lipgloss.WithWhitespaceBackground(m.styles.colorBg))
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return m.styles.AppStyle.Render(b.String())
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("raidnight")

	week := m.styles.HeaderStyle.Render(dateutil.FormatWeekRange(m.weekStart))
	if m.loading {
		week += m.styles.HelpStyle.Render("  loading...")
	}

	right := ""
	if m.party != nil {
		right = m.styles.HelpStyle.Render(fmt.Sprintf("%s (%d members)", m.party.Name, len(m.partyMembers)))
	}
	if m.editor.Dirty() {
		right += m.styles.DirtyStyle.Render("  [unsaved]")
	}

	line := title + "  " + week
	if right != "" {
		line += "  " + right
	}
	return line
}

func (m Model) renderGrid() string {
	var rows []string

	// Day header
	today := dateutil.TruncateToDay(time.Now())
	header := m.styles.TimeColumnStyle.Render("")
	for day := 0; day < avail.DaysPerWeek; day++ {
		style := m.styles.DayHeaderStyleWidth(m.colWidth)
		if m.weekStart.AddDate(0, 0, day).Equal(today) {
			style = m.styles.DayHeaderTodayStyleWidth(m.colWidth)
		}
		header += style.Render(avail.DayAbbrevs[day])
	}
	rows = append(rows, header)

	visible := m.visibleRows()
	for i := 0; i < visible; i++ {
		slot := m.scrollOffset + i
		if slot >= maxSlots {
			break
		}
		rows = append(rows, m.renderSlotRow(slot))
	}

	return m.styles.TableStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) renderSlotRow(slot int) string {
	label := ""
	if slot%2 == 0 {
		label = avail.SlotTime(slot)
	}
	row := m.styles.TimeColumnStyle.Render(label)

	for day := 0; day < avail.DaysPerWeek; day++ {
		row += m.renderCell(day, slot)
	}
	return row
}

func (m Model) renderCell(day, slot int) string {
	state := m.editor.State(day, slot)
	content := cellGlyph(state)

	if m.cursor.Day == day && m.cursor.Slot == slot {
		style := m.styles.CursorStyleWidth(m.colWidth)
		if m.painting {
			style = m.styles.PaintAnchorStyle.Width(m.colWidth)
		}
		return style.Render(content)
	}

	switch state {
	case avail.StateAvailable:
		return m.styles.AvailableStyleWidth(m.colWidth).Render(content)
	case avail.StatePreferred:
		return m.styles.PreferredStyleWidth(m.colWidth).Render(content)
	case avail.StateUnavailable:
		return m.styles.UnavailableStyleWidth(m.colWidth).Render(content)
	default:
		return m.styles.EmptyCellStyleWidth(m.colWidth).Render(content)
	}
}

func cellGlyph(state avail.SlotState) string {
	switch state {
	case avail.StateAvailable:
		return "✓"
	case avail.StatePreferred:
		return "★"
	case avail.StateUnavailable:
		return "✗"
	default:
		return "·"
	}
}

func (m Model) renderFooter() string {
	var lines []string

	legend := m.styles.LegendAvailableStyle.Render("✓ available") + "  " +
		m.styles.LegendPreferredStyle.Render("★ preferred") + "  " +
		m.styles.LegendUnavailableStyle.Render("✗ unavailable")
	lines = append(lines, m.styles.LegendStyle.Render(legend))

	switch m.mode {
	case ModePrompt:
		lines = append(lines, m.styles.PromptFocusedStyle.Render(m.prompt.View()))
	case ModeFillPick:
		lines = append(lines, m.renderFillPicker())
	case ModeConfirm:
		lines = append(lines, m.renderConfirm())
	}

	if m.statusMsg != "" {
		lines = append(lines, m.styles.StatusStyle.Render(m.statusMsg))
	}

	lines = append(lines, m.styles.HelpStyle.Render(m.helpText()))
	return strings.Join(lines, "\n")
}

func (m Model) renderFillPicker() string {
	var parts []string
	for i, state := range fillStates {
		label := state.String()
		if state == avail.StateNone {
			label = "clear"
		}
		style := m.styles.FillOptionStyle
		if i == m.fillChoice {
			style = m.styles.FillOptionActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	return m.styles.LegendStyle.Render("Fill with: ") + strings.Join(parts, " ")
}

func (m Model) renderConfirm() string {
	yes := m.styles.ConfirmButtonStyle.Render("Yes")
	no := m.styles.ConfirmButtonActive.Render("No")
	if m.confirmChoice == 0 {
		yes = m.styles.ConfirmButtonActive.Render("Yes")
		no = m.styles.ConfirmButtonStyle.Render("No")
	}
	return m.styles.StatusStyle.Render("Clear all availability for this week? ") + yes + " " + no
}

func (m Model) helpText() string {
	switch m.mode {
	case ModePrompt:
		return "Enter: search  Esc: cancel"
	case ModeFillPick:
		return "a/p/u/n or h/l + Enter: fill  Esc: cancel"
	case ModeConfirm:
		return "y/n or h/l + Enter  Esc: cancel"
	default:
		return "hjkl: move  Space: cycle  v: paint  f: fill  c: clear  s: save  H/L: week  t: today  /: find  S: summary  q: quit"
	}
}

func (m Model) renderModal() string {
	switch m.modalType {
	case ModalWindows:
		return m.renderWindowsModal()
	case ModalSummary:
		return m.renderSummaryModal()
	default:
		return ""
	}
}

func (m Model) renderWindowsModal() string {
	var b strings.Builder
	title := fmt.Sprintf("Windows for a %dh session", m.windowsDur)
	b.WriteString(m.styles.ModalTitleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.windows) == 0 {
		b.WriteString(m.styles.ModalBodyStyle.Render("No overlap found for the whole party."))
		b.WriteString("\n")
	} else {
		for _, w := range m.windows {
			line := fmt.Sprintf("%-9s %s to %s", avail.DayNames[w.Day], avail.SlotTime(w.StartSlot), slotEndTime(w.EndSlot))
			if w.Classification == search.Preferred {
				b.WriteString(m.styles.ModalPreferredStyle.Render("★ " + line))
			} else {
				b.WriteString(m.styles.ModalBodyStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("y: copy  Esc: close"))
	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderSummaryModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("Party availability"))
	b.WriteString("\n")
	if m.psummary != nil {
		b.WriteString(m.styles.ModalMutedStyle.Render(
			fmt.Sprintf("Times when at least %d of %d members are free", summary.Threshold(m.psummary.Members), m.psummary.Members)))
	}
	b.WriteString("\n\n")

	if m.psummary != nil {
		for day := 0; day < avail.DaysPerWeek; day++ {
			times := m.psummary.DayTimes(day, 4)
			b.WriteString(m.styles.ModalHighlightStyle.Render(avail.DayNames[day]))
			b.WriteString("\n")
			b.WriteString(m.styles.ModalBodyStyle.Render("  " + strings.Join(times, ", ")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("Esc: close"))
	return m.styles.ModalStyle.Render(b.String())
}
