package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/arosati/raidnight/internal/avail"
	"github.com/arosati/raidnight/internal/dateutil"
	"github.com/arosati/raidnight/internal/search"
)

// Layout constants. The grid origin must stay in sync with the row and
// column composition in View so mouse coordinates map to the right cell.
const (
	timeColWidth = 9

	// Rows above the first slot row: app padding, title, week line,
	// table border, day header.
	gridOriginY = 5

	// Columns left of the first day cell: app padding, table border
	// and padding, time column.
	gridOriginX = 4 + timeColWidth

	// Rows below the grid: table border, legend, status, help, app padding.
	footerHeight = 7
)

// visibleRows returns how many slot rows fit in the terminal.
func (m Model) visibleRows() int {
	rows := m.height - gridOriginY - footerHeight
	if rows < 4 {
		rows = 4
	}
	if rows > maxSlots {
		rows = maxSlots
	}
	return rows
}

// ensureCursorVisible adjusts scrollOffset so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor.Slot < m.scrollOffset {
		m.scrollOffset = m.cursor.Slot
	}
	if m.cursor.Slot >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Slot - visible + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// calculateColWidth sizes day columns to the terminal width.
func (m Model) calculateColWidth() int {
	if m.width <= 0 {
		return defaultColWidth
	}
	usable := m.width - gridOriginX - 4
	w := usable / 7
	if w < 4 {
		w = 4
	}
	if w > 14 {
		w = 14
	}
	return w
}

// cellAt translates terminal coordinates to a grid position.
func (m Model) cellAt(x, y int) (day, slot int, ok bool) {
	slot = y - gridOriginY + m.scrollOffset
	if slot < m.scrollOffset || slot >= m.scrollOffset+m.visibleRows() {
		return 0, 0, false
	}
	if slot < 0 || slot >= maxSlots {
		return 0, 0, false
	}

	col := x - gridOriginX
	if col < 0 {
		return 0, 0, false
	}
	day = col / m.colWidth
	if day < 0 || day >= avail.DaysPerWeek {
		return 0, 0, false
	}
	return day, slot, true
}

// currentWeekStart returns the Sunday of the week containing today.
func currentWeekStart() time.Time {
	return dateutil.WeekStart(time.Now())
}

// windowsCopyText renders the current search results as plain text for
// pasting into chat.
func (m Model) windowsCopyText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Options for a %dh session, week of %s:\n", m.windowsDur, dateutil.FormatWeekRange(m.weekStart))
	if len(m.windows) == 0 {
		b.WriteString("No windows found.\n")
		return b.String()
	}
	for _, w := range m.windows {
		marker := ""
		if w.Classification == search.Preferred {
			marker = " *"
		}
		fmt.Fprintf(&b, "- %s %s to %s%s\n",
			avail.DayNames[w.Day],
			avail.SlotTime(w.StartSlot),
			slotEndTime(w.EndSlot),
			marker)
	}
	return b.String()
}

// slotEndTime renders the end boundary of a window. EndSlot is exclusive
// so slot 48 means midnight at the end of the day.
func slotEndTime(endSlot int) string {
	if endSlot >= maxSlots {
		return "12:00 AM"
	}
	return avail.SlotTime(endSlot)
}
