package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkutlu/skylog/internal/journal"
)

// pickerState holds the date picker overlay.
type pickerState struct {
	days   []time.Time // newest first
	cursor int
}

// openPicker builds the picker from the snapshot's date list. Today is
// always offered, even before its file exists.
func (m *Model) openPicker() {
	days := m.snapshot.Dates
	today := time.Now()
	if len(days) == 0 || !journal.SameDay(days[0], today) {
		days = append([]time.Time{today}, days...)
	}

	cursor := 0
	key := journal.DayKey(m.selectedDay)
	for i, d := range days {
		if journal.DayKey(d) == key {
			cursor = i
			break
		}
	}

	m.picker = pickerState{days: days, cursor: cursor}
	m.currentView = ViewPicker
}

// handlePickerKey processes input while the date picker is open.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "d", "q":
		m.currentView = ViewDay
		return m, nil

	case "j", "down":
		if m.picker.cursor < len(m.picker.days)-1 {
			m.picker.cursor++
		}
		return m, nil

	case "k", "up":
		if m.picker.cursor > 0 {
			m.picker.cursor--
		}
		return m, nil

	case "g", "home":
		m.picker.cursor = 0
		return m, nil

	case "G", "end":
		m.picker.cursor = len(m.picker.days) - 1
		return m, nil

	case "enter":
		if len(m.picker.days) == 0 {
			m.currentView = ViewDay
			return m, nil
		}
		m.selectedDay = m.picker.days[m.picker.cursor]
		m.currentView = ViewDay
		m.followTail = true
		return m, selectDayCmd(m.journal, m.store, m.selectedDay)
	}

	return m, nil
}

// renderPicker renders the date picker as a centered modal.
func (m Model) renderPicker() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Open Day"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 28)))
	b.WriteString("\n\n")

	// Window the list so long histories stay on screen.
	maxRows := m.height - 12
	if maxRows < 5 {
		maxRows = 5
	}
	start := 0
	if m.picker.cursor >= maxRows {
		start = m.picker.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(m.picker.days) {
		end = len(m.picker.days)
	}

	today := time.Now()
	for i := start; i < end; i++ {
		day := m.picker.days[i]
		line := fmt.Sprintf(" %s  %s ", journal.DayKey(day), day.Format("Mon"))
		if journal.SameDay(day, today) {
			line += "(today) "
		}

		if i == m.picker.cursor {
			b.WriteString(styles.Selected.Render(line))
		} else if journal.DayKey(day) == journal.DayKey(m.selectedDay) {
			b.WriteString(styles.AccentText.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("j/k: move  enter: open  esc: cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(36).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
