package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkutlu/skylog/internal/journal"
)

const (
	headerLines     = 2 // status bar + command bar
	formPanelHeight = 12
)

// sidebarWidth returns the width reserved for the form and summary column.
func (m Model) sidebarWidth() int {
	w := 42
	if m.width < 110 {
		w = 36
	}
	if w > m.width/2 {
		w = m.width / 2
	}
	return w
}

func (m Model) timelineSize() (width, height int) {
	return m.width - m.sidebarWidth(), m.height - headerLines
}

// initTimeline creates the viewport once the first WindowSizeMsg arrives.
func (m *Model) initTimeline() {
	tw, th := m.timelineSize()
	m.timeline = viewport.New(tw-2, th-5)
}

// resizePanes keeps the viewport in step with the terminal size.
func (m *Model) resizePanes() {
	tw, th := m.timelineSize()
	m.timeline.Width = tw - 2  // panel border
	m.timeline.Height = th - 5 // border plus title rows
	if m.timeline.Height < 1 {
		m.timeline.Height = 1
	}
}

// updateTimeline rebuilds the viewport content from the snapshot.
func (m *Model) updateTimeline() {
	if !m.ready {
		return
	}
	styles := m.theme.Styles()

	entries := m.snapshot.Entries
	if len(entries) == 0 {
		m.timeline.SetContent(styles.MutedText.Render("No entries for this day."))
		return
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, m.entryLine(e, styles))
	}
	m.timeline.SetContent(strings.Join(lines, "\n"))

	if m.followTail {
		m.timeline.GotoBottom()
	}
}

// entryLine renders one entry row: time, severity tag, system, message.
func (m Model) entryLine(e journal.Entry, styles Styles) string {
	ts := styles.FaintText.Render(e.Timestamp.Format("15:04:05"))
	sev := styles.SeverityText(e.Status).Render(fmt.Sprintf("%-8s", strings.ToUpper(string(e.Status))))
	system := styles.AccentText.Render(fmt.Sprintf("%-14s", truncate(e.System, 14)))
	msg := styles.Text.Render(e.Message)
	if e.Status == journal.SeverityCritical {
		msg = styles.DangerText.Render(e.Message)
	}
	return ts + "  " + sev + " " + system + " " + msg
}

// renderDay renders the main day view: timeline left, form and summary right.
func (m Model) renderDay() string {
	left := m.renderTimelinePanel()
	right := m.renderSidebar()
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCommandBar(),
		content,
	)
}

func (m Model) renderTimelinePanel() string {
	styles := m.theme.Styles()
	tw, th := m.timelineSize()

	panel := styles.Panel
	if m.focusedPane == paneTimeline {
		panel = styles.PanelFocus
	}

	title := styles.Text.Bold(true).Render(m.selectedDay.Format("Monday, 2 Jan 2006"))
	if journal.SameDay(m.selectedDay, m.clock) {
		title += "  " + styles.AccentText.Render("today")
	}

	count := fmt.Sprintf("%d entries", len(m.snapshot.Entries))
	if m.snapshot.Skipped > 0 {
		count += fmt.Sprintf("  %s", styles.WarningText.Render(fmt.Sprintf("%d unreadable lines skipped", m.snapshot.Skipped)))
	}

	body := title + "\n" + styles.MutedText.Render(count) + "\n\n" + m.timeline.View()
	return panel.Width(tw - 2).Height(th - 2).Render(body)
}

func (m Model) renderSidebar() string {
	styles := m.theme.Styles()
	sw := m.sidebarWidth()
	_, th := m.timelineSize()

	formPanel := styles.Panel
	if m.focusedPane == paneForm {
		formPanel = styles.PanelFocus
	}
	form := formPanel.Width(sw - 2).Height(formPanelHeight - 2).Render(m.renderForm(sw - 4))

	if !m.showSummary || th-formPanelHeight < 6 {
		return form
	}

	summary := styles.Panel.
		Width(sw - 2).
		Height(th - formPanelHeight - 2).
		Render(m.renderSummary(sw-4, th-formPanelHeight-4))

	return lipgloss.JoinVertical(lipgloss.Left, form, summary)
}
