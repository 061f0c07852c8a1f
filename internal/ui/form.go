package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkutlu/skylog/internal/journal"
)

// formField identifies the focused input inside the entry form.
type formField int

const (
	fieldSystem formField = iota
	fieldSeverity
	fieldMessage
)

// formState holds the new-entry form.
type formState struct {
	systems     []string
	systemIdx   int
	severityIdx int
	message     textinput.Model
	field       formField
}

func newFormState(systems []string, lastSystem string) formState {
	if len(systems) == 0 {
		systems = []string{"General"}
	}

	ti := textinput.New()
	ti.Placeholder = "What happened?"
	ti.CharLimit = 500
	ti.Prompt = ""

	f := formState{
		systems: systems,
		message: ti,
		field:   fieldMessage,
	}
	for i, s := range systems {
		if s == lastSystem {
			f.systemIdx = i
			break
		}
	}
	return f
}

func (f formState) selectedSystem() string {
	return f.systems[f.systemIdx]
}

func (f formState) selectedSeverity() journal.Severity {
	return journal.Severities[f.severityIdx]
}

func (f *formState) focusMessage() {
	f.field = fieldMessage
	f.message.Focus()
}

func (f *formState) blur() {
	f.message.Blur()
}

func (f *formState) clearMessage() {
	f.message.SetValue("")
}

// cycleField moves focus through system, severity and message.
func (f *formState) cycleField(direction int) {
	next := (int(f.field) + direction + 3) % 3
	f.field = formField(next)
	if f.field == fieldMessage {
		f.message.Focus()
	} else {
		f.message.Blur()
	}
}

// cycleValue steps the system or severity selector. No-op on the message field.
func (f *formState) cycleValue(direction int) {
	switch f.field {
	case fieldSystem:
		f.systemIdx = (f.systemIdx + direction + len(f.systems)) % len(f.systems)
	case fieldSeverity:
		n := len(journal.Severities)
		f.severityIdx = (f.severityIdx + direction + n) % n
	}
}

// handleFormKey processes input while the form pane has focus.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.blur()
		m.focusedPane = paneTimeline
		return m, nil

	case "tab", "down":
		m.form.cycleField(+1)
		return m, nil

	case "shift+tab", "up":
		m.form.cycleField(-1)
		return m, nil

	case "left":
		m.form.cycleValue(-1)
		return m, nil

	case "right":
		m.form.cycleValue(+1)
		return m, nil

	case "ctrl+s", "enter":
		message := strings.TrimSpace(m.form.message.Value())
		if message == "" {
			m.statusMsg = "message is required"
			m.form.focusMessage()
			return m, nil
		}
		m.statusMsg = "recording..."
		return m, appendEntryCmd(
			m.journal,
			m.bus,
			m.form.selectedSystem(),
			string(m.form.selectedSeverity()),
			message,
		)
	}

	if m.form.field == fieldMessage {
		var cmd tea.Cmd
		m.form.message, cmd = m.form.message.Update(msg)
		return m, cmd
	}
	return m, nil
}

// renderForm renders the new-entry form into the given inner width.
func (m Model) renderForm(innerWidth int) string {
	styles := m.theme.Styles()
	focused := m.focusedPane == paneForm

	label := func(name string, field formField) string {
		marker := "  "
		style := styles.MutedText
		if focused && m.form.field == field {
			marker = "▸ "
			style = styles.AccentText
		}
		return style.Render(marker + name)
	}

	sevStyle := styles.SeverityText(m.form.selectedSeverity())

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("New Entry"))
	b.WriteString("\n\n")

	b.WriteString(label("System  ", fieldSystem))
	b.WriteString(styles.Text.Render("◂ " + m.form.selectedSystem() + " ▸"))
	b.WriteString("\n")

	b.WriteString(label("Severity", fieldSeverity))
	b.WriteString(sevStyle.Render("◂ " + string(m.form.selectedSeverity()) + " ▸"))
	b.WriteString("\n\n")

	b.WriteString(label("Message ", fieldMessage))
	b.WriteString("\n")

	m.form.message.Width = innerWidth - 4
	input := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(innerWidth - 2).
		Padding(0, 1).
		Render(m.form.message.View())
	b.WriteString(input)
	b.WriteString("\n\n")

	hint := "tab: next field  enter: record"
	if !focused {
		hint = "n: compose"
	}
	b.WriteString(styles.FaintText.Render(hint))

	return b.String()
}
