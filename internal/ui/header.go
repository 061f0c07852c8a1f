package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkutlu/skylog/internal/journal"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	var parts []string
	parts = append(parts, styles.Logo.Render("skylog"))
	parts = append(parts, styles.Text.Render(journal.DayKey(m.selectedDay)))

	counts := m.snapshot.Counts()
	parts = append(parts, styles.MutedText.Render("entries:")+" "+
		styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Entries))))

	warnStyle := styles.MutedText
	if counts[journal.SeverityWarning] > 0 {
		warnStyle = styles.WarningText
	}
	critStyle := styles.MutedText
	if counts[journal.SeverityCritical] > 0 {
		critStyle = styles.DangerText
	}
	parts = append(parts,
		styles.MutedText.Render("W:")+warnStyle.Render(fmt.Sprintf("%d", counts[journal.SeverityWarning]))+
			sep+
			styles.MutedText.Render("C:")+critStyle.Render(fmt.Sprintf("%d", counts[journal.SeverityCritical])))

	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, styles.MutedText.Render(ts))
	}

	if m.snapshot.IsDegraded() {
		detail := ""
		if m.snapshot.LastError != nil {
			detail = " " + truncate(m.snapshot.LastError.Error(), 40)
		}
		parts = append(parts, styles.DangerText.Render("STALE"+detail))
	}

	if m.statusMsg != "" {
		parts = append(parts, styles.AccentText.Render(m.statusMsg))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// formatTimestamp formats the last refresh time with a relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	since := time.Since(m.lastUpdated)
	ts := m.lastUpdated.Format("15:04:05")
	if since >= time.Minute && since < time.Hour {
		ts += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	} else if since >= time.Hour {
		ts += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return ts
}

// renderCommandBar renders the key hint bar under the header.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.currentView == ViewPicker:
		commands = []cmd{
			{"j/k", "Move"},
			{"Enter", "Open"},
			{"Esc", "Cancel"},
		}
	case m.focusedPane == paneForm:
		commands = []cmd{
			{"Tab", "Field"},
			{"◂/▸", "Value"},
			{"Enter", "Record"},
			{"Esc", "Timeline"},
		}
	default:
		followLabel := "Follow"
		if m.followTail {
			followLabel = "Pause"
		}
		commands = []cmd{
			{"n", "New entry"},
			{"d", "Dates"},
			{"t", "Today"},
			{"[/]", "Prev/Next day"},
			{"Space", followLabel},
			{"s", "Summary"},
			{"?", "Help"},
		}
	}

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+styles.MutedText.Render(":"+c.desc))
	}
	segments = append(segments,
		styles.AccentText.Render("T")+styles.FaintText.Render(":"+m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
