package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mkutlu/skylog/internal/journal"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // outermost background
	Surface    string // header/command bar panels
	SurfaceAlt string // secondary surfaces

	// Border colors
	Border      string // default border
	BorderFocus string // focus border

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string

	// Severity colors drive entry rows, badges and the summary chart.
	SeverityColors map[journal.Severity]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SeverityColors[journal.SeverityWarning])),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SeverityColors[journal.SeverityCritical])).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		PanelFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		severityColors: t.SeverityColors,
		background:     t.Background,
		muted:          t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	Panel      lipgloss.Style
	PanelFocus lipgloss.Style

	severityColors map[journal.Severity]string
	background     string
	muted          string
}

// SeverityText returns a foreground style for the given severity.
func (s Styles) SeverityText(sev journal.Severity) lipgloss.Style {
	color := s.severityColors[sev]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// SeverityBadge returns an inverted badge style for the given severity.
func (s Styles) SeverityBadge(sev journal.Severity) lipgloss.Style {
	color := s.severityColors[sev]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// Theme definitions

var themes = map[string]Theme{
	"Radar":    radarTheme(),
	"Calendar": calendarTheme(),
}

var themeOrder = []string{"Radar", "Calendar"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return radarTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func radarTheme() Theme {
	// Avionics panel palette carried over from the original instrument UI.
	return Theme{
		Name: "Radar",

		Background: "#081426",
		Surface:    "#0F1F38",
		SurfaceAlt: "#12304D",

		Border:      "#1F3B64",
		BorderFocus: "#19D3FF",

		SelectionBg:   "#1F3B64",
		SelectionText: "#E8F1FF",

		Text:   "#E1ECF7",
		Muted:  "#8CA6C5",
		Faint:  "#5B7392",
		Accent: "#19D3FF",

		SeverityColors: map[journal.Severity]string{
			journal.SeverityNormal:   "#19D3FF",
			journal.SeverityWarning:  "#FFC857",
			journal.SeverityCritical: "#FF6B6B",
		},
	}
}

func calendarTheme() Theme {
	// Atlassian-style board palette: https://atlassian.design/foundations/color
	return Theme{
		Name: "Calendar",

		Background: "#1D2125",
		Surface:    "#22272B",
		SurfaceAlt: "#2C333A",

		Border:      "#454F59",
		BorderFocus: "#579DFF",

		SelectionBg:   "#09326C",
		SelectionText: "#E9F2FF",

		Text:   "#C7D1DB",
		Muted:  "#8C9BAB",
		Faint:  "#596773",
		Accent: "#579DFF",

		SeverityColors: map[journal.Severity]string{
			journal.SeverityNormal:   "#4BCE97",
			journal.SeverityWarning:  "#E2B203",
			journal.SeverityCritical: "#F87168",
		},
	}
}
