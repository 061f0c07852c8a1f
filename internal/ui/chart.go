package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkutlu/skylog/internal/journal"
)

// renderSummary renders a severity breakdown for the selected day as a
// bar chart with a legend column.
func (m Model) renderSummary(width, height int) string {
	styles := m.theme.Styles()
	counts := m.snapshot.Counts()

	title := styles.Text.Bold(true).Render("Day Summary")

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return title + "\n\n" + styles.MutedText.Render("Nothing to chart yet.")
	}

	legendWidth := 16
	chartHeight := height - 2
	if chartHeight < 3 {
		chartHeight = 3
	}
	chartWidth := width - legendWidth - 2
	if chartWidth < 9 {
		chartWidth = 9
	}

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(2),
		barchart.WithNoAxis(),
	)

	for _, sev := range journal.Severities {
		color := lipgloss.Color(m.theme.SeverityColors[sev])
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{{
				Name:  string(sev),
				Value: float64(counts[sev]),
				Style: lipgloss.NewStyle().Foreground(color).Background(color),
			}},
		})
	}
	bc.Draw()

	var legendLines []string
	for _, sev := range journal.Severities {
		label := fmt.Sprintf("%-8s %4d", string(sev), counts[sev])
		legendLines = append(legendLines, styles.SeverityText(sev).Render(label))
	}
	legendLines = append(legendLines, styles.FaintText.Render(strings.Repeat("─", 13)))
	legendLines = append(legendLines, styles.Text.Render(fmt.Sprintf("%-8s %4d", "total", total)))

	chartLines := strings.Split(bc.View(), "\n")
	rows := chartHeight
	if len(legendLines) > rows {
		rows = len(legendLines)
	}

	var combined []string
	for i := 0; i < rows; i++ {
		chartLine := ""
		if i < len(chartLines) {
			chartLine = chartLines[i]
		}
		pad := chartWidth - lipgloss.Width(chartLine)
		if pad > 0 {
			chartLine += strings.Repeat(" ", pad)
		}
		legendLine := ""
		if i < len(legendLines) {
			legendLine = legendLines[i]
		}
		combined = append(combined, chartLine+"  "+legendLine)
	}

	return title + "\n\n" + strings.Join(combined, "\n")
}
