package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))
)

// Metric is one labelled line of a summary. Warn lines use the Warning style.
type Metric struct {
	Label string
	Value string
	Warn  bool
}

func Metricf(label, format string, args ...any) Metric {
	return Metric{Label: label, Value: fmt.Sprintf(format, args...)}
}

func Warnf(label, format string, args ...any) Metric {
	return Metric{Label: label, Value: fmt.Sprintf(format, args...), Warn: true}
}

// Summary renders a titled panel of metrics with aligned labels.
func Summary(title string, metrics []Metric) string {
	width := 0
	for _, m := range metrics {
		width = max(width, len(m.Label))
	}

	var sb strings.Builder
	sb.WriteString(Title.Render(title))
	for _, m := range metrics {
		sb.WriteString("\n")
		sb.WriteString(MetricLabel.Render(fmt.Sprintf("%-*s", width, m.Label)))
		sb.WriteString("  ")
		if m.Warn {
			sb.WriteString(Warning.Render(m.Value))
		} else {
			sb.WriteString(MetricValue.Render(m.Value))
		}
	}
	return Panel.Render(sb.String())
}
