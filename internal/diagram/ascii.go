package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlotSeries renders one diagram curve as a terminal chart. The values are
// assumed sampled over a uniform position grid, so the horizontal axis is
// simply the station index.
func PlotSeries(caption string, values []float64, height int) string {
	if len(values) == 0 {
		return ""
	}
	if height <= 0 {
		height = 10
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
}

// SummaryBox frames a title and result lines in a box, for terminal output.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	if len(lines) > 0 {
		sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	}
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
