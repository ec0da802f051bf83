package render

import (
	"github.com/guptarohit/asciigraph"
)

// SeriesPlot renders one series as a terminal line chart.
func SeriesPlot(series []float64, width, height int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption))
}
