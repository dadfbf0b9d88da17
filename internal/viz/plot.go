package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/EEseka/physiquest/internal/engine"
)

func caption(s engine.Series) string {
	if len(s.Points) == 0 {
		return s.Name
	}
	first, last := s.Points[0].X, s.Points[len(s.Points)-1].X
	return fmt.Sprintf("%s: %s vs %s [%.4g, %.4g]", s.Name, s.YLabel, s.XLabel, first, last)
}

// Plot renders one curve as an asciigraph chart. Curves are sampled evenly
// in X, so the chart's horizontal axis is linear in X.
func Plot(s engine.Series, width, height int) string {
	switch len(s.Points) {
	case 0:
		return caption(s) + ": no points\n"
	case 1:
		return fmt.Sprintf("%s: %s = %.6g at %s = %.6g\n", s.Name, s.YLabel, s.Points[0].Y, s.XLabel, s.Points[0].X)
	}
	return asciigraph.Plot(s.Ys(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption(s)),
		asciigraph.SeriesColors(CurrentTheme.Plot),
	) + "\n"
}

// PlotMany overlays curves that share an X axis, such as kinetic and
// potential energy over the same heights.
func PlotMany(series []engine.Series, width, height int) string {
	if len(series) == 1 {
		return Plot(series[0], width, height)
	}
	data := make([][]float64, 0, len(series))
	names := make([]string, 0, len(series))
	for _, s := range series {
		if len(s.Points) < 2 {
			continue
		}
		data = append(data, s.Ys())
		names = append(names, s.Name)
	}
	if len(data) == 0 {
		return "no curves\n"
	}

	colors := []asciigraph.AnsiColor{CurrentTheme.Plot, asciigraph.Cyan, asciigraph.Yellow, asciigraph.Green}
	for len(colors) < len(data) {
		colors = append(colors, colors...)
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(series[0].XLabel),
		asciigraph.SeriesColors(colors[:len(data)]...),
		asciigraph.SeriesLegends(names...),
	) + "\n"
}
