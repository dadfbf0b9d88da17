package viz

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/EEseka/physiquest/internal/engine"
)

const sparkWidth = 24

func styled(t *table.Table) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Secondary).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(CurrentTheme.Text).Padding(0, 1)
	first := cell.Foreground(CurrentTheme.Primary)
	return t.
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(CurrentTheme.Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return first
			default:
				return cell
			}
		})
}

// ResultTable lists every output scalar of sum. Undetermined outputs are
// kept so the reader sees what the inputs did not fix.
func ResultTable(sum engine.Summary) string {
	t := table.New().Headers("QUANTITY", "VALUE", "UNIT")
	for _, sc := range sum.Scalars {
		t.Row(sc.Name, sc.Value.String(), sc.Unit)
	}
	return styled(t).Render()
}

// CurveTable lists curves and paths with their sizes and extents.
func CurveTable(sum engine.Summary) string {
	t := table.New().Headers("CURVE", "POINTS", "X RANGE", "Y RANGE", "SHAPE")
	for _, s := range sum.Curves {
		ys := s.Ys()
		lo, hi := extent(ys)
		first, last := s.Points[0].X, s.Points[len(s.Points)-1].X
		t.Row(
			s.Name,
			strconv.Itoa(len(s.Points)),
			fmt.Sprintf("%.4g … %.4g", first, last),
			fmt.Sprintf("%.4g … %.4g", lo, hi),
			Sparkline(ys, sparkWidth),
		)
	}
	for _, p := range sum.Paths {
		shape := "open"
		if p.Closed {
			shape = "closed"
		}
		t.Row(p.Name, strconv.Itoa(len(p.Points)), "", "", shape)
	}
	return styled(t).Render()
}

func extent(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs {
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi
}
