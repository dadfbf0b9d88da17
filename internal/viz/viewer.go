package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EEseka/physiquest/internal/engine"
)

const (
	minPlotWidth  = 20
	minPlotHeight = 5
	chrome        = 8 // lines used by the header and key hints
)

// Viewer is a Bubble Tea model that pages through the curves of one
// result. When the result has paths, p switches to a Braille drawing of
// them.
type Viewer struct {
	title     string
	sum       engine.Summary
	curve     int
	showPaths bool
	theme     Theme

	width, height int
	plotWidth     int
	plotHeight    int
}

func NewViewer(title string, sum engine.Summary, plotWidth, plotHeight int) Viewer {
	return Viewer{
		title:      title,
		sum:        sum,
		theme:      CurrentTheme,
		showPaths:  len(sum.Curves) == 0 && len(sum.Paths) > 0,
		plotWidth:  plotWidth,
		plotHeight: plotHeight,
	}
}

// Curve returns the index of the curve on screen.
func (v Viewer) Curve() int { return v.curve }

// ShowingPaths reports whether the path canvas is on screen.
func (v Viewer) ShowingPaths() bool { return v.showPaths }

func (v Viewer) Theme() Theme { return v.theme }

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	n := len(v.sum.Curves)
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return v, tea.Quit
	case "right", "l":
		if n > 0 {
			v.curve = (v.curve + 1) % n
			v.showPaths = false
		}
	case "left", "h":
		if n > 0 {
			v.curve = (v.curve - 1 + n) % n
			v.showPaths = false
		}
	case "p":
		if len(v.sum.Paths) > 0 {
			v.showPaths = !v.showPaths || n == 0
		}
	case "t":
		v.theme = NextTheme(v.theme)
		CurrentTheme = v.theme
	}
	return v, nil
}

func (v Viewer) size() (int, int) {
	w, h := v.plotWidth, v.plotHeight
	if v.width > 0 {
		w = min(w, v.width-12)
	}
	if v.height > 0 {
		h = min(h, v.height-chrome)
	}
	return max(w, minPlotWidth), max(h, minPlotHeight)
}

func (v Viewer) View() string {
	var b strings.Builder
	w, h := v.size()

	b.WriteString(Title(fmt.Sprintf("%s · %s", v.title, v.sum.Domain)))
	b.WriteString("\n")
	b.WriteString(Separator(w + 10))
	b.WriteString("\n\n")

	switch {
	case v.showPaths:
		canvas := NewCanvas(w, h)
		canvas.DrawPaths(v.sum.Paths)
		b.WriteString(canvas.String())
		b.WriteString(Muted(fmt.Sprintf("%d paths", len(v.sum.Paths))))
	case len(v.sum.Curves) > 0:
		b.WriteString(Plot(v.sum.Curves[v.curve], w, h))
		b.WriteString(Muted(fmt.Sprintf("curve %d/%d", v.curve+1, len(v.sum.Curves))))
	default:
		b.WriteString(Muted("no curves for these inputs"))
	}

	b.WriteString("\n\n")
	b.WriteString(keyHintStyle().Render("←/→ curve · p paths · t theme (" + v.theme.Name + ") · q quit"))
	b.WriteString("\n")
	return b.String()
}
