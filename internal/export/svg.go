package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/viz"
)

const (
	background = "#0a0a0a"
	padding    = 0.1
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", fill)

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !canvas.IsSet(col*2+dx, row*4+dy) {
						continue
					}
					cx := (float64(col*2+dx) + 0.5) * scale
					cy := (float64(row*4+dy) + 0.5) * scale
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// bounds is a padded data window mapped onto a width x height image.
type bounds struct {
	minX, maxX, minY, maxY float64
	width, height          float64
}

func fit(sets [][]engine.Point, width, height int) (bounds, bool) {
	b := bounds{
		minX:   math.Inf(1),
		maxX:   math.Inf(-1),
		minY:   math.Inf(1),
		maxY:   math.Inf(-1),
		width:  float64(width),
		height: float64(height),
	}
	n := 0
	for _, pts := range sets {
		for _, p := range pts {
			b.minX, b.maxX = math.Min(b.minX, p.X), math.Max(b.maxX, p.X)
			b.minY, b.maxY = math.Min(b.minY, p.Y), math.Max(b.maxY, p.Y)
			n++
		}
	}
	if n == 0 {
		return b, false
	}

	rangeX, rangeY := b.maxX-b.minX, b.maxY-b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	b.minX -= rangeX * padding
	b.maxX += rangeX * padding
	b.minY -= rangeY * padding
	b.maxY += rangeY * padding
	return b, true
}

func (b bounds) project(p engine.Point) (float64, float64) {
	x := (p.X - b.minX) / (b.maxX - b.minX) * b.width
	y := b.height - (p.Y-b.minY)/(b.maxY-b.minY)*b.height
	return x, y
}

func (b bounds) polyline(sb *strings.Builder, pts []engine.Point, closed bool, stroke string) {
	fmt.Fprintf(sb, "<path fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\" d=\"", stroke)
	for i, p := range pts {
		x, y := b.project(p)
		if i == 0 {
			fmt.Fprintf(sb, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", x, y)
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
	sb.WriteString("\"/>\n")
}

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// SeriesToSVG draws one curve scaled to fill the image. Curves with fewer
// than two points yield "".
func SeriesToSVG(s engine.Series, width, height int, stroke string) string {
	if len(s.Points) < 2 {
		return ""
	}
	b, _ := fit([][]engine.Point{s.Points}, width, height)

	var sb strings.Builder
	header(&sb, float64(width), float64(height))
	fmt.Fprintf(&sb, "<title>%s: %s vs %s</title>\n", escape(s.Name), escape(s.YLabel), escape(s.XLabel))
	b.polyline(&sb, s.Points, false, stroke)
	sb.WriteString("</svg>\n")
	return sb.String()
}

// PathsToSVG draws every path on a shared scale, so field lines and plates
// keep their relative geometry.
func PathsToSVG(paths []engine.Path, width, height int, stroke string) string {
	sets := make([][]engine.Point, len(paths))
	for i, p := range paths {
		sets[i] = p.Points
	}
	b, ok := fit(sets, width, height)
	if !ok {
		return ""
	}

	var sb strings.Builder
	header(&sb, float64(width), float64(height))
	for _, p := range paths {
		if len(p.Points) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "<g id=\"%s\">\n", escape(p.Name))
		b.polyline(&sb, p.Points, p.Closed, stroke)
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return xmlEscaper.Replace(s) }
