package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Secondary)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
}

func keyHintStyle() lipgloss.Style {
	return mutedStyle().Italic(true)
}

// Title renders a heading in the current theme.
func Title(s string) string { return titleStyle().Render(s) }

// Muted renders secondary text in the current theme.
func Muted(s string) string { return mutedStyle().Render(s) }

// ErrorText renders s in the theme's error color.
func ErrorText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Error).Render(s)
}

// Sparkline renders values as a row of block glyphs at most width wide.
func Sparkline(values []float64, width int) string {
	if width < 1 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	low := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	mid := lipgloss.NewStyle().Foreground(CurrentTheme.Secondary)
	high := lipgloss.NewStyle().Foreground(CurrentTheme.Primary)

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(high.Render(c))
		case norm > 0.3:
			result.WriteString(mid.Render(c))
		default:
			result.WriteString(low.Render(c))
		}
	}
	return result.String()
}

// Separator draws a decorated horizontal rule.
func Separator(width int) string {
	if width < 8 {
		return mutedStyle().Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return mutedStyle().Render(left + " ◆ " + right)
}
