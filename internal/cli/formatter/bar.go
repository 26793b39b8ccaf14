package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a horizontal bar like ███░░░░░ filled proportionally to
// value/max. A zero max renders an empty bar. The bar is colored by fill
// ratio: green >=66%, yellow 33-66%, blue below.
func RenderBar(value, max, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 {
		filled = value * width / max
		if filled > width {
			filled = width
		}
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return barStyle(value, max).Render(bar)
}

func barStyle(value, max int) lipgloss.Style {
	if max <= 0 {
		return StyleBlue
	}
	ratio := float64(value) / float64(max)
	switch {
	case ratio >= 0.66:
		return StyleGreen
	case ratio >= 0.33:
		return StyleYellow
	default:
		return StyleBlue
	}
}
