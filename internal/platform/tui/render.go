package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duckshoot/internal/core"
)

// cellStyle is the color part of a cell; runs of equal styles share one escape sequence.
type cellStyle struct {
	fg, bg       core.RGB
	hasFG, hasBG bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{fg: c.FG, bg: c.BG, hasFG: c.HasFG, hasBG: c.HasBG}
}

// lipglossStyle builds the lipgloss style for a cell style on the given renderer.
func (cs cellStyle) lipglossStyle(r *lipgloss.Renderer) lipgloss.Style {
	style := r.NewStyle()
	if cs.hasFG {
		style = style.Foreground(lipgloss.Color(cs.fg.Hex()))
	}
	if cs.hasBG {
		style = style.Background(lipgloss.Color(cs.bg.Hex()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default renderer for stdout.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := make(map[cellStyle]lipgloss.Style)
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.hasFG && !start.hasBG {
				sb.WriteString(run.String())
				continue
			}

			style, ok := styles[start]
			if !ok {
				style = start.lipglossStyle(r)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
