package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flap/internal/core"
)

// palette maps core colors to terminal colors (ANSI 256).
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
)

func styleFor(c core.Color) lipgloss.Style {
	if fg, ok := palette[c]; ok {
		return lipgloss.NewStyle().Foreground(fg)
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(string(run))
				continue
			}
			style, ok := styles[color]
			if !ok {
				style = styleFor(color)
				styles[color] = style
			}
			sb.WriteString(style.Render(string(run)))
		}
	}
	return sb.String()
}

// renderNotice centres a boxed message in a width x height area.
func renderNotice(width, height int, lines ...string) string {
	box := noticeStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
