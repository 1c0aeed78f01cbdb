package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// colorStyles maps semantic color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true), // firm green
	core.ColorGood:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBad:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorExit:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),

	core.ColorPieceBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorPieceGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPieceOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorPieceMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorPieceLime:    lipgloss.NewStyle().Foreground(lipgloss.Color("154")),
	core.ColorPieceCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorPieceRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorPiecePurple:  lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
