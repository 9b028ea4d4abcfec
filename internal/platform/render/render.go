// Package render turns a core.Screen into terminal text, colored with
// lipgloss styles when color is enabled.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Lines converts every row of s to a string. With color disabled the rows
// are plain text.
func Lines(s *core.Screen, color bool) []string {
	if !color {
		return s.Lines()
	}

	lines := make([]string, s.Height())
	for y := range s.Height() {
		lines[y] = styledRow(s, y)
	}
	return lines
}

// Screen renders s as a single string with rows joined by "\n".
func Screen(s *core.Screen, color bool) string {
	return strings.Join(Lines(s, color), "\n")
}

// styledRow groups adjacent cells with the same color to minimize ANSI
// escape sequences.
func styledRow(s *core.Screen, y int) string {
	var sb strings.Builder
	sb.Grow(s.Width() * 2)

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
	return sb.String()
}
