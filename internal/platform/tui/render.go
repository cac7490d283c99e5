package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. ColorDefault has no entry
// and leaves the terminal's own color.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorDarkGray:     lipgloss.Color("238"),
	core.ColorSky:          lipgloss.Color("117"),
	core.ColorGround:       lipgloss.Color("180"),
	core.ColorPipe:         lipgloss.Color("28"),
	core.ColorGold:         lipgloss.Color("220"),
	core.ColorSun:          lipgloss.Color("226"),
}

// cellStyle is the part of a cell that needs an escape sequence.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{fg: c.Fg, bg: c.Bg, bold: c.Bold}
}

// lipglossStyle builds the lipgloss style for a cell style.
func (cs cellStyle) lipglossStyle() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(cs.bold)
	if c, ok := palette[cs.fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[cs.bg]; ok {
		st = st.Background(c)
	}
	return st
}

// Renderer converts a Screen buffer to a styled string, caching styles.
type Renderer struct {
	styles map[cellStyle]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellStyle]lipgloss.Style)}
}

func (r *Renderer) style(cs cellStyle) lipgloss.Style {
	st, ok := r.styles[cs]
	if !ok {
		st = cs.lipglossStyle()
		r.styles[cs] = st
	}
	return st
}

// Render groups adjacent cells with the same style to minimise ANSI
// escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
