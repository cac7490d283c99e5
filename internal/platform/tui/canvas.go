package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// boldTextSize is the smallest text size drawn in bold.
const boldTextSize = 36

// Canvas draws world-space shapes onto a Screen. The world is scaled to a
// viewport that fills the screen height and is centred horizontally; a
// terminal cell is about twice as tall as it is wide, so the viewport is
// at most twice the screen height in columns.
type Canvas struct {
	screen *core.Screen
	worldW int
	worldH int

	view   core.Rect // viewport in cells
	sx, sy float64   // cells per world unit
}

// NewCanvas creates a canvas for a world of the given size.
func NewCanvas(screen *core.Screen, worldW, worldH int) *Canvas {
	c := &Canvas{screen: screen, worldW: worldW, worldH: worldH}
	c.Layout()
	return c
}

// Layout recomputes the viewport after the screen is resized.
func (c *Canvas) Layout() {
	w, h := c.screen.Width(), c.screen.Height()
	cols := core.Min(w, 2*h)
	c.view = core.NewRect((w-cols)/2, 0, cols, h)
	if c.worldW > 0 && c.worldH > 0 {
		c.sx = float64(cols) / float64(c.worldW)
		c.sy = float64(h) / float64(c.worldH)
	}
}

// Viewport returns the cell area the world is drawn into.
func (c *Canvas) Viewport() core.Rect {
	return c.view
}

// ToCell converts a world point to the cell containing it.
func (c *Canvas) ToCell(x, y float64) (int, int) {
	return c.view.X + int(math.Floor(x*c.sx)), c.view.Y + int(math.Floor(y*c.sy))
}

// cellRect converts a world rect to cells. Non-empty rects cover at least
// one cell so thin shapes stay visible.
func (c *Canvas) cellRect(r core.Rect) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0, y0 := c.ToCell(float64(r.X), float64(r.Y))
	x1, y1 := c.ToCell(float64(r.Right()), float64(r.Bottom()))
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0).Clip(c.view)
}

// FillRect paints a world rect.
func (c *Canvas) FillRect(r core.Rect, color core.Color) {
	c.screen.FillRect(c.cellRect(r), color)
}

// FillCircle paints every cell whose centre lies inside the circle.
// A circle smaller than a cell paints the cell under its centre.
func (c *Canvas) FillCircle(cx, cy, radius int, color core.Color) {
	if c.sx == 0 || c.sy == 0 {
		return
	}
	bounds := c.cellRect(core.NewRect(cx-radius, cy-radius, 2*radius, 2*radius))
	r2 := float64(radius * radius)

	painted := false
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		wy := (float64(y-c.view.Y)+0.5)/c.sy - float64(cy)
		for x := bounds.X; x < bounds.Right(); x++ {
			wx := (float64(x-c.view.X)+0.5)/c.sx - float64(cx)
			if wx*wx+wy*wy <= r2 {
				c.screen.Paint(x, y, color)
				painted = true
			}
		}
	}
	if !painted {
		x, y := c.ToCell(float64(cx), float64(cy))
		if c.view.Contains(x, y) {
			c.screen.Paint(x, y, color)
		}
	}
}

// DrawSprite paints a sprite into a world rect. Solid sprites fill the rect;
// glyph frames are centred in it over the fill color.
func (c *Canvas) DrawSprite(s assets.Sprite, r core.Rect, frame int) {
	cells := c.cellRect(r)
	c.screen.FillRect(cells, s.Fill)
	if s.IsSolid() || cells.Empty() {
		return
	}

	rows := s.Frame(frame)
	top := cells.Y + (cells.H-len(rows))/2
	for i, row := range rows {
		y := top + i
		if y < cells.Y || y >= cells.Bottom() {
			continue
		}
		left := cells.X + (cells.W-utf8.RuneCountInString(row))/2
		for j, ch := range []rune(row) {
			x := left + j
			if ch == ' ' || x < cells.X || x >= cells.Right() {
				continue
			}
			cell := c.screen.GetCell(x, y)
			cell.Rune = ch
			cell.Fg = s.Fg
			c.screen.SetCell(x, y, cell)
		}
	}
}

// DrawText writes text centred on a world point. Large sizes are bold.
func (c *Canvas) DrawText(text string, size, x, y int, color core.Color) {
	cx, cy := c.ToCell(float64(x), float64(y))
	if cy < c.view.Y || cy >= c.view.Bottom() {
		return
	}
	left := cx - utf8.RuneCountInString(text)/2
	c.screen.DrawText(left, cy, text, color, size >= boldTextSize)
}
