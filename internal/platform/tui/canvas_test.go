package tui

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestCanvasLayout(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		expected core.Rect
	}{
		{"wide terminal is letterboxed", 100, 20, core.NewRect(30, 0, 40, 20)},
		{"narrow terminal uses full width", 30, 40, core.NewRect(0, 0, 30, 40)},
		{"exact fit", 80, 40, core.NewRect(0, 0, 80, 40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(core.NewScreen(tc.w, tc.h), 400, 640)
			if got := c.Viewport(); got != tc.expected {
				t.Errorf("Viewport() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestCanvasScalesRects(t *testing.T) {
	screen := core.NewScreen(40, 64)
	c := NewCanvas(screen, 400, 640) // 10 world units per cell each way

	c.FillRect(core.NewRect(100, 540, 50, 100), core.ColorGround)

	for y := range 64 {
		for x := range 40 {
			inside := x >= 10 && x < 15 && y >= 54
			if got := screen.GetCell(x, y).Bg == core.ColorGround; got != inside {
				t.Fatalf("cell (%d, %d) painted = %v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestCanvasThinRectStaysVisible(t *testing.T) {
	screen := core.NewScreen(40, 64)
	c := NewCanvas(screen, 400, 640)

	c.FillRect(core.NewRect(0, 0, 3, 3), core.ColorPipe)
	if screen.GetCell(0, 0).Bg != core.ColorPipe {
		t.Error("a rect smaller than a cell should still paint one cell")
	}

	c.FillRect(core.NewRect(0, 0, 0, 30), core.ColorRed)
	if screen.GetCell(0, 0).Bg != core.ColorPipe {
		t.Error("an empty rect should paint nothing")
	}
}

func TestCanvasClipsToViewport(t *testing.T) {
	screen := core.NewScreen(100, 20)
	c := NewCanvas(screen, 400, 640)

	c.FillRect(core.NewRect(350, 0, 200, 640), core.ColorPipe)
	if screen.GetCell(75, 5).Bg == core.ColorPipe {
		t.Error("a pipe past the world's right edge was drawn into the letterbox")
	}
	if screen.GetCell(69, 5).Bg != core.ColorPipe {
		t.Error("the visible part of the pipe was not drawn")
	}
}

func TestCanvasCircle(t *testing.T) {
	screen := core.NewScreen(40, 64)
	c := NewCanvas(screen, 400, 640)

	c.FillCircle(200, 320, 30, core.ColorGold)
	if screen.GetCell(20, 32).Bg != core.ColorGold {
		t.Error("circle centre not painted")
	}
	if screen.GetCell(16, 28).Bg == core.ColorGold {
		t.Error("corner of the bounding box should be outside the circle")
	}

	c.FillCircle(5, 5, 1, core.ColorSun)
	if screen.GetCell(0, 0).Bg != core.ColorSun {
		t.Error("a circle smaller than a cell should paint the cell under its centre")
	}
}

func TestCanvasText(t *testing.T) {
	screen := core.NewScreen(40, 64)
	c := NewCanvas(screen, 400, 640)

	c.DrawText("Game Over", 42, 200, 213, core.ColorBrightWhite)
	if got := screen.Row(21); got[16:25] != "Game Over" {
		t.Errorf("Row(21) = %q, expected centred text", got)
	}
	if !screen.GetCell(16, 21).Bold {
		t.Error("large text should be bold")
	}

	c.DrawText("hint", 14, 200, 100, core.ColorDarkGray)
	if screen.GetCell(18, 10).Bold {
		t.Error("small text should not be bold")
	}
}

func TestCanvasSprite(t *testing.T) {
	screen := core.NewScreen(40, 64)
	c := NewCanvas(screen, 400, 640)
	r := core.NewRect(100, 100, 50, 30) // cells x 10..14, y 10..12

	c.DrawSprite(assets.Solid(core.ColorYellow), r, 0)
	if screen.GetCell(12, 11).Bg != core.ColorYellow || screen.GetCell(12, 11).Rune != ' ' {
		t.Error("solid sprite should fill its box")
	}

	s := assets.Sprite{Frames: [][]string{{">o>"}, {"v"}}, Fg: core.ColorOrange, Fill: core.ColorYellow}
	c.DrawSprite(s, r, 0)
	if got := screen.Row(11)[10:15]; got != " >o> " {
		t.Errorf("sprite row = %q, expected %q", got, " >o> ")
	}
	if cell := screen.GetCell(12, 11); cell.Fg != core.ColorOrange || cell.Bg != core.ColorYellow {
		t.Errorf("sprite cell = %+v, expected orange on yellow", cell)
	}

	c.DrawSprite(s, r, 1)
	if got := screen.Row(11)[10:15]; got != "  v  " {
		t.Errorf("frame 1 row = %q, expected %q", got, "  v  ")
	}
}
