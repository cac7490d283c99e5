package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Coin is a collectible scrolling with the pipes.
type Coin struct {
	X, Y   float64
	Radius int
}

// Update scrolls the coin left.
func (c *Coin) Update(speed float64) {
	c.X -= speed
}

// Offscreen reports whether the coin has fully left the world.
func (c Coin) Offscreen() bool {
	return c.X+float64(c.Radius) < 0
}

// Rect is the square around the coin. Pickup is tested box against box.
func (c Coin) Rect() core.Rect {
	return core.NewRect(int(c.X)-c.Radius, int(c.Y)-c.Radius, 2*c.Radius, 2*c.Radius)
}
