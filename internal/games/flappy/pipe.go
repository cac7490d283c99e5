package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is a pair of columns with a gap between them.
// The gap position is fixed when the pipe is created.
type Pipe struct {
	X float64
	W int

	gapY   int
	gap    int
	floorY int
	passed bool
}

// NewPipe creates a pipe at x with a gap drawn uniformly from the legal range.
func NewPipe(x float64, rng *rand.Rand, cfg config.FlappyConfig) Pipe {
	lo, hi := cfg.GapRange()
	return Pipe{
		X:      x,
		W:      cfg.Obstacles.PipeWidth,
		gapY:   lo + rng.Intn(hi-lo+1),
		gap:    cfg.Obstacles.PipeGap,
		floorY: cfg.FloorY(),
	}
}

// GapY returns the top of the gap.
func (p Pipe) GapY() int { return p.gapY }

// Gap returns the gap height.
func (p Pipe) Gap() int { return p.gap }

// Passed reports whether the bird has cleared this pipe.
func (p Pipe) Passed() bool { return p.passed }

// Update scrolls the pipe left.
func (p *Pipe) Update(speed float64) {
	p.X -= speed
}

// Offscreen reports whether the pipe has fully left the world.
func (p Pipe) Offscreen() bool {
	return p.X+float64(p.W) < 0
}

// TopRect is the column from the ceiling down to the gap.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(int(p.X), 0, p.W, p.gapY)
}

// BottomRect is the column from the gap down to the floor.
func (p Pipe) BottomRect() core.Rect {
	top := p.gapY + p.gap
	return core.NewRect(int(p.X), top, p.W, p.floorY-top)
}

// Collides reports whether r overlaps either column.
func (p Pipe) Collides(r core.Rect) bool {
	return r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect())
}

// markPassed flips the passed flag once the pipe's right edge is behind x.
// It returns true only on the tick the flag flips.
func (p *Pipe) markPassed(x float64) bool {
	if p.passed || p.X+float64(p.W) >= x {
		return false
	}
	p.passed = true
	return true
}
