// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps in a stream of pipes, collecting
// coins on the way. The simulation runs in fixed world units and knows
// nothing about terminals; see Render for the drawing side.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player's kinematic body. X never changes.
type Bird struct {
	X, Y     float64
	Vel      float64 // positive = falling
	W, H     int
	Rotation float64 // degrees, positive = nose up

	phys config.FlappyPhysics
}

// NewBird places a bird at rest, vertically centred in the world.
func NewBird(cfg config.FlappyConfig) Bird {
	return Bird{
		X:    float64(cfg.Player.X),
		Y:    float64(cfg.World.Height/2 - cfg.Player.Height/2),
		W:    cfg.Player.Width,
		H:    cfg.Player.Height,
		phys: cfg.Physics,
	}
}

// Flap replaces the velocity with the flap impulse.
func (b *Bird) Flap() {
	b.Vel = b.phys.FlapStrength
}

// Update integrates one tick: velocity first, then position.
func (b *Bird) Update() {
	b.Vel += b.phys.Gravity
	b.Y += b.Vel
	b.Rotation = core.ClampF(-b.Vel*b.phys.TiltFactor, b.phys.MinTilt, b.phys.MaxTilt)
}

// Rect returns the collision box.
func (b Bird) Rect() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}
