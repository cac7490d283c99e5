package flappy

// Snapshot is a read-only copy of the session for renderers and tests.
// Mutating it has no effect on the session.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	HighScore int
	Lockout   int
	Speed     int

	Width  int
	Height int
	FloorY int

	Bird      Bird
	Pipes     []Pipe
	Coins     []Coin
	Particles []Particle
}

// Snapshot returns the current world.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		State:     s.State(),
		Score:     s.score,
		HighScore: s.highScore,
		Lockout:   s.lockout,
		Speed:     s.Speed(),
		Width:     s.cfg.World.Width,
		Height:    s.cfg.World.Height,
		FloorY:    s.cfg.FloorY(),
		Bird:      s.bird,
		Pipes:     append([]Pipe(nil), s.pipes...),
		Coins:     append([]Coin(nil), s.coins...),
		Particles: append([]Particle(nil), s.particles...),
	}
}
