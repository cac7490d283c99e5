package flappy

// Particle is a short-lived spark. It has no effect on the simulation.
type Particle struct {
	X, Y     float64
	Lifetime int

	maxLifetime int
	rise        float64
}

func newParticle(x, y float64, lifetime int, rise float64) Particle {
	return Particle{X: x, Y: y, Lifetime: lifetime, maxLifetime: lifetime, rise: rise}
}

// Update ages the particle and floats it upward.
func (p *Particle) Update() {
	p.Lifetime--
	p.Y -= p.rise
}

// Alive reports whether the particle should still be drawn.
func (p Particle) Alive() bool {
	return p.Lifetime > 0
}

// Alpha returns the remaining life as a fraction in [0, 1].
func (p Particle) Alpha() float64 {
	if p.maxLifetime <= 0 || p.Lifetime <= 0 {
		return 0
	}
	return float64(p.Lifetime) / float64(p.maxLifetime)
}
