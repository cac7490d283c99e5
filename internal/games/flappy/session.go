package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the session's phase.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StatePaused   State = "paused" // reported by Snapshot only; pausing is a flag over playing
	StateGameOver State = "gameover"
)

// HighScoreStore persists the best score. Both calls are best-effort.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

// SoundPlayer plays fire-and-forget cues.
type SoundPlayer interface {
	Play(cue core.Cue)
}

// Offsets past the right edge of the first pipe on the title screen and
// at the start of a round.
const (
	menuPipeOffset  = 150
	roundPipeOffset = 200
)

type nopStore struct{}

func (nopStore) Load() int { return 0 }
func (nopStore) Save(int)  {}

type nopSound struct{}

func (nopSound) Play(core.Cue) {}

// Session owns the whole game world and runs the state machine.
// It is not safe for concurrent use; the platform drives it from one loop.
type Session struct {
	cfg        config.FlappyConfig
	difficulty *config.Difficulty
	rng        *rand.Rand
	store      HighScoreStore
	sound      SoundPlayer

	state     State
	paused    bool
	score     int
	highScore int
	lockout   int
	tick      uint64

	bird      Bird
	pipes     []Pipe
	coins     []Coin
	particles []Particle
}

// NewSession creates a session in the menu, with the title world behind it.
// The high score is loaded once here. A nil store or sound player is
// replaced by a no-op.
func NewSession(cfg config.FlappyConfig, store HighScoreStore, sound SoundPlayer, seed int64) *Session {
	if store == nil {
		store = nopStore{}
	}
	if sound == nil {
		sound = nopSound{}
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficulty(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		store:      store,
		sound:      sound,
		state:      StateMenu,
		highScore:  store.Load(),
	}

	w := float64(cfg.World.Width)
	spacing := float64(cfg.Obstacles.PipeSpacing)
	s.bird = NewBird(cfg)
	s.pipes = []Pipe{
		NewPipe(w+menuPipeOffset, s.rng, cfg),
		NewPipe(w+menuPipeOffset+spacing, s.rng, cfg),
	}
	return s
}

// State returns the current phase, reporting StatePaused while paused.
func (s *Session) State() State {
	if s.state == StatePlaying && s.paused {
		return StatePaused
	}
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int { return s.highScore }

// Handle applies one input event. It returns true when the program should exit.
func (s *Session) Handle(action core.Action) (quit bool) {
	switch action {
	case core.ActionJump:
		s.primary()
	case core.ActionPause:
		if s.state == StatePlaying {
			s.paused = !s.paused
		}
	case core.ActionQuit:
		return true
	}
	return false
}

func (s *Session) primary() {
	switch s.state {
	case StateMenu, StateGameOver:
		s.reset()
		s.lockout = s.cfg.Session.LockoutTicks
	case StatePlaying:
		if s.lockout == 0 && !s.paused {
			s.bird.Flap()
			s.sound.Play(core.CueFlap)
		}
	}
}

// reset starts a fresh round.
func (s *Session) reset() {
	w := float64(s.cfg.World.Width)
	spacing := float64(s.cfg.Obstacles.PipeSpacing)

	s.bird = NewBird(s.cfg)
	s.pipes = s.pipes[:0]
	for i := range 2 {
		s.pipes = append(s.pipes, NewPipe(w+float64(i)*spacing+roundPipeOffset, s.rng, s.cfg))
	}
	s.coins = nil
	s.particles = nil
	s.score = 0
	s.state = StatePlaying
	s.paused = false
}

// Speed returns the current scroll speed.
func (s *Session) Speed() int {
	return s.difficulty.ScrollSpeed(s.score)
}

// Tick advances the world by one fixed step. Outside of unpaused play it
// does nothing.
func (s *Session) Tick() {
	if s.state != StatePlaying || s.paused {
		return
	}
	s.tick++

	if s.lockout > 0 {
		s.lockout--
	}
	s.bird.Update()

	speed := float64(s.Speed())
	s.spawn()

	s.pipes = advance(s.pipes, func(p *Pipe) bool { p.Update(speed); return !p.Offscreen() })
	s.coins = advance(s.coins, func(c *Coin) bool { c.Update(speed); return !c.Offscreen() })
	s.particles = advance(s.particles, func(p *Particle) bool { p.Update(); return p.Alive() })

	box := s.bird.Rect()
	hit := false
	for i := range s.pipes {
		p := &s.pipes[i]
		if p.Collides(box) {
			hit = true
		}
		if p.markPassed(s.bird.X) {
			s.score++
			s.sound.Play(core.CueScore)
		}
	}

	s.coins = advance(s.coins, func(c *Coin) bool {
		if !box.Intersects(c.Rect()) {
			return true
		}
		s.collect(*c)
		return false
	})

	if s.bird.Y+float64(s.bird.H) >= float64(s.cfg.FloorY()) || s.bird.Y <= 0 {
		hit = true
	}

	if hit {
		s.gameOver()
	}
}

// spawn appends a pipe, and maybe a coin in its gap, once the last pipe has
// scrolled far enough in.
func (s *Session) spawn() {
	w := s.cfg.World.Width
	if n := len(s.pipes); n > 0 && s.pipes[n-1].X >= float64(w-s.cfg.Obstacles.PipeSpacing) {
		return
	}

	x := float64(w + s.cfg.Obstacles.SpawnOffset)
	p := NewPipe(x, s.rng, s.cfg)
	s.pipes = append(s.pipes, p)

	if s.rng.Float64() < s.cfg.Coins.Chance {
		inset := s.cfg.Coins.GapInset
		lo, hi := p.GapY()+inset, p.GapY()+p.Gap()-inset
		s.coins = append(s.coins, Coin{
			X:      x,
			Y:      float64(lo + s.rng.Intn(hi-lo+1)),
			Radius: s.cfg.Coins.Radius,
		})
	}
}

func (s *Session) collect(c Coin) {
	s.score += s.cfg.Coins.Bonus
	pc := s.cfg.Particles
	for range pc.Burst {
		s.particles = append(s.particles, newParticle(c.X, c.Y, pc.Lifetime, pc.Rise))
	}
	s.sound.Play(core.CueCoin)
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.sound.Play(core.CueHit)
	if s.score > s.highScore {
		s.highScore = s.score
		s.store.Save(s.highScore)
	}
}

// advance runs step on every element and keeps those it reports as live,
// preserving order. The slice is filtered in place.
func advance[T any](items []T, step func(*T) bool) []T {
	live := items[:0]
	for i := range items {
		if step(&items[i]) {
			live = append(live, items[i])
		}
	}
	clear(items[len(live):])
	return live
}
