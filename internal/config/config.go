// Package config provides YAML/TOML game configuration loading and
// the scroll-speed rule for the game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
// Every length is in world units; every rate is per tick.
type FlappyConfig struct {
	World      FlappyWorld      `yaml:"world" toml:"world"`
	Physics    FlappyPhysics    `yaml:"physics" toml:"physics"`
	Player     FlappyPlayer     `yaml:"player" toml:"player"`
	Obstacles  FlappyObstacles  `yaml:"obstacles" toml:"obstacles"`
	Coins      FlappyCoins      `yaml:"coins" toml:"coins"`
	Particles  FlappyParticles  `yaml:"particles" toml:"particles"`
	Session    FlappySession    `yaml:"session" toml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage" toml:"storage"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Assets     AssetsConfig     `yaml:"assets" toml:"assets"`
}

// FlappyWorld defines the playfield.
type FlappyWorld struct {
	Width       int `yaml:"width" toml:"width"`
	Height      int `yaml:"height" toml:"height"`
	FloorHeight int `yaml:"floor_height" toml:"floor_height"`
}

// FlappyPhysics defines bird motion constants.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	FlapStrength float64 `yaml:"flap_strength" toml:"flap_strength"` // negative = up
	TiltFactor   float64 `yaml:"tilt_factor" toml:"tilt_factor"`
	MinTilt      float64 `yaml:"min_tilt" toml:"min_tilt"`
	MaxTilt      float64 `yaml:"max_tilt" toml:"max_tilt"`
}

// FlappyPlayer defines the bird's box.
type FlappyPlayer struct {
	X      int `yaml:"x" toml:"x"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	PipeWidth    int     `yaml:"pipe_width" toml:"pipe_width"`
	PipeGap      int     `yaml:"pipe_gap" toml:"pipe_gap"`
	PipeSpacing  int     `yaml:"pipe_spacing" toml:"pipe_spacing"`
	TopRatio     float64 `yaml:"top_ratio" toml:"top_ratio"`         // lowest gap top as a fraction of world height
	BottomMargin int     `yaml:"bottom_margin" toml:"bottom_margin"` // clearance between gap and floor
	SpawnOffset  int     `yaml:"spawn_offset" toml:"spawn_offset"`   // spawn x past the right edge
}

// FlappyCoins defines collectible parameters.
type FlappyCoins struct {
	Radius   int     `yaml:"radius" toml:"radius"`
	Bonus    int     `yaml:"bonus" toml:"bonus"`
	Chance   float64 `yaml:"chance" toml:"chance"`
	GapInset int     `yaml:"gap_inset" toml:"gap_inset"`
}

// FlappyParticles defines the coin pickup burst.
type FlappyParticles struct {
	Lifetime int     `yaml:"lifetime" toml:"lifetime"`
	Burst    int     `yaml:"burst" toml:"burst"`
	Rise     float64 `yaml:"rise" toml:"rise"`
}

// FlappySession defines session-level timings.
type FlappySession struct {
	LockoutTicks int `yaml:"lockout_ticks" toml:"lockout_ticks"`
}

// DifficultyConfig parameterises the single linear scroll-speed rule.
type DifficultyConfig struct {
	BaseSpeed int `yaml:"base_speed" toml:"base_speed"`
	StepEvery int `yaml:"step_every" toml:"step_every"` // +1 speed every N points
}

// StorageConfig selects the high score backend.
type StorageConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // "file", "sqlite" or "memory"
	Path    string `yaml:"path" toml:"path"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Synth   bool    `yaml:"synth" toml:"synth"`   // synthesise cues whose WAV file is missing
	Volume  float64 `yaml:"volume" toml:"volume"` // beep volume exponent, 0 = unchanged
}

// AssetsConfig points at optional sprite and sound files.
type AssetsConfig struct {
	Dir string `yaml:"dir" toml:"dir"`
}

// FloorY returns the world y of the ground surface.
func (c FlappyConfig) FloorY() int {
	return c.World.Height - c.World.FloorHeight
}

// GapRange returns the inclusive range a pipe's gap top is drawn from.
func (c FlappyConfig) GapRange() (lo, hi int) {
	lo = int(float64(c.World.Height) * c.Obstacles.TopRatio)
	hi = c.FloorY() - c.Obstacles.PipeGap - c.Obstacles.BottomMargin
	return lo, hi
}

// Validate reports configurations the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.FloorHeight < 0 || c.World.FloorHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("floor_height %d out of range", c.World.FloorHeight))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Obstacles.PipeWidth <= 0 || c.Obstacles.PipeGap <= 0 {
		errs = append(errs, errors.New("pipe_width and pipe_gap must be positive"))
	}
	if lo, hi := c.GapRange(); lo < 0 || hi < lo {
		errs = append(errs, fmt.Errorf("empty gap range [%d, %d]", lo, hi))
	}
	if c.Coins.Radius <= 0 || c.Coins.Bonus < 0 {
		errs = append(errs, errors.New("coin radius must be positive and bonus non-negative"))
	}
	if c.Coins.Chance < 0 || c.Coins.Chance > 1 {
		errs = append(errs, fmt.Errorf("coin chance %.2f outside [0, 1]", c.Coins.Chance))
	}
	if 2*c.Coins.GapInset > c.Obstacles.PipeGap {
		errs = append(errs, fmt.Errorf("coin gap_inset %d leaves no room in a %d gap", c.Coins.GapInset, c.Obstacles.PipeGap))
	}
	if c.Particles.Lifetime <= 0 || c.Particles.Burst < 0 {
		errs = append(errs, errors.New("particle lifetime must be positive and burst non-negative"))
	}
	if c.Session.LockoutTicks < 0 {
		errs = append(errs, errors.New("lockout_ticks must be non-negative"))
	}
	if c.Difficulty.BaseSpeed <= 0 || c.Difficulty.StepEvery <= 0 {
		errs = append(errs, errors.New("base_speed and step_every must be positive"))
	}
	if c.Physics.MinTilt > c.Physics.MaxTilt {
		errs = append(errs, errors.New("min_tilt exceeds max_tilt"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
