package config

// Difficulty derives the scroll speed from the score.
// Speed rises by one whole step every StepEvery points and never falls.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty rule. Non-positive fields fall back to
// base 3, step 10.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	if cfg.BaseSpeed <= 0 {
		cfg.BaseSpeed = 3
	}
	if cfg.StepEvery <= 0 {
		cfg.StepEvery = 10
	}
	return &Difficulty{cfg: cfg}
}

// ScrollSpeed returns base + floor(score/step).
func (d *Difficulty) ScrollSpeed(score int) int {
	if score < 0 {
		score = 0
	}
	return d.cfg.BaseSpeed + score/d.cfg.StepEvery
}

