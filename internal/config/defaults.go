package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:       400,
			Height:      640,
			FloorHeight: 100,
		},
		Physics: FlappyPhysics{
			Gravity:      0.45,
			FlapStrength: -9.5,
			TiltFactor:   3,
			MinTilt:      -25,
			MaxTilt:      90,
		},
		Player: FlappyPlayer{
			X:      80,
			Width:  34,
			Height: 24,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    70,
			PipeGap:      150,
			PipeSpacing:  150,
			TopRatio:     0.2,
			BottomMargin: 20,
			SpawnOffset:  20,
		},
		Coins: FlappyCoins{
			Radius:   10,
			Bonus:    5,
			Chance:   0.5,
			GapInset: 20,
		},
		Particles: FlappyParticles{
			Lifetime: 30,
			Burst:    5,
			Rise:     1,
		},
		Session: FlappySession{
			LockoutTicks: 10,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed: 3,
			StepEvery: 10,
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    "~/.flappy/highscore.txt",
		},
		Audio: AudioConfig{
			Enabled: true,
			Synth:   true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
