package config

import "testing"

func TestScrollSpeedSteps(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{BaseSpeed: 3, StepEvery: 10})

	tests := []struct {
		score, expected int
	}{
		{0, 3},
		{9, 3},
		{10, 4},
		{19, 4},
		{20, 5},
		{105, 13},
		{-4, 3}, // negative scores clamp to zero
	}

	for _, tc := range tests {
		if got := d.ScrollSpeed(tc.score); got != tc.expected {
			t.Errorf("ScrollSpeed(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestScrollSpeedNonDecreasing(t *testing.T) {
	d := NewDifficulty(DefaultFlappyConfig().Difficulty)

	prev := d.ScrollSpeed(0)
	for score := 1; score <= 500; score++ {
		got := d.ScrollSpeed(score)
		if got < prev {
			t.Fatalf("ScrollSpeed(%d) = %d dropped below %d", score, got, prev)
		}
		if got-prev > 1 {
			t.Fatalf("ScrollSpeed(%d) jumped by %d", score, got-prev)
		}
		prev = got
	}
}

func TestNewDifficultyFallbacks(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{})
	if d.ScrollSpeed(0) != 3 {
		t.Errorf("ScrollSpeed(0) = %d, expected fallback base 3", d.ScrollSpeed(0))
	}
	if d.ScrollSpeed(10) != 4 {
		t.Errorf("ScrollSpeed(10) = %d, expected 4 with fallback step", d.ScrollSpeed(10))
	}
}
