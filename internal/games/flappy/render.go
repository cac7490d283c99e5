package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Canvas is a drawing surface in world coordinates.
type Canvas interface {
	FillRect(r core.Rect, c core.Color)
	FillCircle(cx, cy, radius int, c core.Color)
	DrawSprite(s assets.Sprite, r core.Rect, frame int)
	// DrawText draws text centred on (x, y). Size is a nominal point size;
	// surfaces that cannot scale text may only distinguish large from small.
	DrawText(text string, size, x, y int, c core.Color)
}

// Theme holds the colors and sprites used by Render.
type Theme struct {
	Sky       core.Color
	Sun       core.Color
	Ground    core.Color
	Pipe      core.Color
	Coin      core.Color
	CoinShine core.Color
	Spark     core.Color
	SparkDim  core.Color
	Text      core.Color
	Hint      core.Color
	Alert     core.Color

	Bird assets.Sprite
}

// DefaultTheme returns the built-in look: a solid yellow bird.
func DefaultTheme() Theme {
	return Theme{
		Sky:       core.ColorSky,
		Sun:       core.ColorSun,
		Ground:    core.ColorGround,
		Pipe:      core.ColorPipe,
		Coin:      core.ColorGold,
		CoinShine: core.ColorBrightWhite,
		Spark:     core.ColorGold,
		SparkDim:  core.ColorOrange,
		Text:      core.ColorBrightWhite,
		Hint:      core.ColorDarkGray,
		Alert:     core.ColorRed,
		Bird:      assets.Sprite{Fg: core.ColorOrange, Fill: core.ColorYellow},
	}
}

// Bird sprite frames, picked by tilt.
const (
	frameUp = iota
	frameLevel
	frameDown
)

func birdFrame(rotation float64) int {
	switch {
	case rotation > 10:
		return frameUp
	case rotation < -10:
		return frameDown
	default:
		return frameLevel
	}
}

// Render draws one frame of snap onto c.
func Render(c Canvas, snap Snapshot, theme Theme) {
	w, h := snap.Width, snap.Height

	c.FillRect(core.NewRect(0, 0, w, h), theme.Sky)
	c.FillCircle(w-60, 60, 28, theme.Sun)

	for _, p := range snap.Pipes {
		c.FillRect(p.TopRect(), theme.Pipe)
		c.FillRect(p.BottomRect(), theme.Pipe)
	}

	for _, coin := range snap.Coins {
		x, y := int(coin.X), int(coin.Y)
		c.FillCircle(x, y, coin.Radius, theme.Coin)
		c.FillCircle(x-3, y-3, 3, theme.CoinShine)
	}

	for _, p := range snap.Particles {
		if !p.Alive() {
			continue
		}
		color := theme.Spark
		if p.Alpha() < 0.5 {
			color = theme.SparkDim
		}
		c.FillCircle(int(p.X), int(p.Y), 2, color)
	}

	c.FillRect(core.NewRect(0, snap.FloorY, w, h-snap.FloorY), theme.Ground)
	c.DrawSprite(theme.Bird, snap.Bird.Rect(), birdFrame(snap.Bird.Rotation))

	renderHUD(c, snap, theme)
}

func renderHUD(c Canvas, snap Snapshot, theme Theme) {
	cx, h := snap.Width/2, snap.Height

	switch snap.State {
	case StateMenu:
		c.DrawText("Flappy - Pro", 36, cx, h/3, theme.Text)
		c.DrawText("Press SPACE or Click to start", 20, cx, h/2, theme.Text)
		c.DrawText(fmt.Sprintf("High score: %d", snap.HighScore), 20, cx, h/2+40, theme.Text)
		c.DrawText("P to pause, ESC to quit", 14, cx, h-20, theme.Hint)
	case StatePlaying:
		c.DrawText(fmt.Sprint(snap.Score), 48, cx, 60, theme.Text)
	case StatePaused:
		c.DrawText(fmt.Sprint(snap.Score), 48, cx, 60, theme.Text)
		c.DrawText("Paused - Press P to resume", 24, cx, h/2, theme.Alert)
	case StateGameOver:
		c.DrawText("Game Over", 42, cx, h/3, theme.Text)
		c.DrawText(fmt.Sprintf("Score: %d", snap.Score), 28, cx, h/2, theme.Text)
		c.DrawText(fmt.Sprintf("High Score: %d", snap.HighScore), 22, cx, h/2+40, theme.Text)
		c.DrawText("Press SPACE or Click to restart", 18, cx, h/2+100, theme.Text)
	}
}
