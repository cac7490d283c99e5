package tui

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// BirdSpriteFile is the optional bird sprite in the assets directory.
const BirdSpriteFile = "bird.txt"

// LoadTheme returns the default theme with any sprites found by loader.
func LoadTheme(loader *assets.Loader) flappy.Theme {
	theme := flappy.DefaultTheme()
	theme.Bird = loader.Sprite(BirdSpriteFile, theme.Bird)
	return theme
}
