// Package assets loads optional sprite and sound files with explicit
// fallbacks. A missing or unreadable asset is never an error for the game:
// every load names the value to use instead.
package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Loader resolves asset names against a directory.
// A Loader with an empty Dir resolves nothing and always yields fallbacks.
type Loader struct {
	Dir    string
	Logger *log.Logger
}

// NewLoader creates a loader for dir.
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Dir: dir, Logger: logger}
}

// Path returns the full path of a named asset, or "" if no directory is set.
func (l *Loader) Path(name string) string {
	if l == nil || l.Dir == "" {
		return ""
	}
	return filepath.Join(l.Dir, name)
}

// Load opens the named asset and decodes it, returning fallback on any failure.
func Load[T any](l *Loader, name string, decode func(io.Reader) (T, error), fallback T) T {
	path := l.Path(name)
	if path == "" {
		return fallback
	}

	v, err := OrDefault(path, decode)
	if err != nil {
		if l.Logger != nil {
			l.Logger.Debug("asset unavailable, using fallback", "asset", name, "error", err)
		}
		return fallback
	}
	return v
}

// OrDefault opens path and decodes it.
func OrDefault[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return v, nil
}

// Sprite is a terminal image: one or more frames of text rows drawn in Fg
// over Fill. A sprite with no frames is a solid block of Fill.
type Sprite struct {
	Frames [][]string
	Fg     core.Color
	Fill   core.Color
}

// Solid returns the placeholder sprite: a block of one color.
func Solid(fill core.Color) Sprite {
	return Sprite{Fill: fill}
}

// IsSolid reports whether the sprite has no glyph frames.
func (s Sprite) IsSolid() bool {
	return len(s.Frames) == 0
}

// Frame returns frame i, clamped to the available frames.
func (s Sprite) Frame(i int) []string {
	if s.IsSolid() {
		return nil
	}
	return s.Frames[core.Clamp(i, 0, len(s.Frames)-1)]
}

// frameSeparator splits frames in a sprite file.
const frameSeparator = "---"

// DecodeSprite parses a sprite file: rows of text, frames separated by a
// line containing only "---". Colors are taken from base.
func DecodeSprite(base Sprite) func(io.Reader) (Sprite, error) {
	return func(r io.Reader) (Sprite, error) {
		var frames [][]string
		var current []string

		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := strings.TrimRight(sc.Text(), "\r")
			if strings.TrimSpace(line) == frameSeparator {
				if len(current) > 0 {
					frames = append(frames, current)
				}
				current = nil
				continue
			}
			current = append(current, line)
		}
		if err := sc.Err(); err != nil {
			return Sprite{}, err
		}
		if len(current) > 0 {
			frames = append(frames, current)
		}
		if len(frames) == 0 {
			return Sprite{}, fmt.Errorf("sprite has no frames")
		}

		out := base
		out.Frames = frames
		return out, nil
	}
}

// Sprite loads a named sprite file, keeping fallback's colors.
func (l *Loader) Sprite(name string, fallback Sprite) Sprite {
	return Load(l, name, DecodeSprite(fallback), fallback)
}

// LoadSprite reads a sprite file from path, or returns fallback.
func LoadSprite(path string, fallback Sprite) Sprite {
	s, err := OrDefault(path, DecodeSprite(fallback))
	if err != nil {
		return fallback
	}
	return s
}

// LoadText reads a whole text file from path, or returns fallback.
func LoadText(path, fallback string) string {
	s, err := OrDefault(path, func(r io.Reader) (string, error) {
		b, err := io.ReadAll(r)
		return string(b), err
	})
	if err != nil {
		return fallback
	}
	return s
}
