package assets

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestSpriteFallbacks(t *testing.T) {
	fallback := Solid(core.ColorYellow)

	tests := []struct {
		name   string
		loader *Loader
	}{
		{"nil loader", nil},
		{"no directory", NewLoader("", nil)},
		{"missing file", NewLoader(t.TempDir(), nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Load(tc.loader, "bird.txt", DecodeSprite(fallback), fallback)
			if !got.IsSolid() || got.Fill != core.ColorYellow {
				t.Errorf("expected the solid yellow fallback, got %+v", got)
			}
		})
	}
}

func TestSpriteEmptyFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "bird.txt", "---\n---\n")

	got := NewLoader(dir, nil).Sprite("bird.txt", Solid(core.ColorRed))
	if !got.IsSolid() || got.Fill != core.ColorRed {
		t.Errorf("a sprite file with no frames should fall back, got %+v", got)
	}
}

func TestSpriteFrames(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "bird.txt", "/o>\r\n---\n-o>\n---\n\\o>\n")

	base := Sprite{Fg: core.ColorOrange, Fill: core.ColorYellow}
	got := NewLoader(dir, nil).Sprite("bird.txt", base)

	if len(got.Frames) != 3 {
		t.Fatalf("len(Frames) = %d, expected 3", len(got.Frames))
	}
	if got.Frame(0)[0] != "/o>" {
		t.Errorf("Frame(0) = %q, expected CR stripped", got.Frame(0))
	}
	if got.Frame(-4)[0] != "/o>" || got.Frame(99)[0] != "\\o>" {
		t.Error("Frame() should clamp out-of-range indexes")
	}
	if got.Fg != core.ColorOrange || got.Fill != core.ColorYellow {
		t.Error("decoded sprite should keep the fallback's colors")
	}
}

func TestOrDefaultWrapsDecodeError(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "x.txt", "data")

	boom := errors.New("boom")
	_, err := OrDefault(filepath.Join(dir, "x.txt"), func(io.Reader) (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Errorf("OrDefault() error = %v, expected to wrap the decode error", err)
	}

	v, err := OrDefault(filepath.Join(dir, "x.txt"), func(r io.Reader) (string, error) {
		b, err := io.ReadAll(r)
		return strings.ToUpper(string(b)), err
	})
	if err != nil || v != "DATA" {
		t.Errorf("OrDefault() = (%q, %v), expected (\"DATA\", nil)", v, err)
	}
}

func TestLoadHelpers(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "title.txt", "FLAPPY")
	writeAsset(t, dir, "bird.txt", ">o")

	if got := LoadText(filepath.Join(dir, "title.txt"), "x"); got != "FLAPPY" {
		t.Errorf("LoadText() = %q, expected %q", got, "FLAPPY")
	}
	if got := LoadText(filepath.Join(dir, "nope.txt"), "x"); got != "x" {
		t.Errorf("LoadText() = %q, expected fallback %q", got, "x")
	}

	s := LoadSprite(filepath.Join(dir, "bird.txt"), Solid(core.ColorYellow))
	if s.IsSolid() || s.Frame(0)[0] != ">o" {
		t.Errorf("LoadSprite() = %+v, expected one frame", s)
	}
	if !LoadSprite("", Solid(core.ColorYellow)).IsSolid() {
		t.Error("LoadSprite(\"\") should return the fallback")
	}
}
