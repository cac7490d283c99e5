package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newTestModel(t *testing.T, shotDir string) Model {
	t.Helper()
	return NewModel(Options{
		Game:          config.DefaultFlappyConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Theme:         flappy.DefaultTheme(),
		ScreenshotDir: shotDir,
	})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update() returned %T, expected Model", next)
		}
	}
	return m, cmd
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	pauseKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	quitKey  = tea.KeyMsg{Type: tea.KeyEsc}
	tick     = TickMsg(time.Time{})
)

func TestModelStartsOnPrimaryAction(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"space", spaceKey},
		{"click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, "")
			m, _ = send(t, m, tc.msg)
			if m.session.State() != flappy.StateMenu {
				t.Fatal("input should wait for the next tick")
			}
			m, cmd := send(t, m, tick)
			if m.session.State() != flappy.StatePlaying {
				t.Errorf("State() = %s, expected %s", m.session.State(), flappy.StatePlaying)
			}
			if cmd == nil {
				t.Error("tick should schedule the next tick")
			}
		})
	}
}

func TestModelAppliesActionsInOrder(t *testing.T) {
	m := newTestModel(t, "")

	// start, then pause within the same frame
	m, _ = send(t, m, spaceKey, pauseKey, tick)
	if m.session.State() != flappy.StatePaused {
		t.Errorf("State() = %s, expected %s", m.session.State(), flappy.StatePaused)
	}

	// pause first is ignored in the menu, start second
	m = newTestModel(t, "")
	m, _ = send(t, m, pauseKey, spaceKey, tick)
	if m.session.State() != flappy.StatePlaying {
		t.Errorf("State() = %s, expected %s", m.session.State(), flappy.StatePlaying)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, "")
	m, cmd := send(t, m, quitKey)
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = send(t, m, spaceKey, tick, tick, tick)
	before := m.session.Snapshot()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if got := m.session.Snapshot(); got.Tick != before.Tick || got.State != before.State {
		t.Error("resize should not restart the round")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if v := m.canvas.Viewport(); v.H != 39 || v.W != 78 {
		t.Errorf("Viewport() = %+v, expected 78x39", v)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, "")
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Errorf("View() has %d lines, expected 24", len(lines))
	}
	if !strings.Contains(view, "flap") {
		t.Error("View() should include the help footer")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := newTestModel(t, dir)

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Press SPACE or Click to start") {
		t.Errorf("screenshot does not contain the title prompt:\n%s", data)
	}
}
