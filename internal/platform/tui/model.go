package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model.
type Options struct {
	Game          config.FlappyConfig
	Runtime       core.RuntimeConfig
	Store         flappy.HighScoreStore
	Sound         flappy.SoundPlayer
	Theme         flappy.Theme
	Logger        *log.Logger
	ScreenshotDir string // empty disables screenshots
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	session    *flappy.Session
	screen     *core.Screen
	canvas     *Canvas
	renderer   *Renderer
	theme      flappy.Theme
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	logger     *log.Logger
	shotDir    string
	lastState  flappy.State
	quitting   bool
}

// NewModel creates a model and its session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	def := core.DefaultConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session := flappy.NewSession(opts.Game, opts.Store, opts.Sound, cfg.Seed)
	screen := core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    session,
		screen:     screen,
		canvas:     NewCanvas(screen, opts.Game.World.Width, opts.Game.World.Height),
		renderer:   NewRenderer(),
		theme:      opts.Theme,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		shotDir:    opts.ScreenshotDir,
		lastState:  session.State(),
	}
}

// playHeight leaves the bottom row for the help footer.
func playHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Set(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick. Quit and screenshots
// act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit && m.session.Handle(action) {
		m.logger.Info("quit", "state", m.session.State(), "score", m.session.Score())
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize rescales the viewport. The world itself is fixed-size, so the
// round in progress carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.canvas.Layout()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds the frame's actions in arrival order, then steps once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, action := range m.inputFrame.Actions() {
		if m.session.Handle(action) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	m.inputFrame.Clear()

	m.session.Tick()
	m.logTransition()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logTransition() {
	state := m.session.State()
	if state == m.lastState {
		return
	}
	switch state {
	case flappy.StateGameOver:
		m.logger.Info("game over", "score", m.session.Score(), "high_score", m.session.HighScore())
	default:
		m.logger.Debug("state changed", "from", m.lastState, "to", state)
	}
	m.lastState = state
}

// draw renders the session into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	flappy.Render(m.canvas, m.session.Snapshot(), m.theme)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.draw()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
