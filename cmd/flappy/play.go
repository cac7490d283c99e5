package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagEphemeral bool
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Space/Up/W/Click  - Start, flap, restart
  P                 - Pause
  Esc/Q/Ctrl+C      - Quit
  Ctrl+S            - Save a text screenshot to ~/.flappy/screenshots

Examples:
  flappy play
  flappy play --seed 42 --mute
  flappy play --ephemeral
  flappy play --config ./my-flappy.toml`,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep the high score in memory only")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs go to a file.
	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "flappy")

	if flagEphemeral {
		flagStore = "memory"
	}
	store, err := openStore(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagMute {
		cfg.Audio.Enabled = false
	}
	assetDir, err := config.ExpandHome(cfg.Assets.Dir)
	if err != nil {
		return err
	}
	loader := assets.NewLoader(assetDir, logger)
	sound := audio.Open(cfg.Audio, loader, logger)
	defer sound.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	shotDir, err := flappyPath("screenshots")
	if err != nil {
		return err
	}

	logger.Info("starting", "seed", flagSeed, "store", store.Name(), "high_score", store.Load())

	err = tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:         store,
		Sound:         sound,
		Theme:         tui.LoadTheme(loader),
		Logger:        logger,
		ScreenshotDir: shotDir,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
