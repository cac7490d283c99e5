package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// homeDir is where logs, screenshots and the default high score live.
const homeDir = "~/.flappy"

// loadConfig loads and validates the game configuration.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens ~/.flappy/flappy.log for appending.
func openLogFile() (*os.File, error) {
	path, err := flappyPath("flappy.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// flappyPath returns a path under the flappy home directory.
func flappyPath(elem ...string) (string, error) {
	dir, err := config.ExpandHome(homeDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, elem...)...), nil
}

// openStore opens the high score store named by flags or config.
func openStore(cfg config.StorageConfig, logger *log.Logger) (*storage.Store, error) {
	backend, path := cfg.Backend, cfg.Path
	if flagStore != "" {
		backend = flagStore
	}
	if flagStorePath != "" {
		path = flagStorePath
	}

	store, err := storage.Open(backend, path, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("high score store opened", "backend", backend, "path", path)
	return store, nil
}
