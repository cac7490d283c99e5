// Package storage persists the single best-score record.
//
// The record is best-effort: Load never fails (a missing or corrupt record
// reads as zero) and Save never fails (errors are logged and dropped).
// Backends are picked by name from the registry: "file" (plain-text integer),
// "sqlite" (single-row table, pure-Go modernc.org/sqlite) and "memory".
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Store wraps a backend with the high score contract.
// It is safe for concurrent use; the SSH server shares one Store between
// sessions.
type Store struct {
	mu      sync.Mutex
	backend registry.Backend
	logger  *log.Logger
	name    string
}

// Open creates a store using the named backend at path.
// A leading ~ in path is expanded and parent directories are created.
func Open(backend, path string, logger *log.Logger) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	b, err := registry.Open(backend, resolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s backend: %w", backend, err)
	}

	s := New(b, logger)
	s.name = backend
	return s, nil
}

// New wraps an already opened backend.
func New(b registry.Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{backend: b, logger: logger, name: "custom"}
}

// Load returns the stored high score, or 0 if it is absent, unreadable,
// or not a non-negative integer.
func (s *Store) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.backend.Read()
	if err != nil {
		s.logger.Debug("high score unreadable, using 0", "backend", s.name, "error", err)
		return 0
	}
	if v < 0 {
		s.logger.Debug("negative high score ignored", "backend", s.name, "value", v)
		return 0
	}
	return v
}

// Save writes the high score. Failures are logged and otherwise ignored.
func (s *Store) Save(score int) {
	if score < 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Write(score); err != nil {
		s.logger.Warn("could not save high score", "backend", s.name, "score", score, "error", err)
		return
	}
	s.logger.Debug("high score saved", "backend", s.name, "score", score)
}

// recorder is implemented by backends that track when the record changed.
type recorder interface {
	Record() (int, time.Time, error)
}

// LastUpdated returns when the record was last written, if the backend
// tracks it and a record exists.
func (s *Store) LastUpdated() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.backend.(recorder)
	if !ok {
		return time.Time{}, false
	}
	_, at, err := r.Record()
	if err != nil || at.IsZero() {
		return time.Time{}, false
	}
	return at, true
}

// Name returns the backend name the store was opened with.
func (s *Store) Name() string {
	return s.name
}

// Close closes the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

// resolvePath expands ~ and creates the parent directory of a file path.
func resolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	expanded, err := config.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(expanded)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return expanded, nil
}
