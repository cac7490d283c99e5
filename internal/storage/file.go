package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// FileBackend stores the high score as a plain-text decimal integer.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the file at path.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, errors.New("storage: file backend needs a path")
	}
	return &FileBackend{path: path}, nil
}

// Read parses the file. A missing or blank file is 0.
func (f *FileBackend) Read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score in %s: %w", f.path, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("storage: negative high score %d in %s", v, f.path)
	}
	return v, nil
}

// Write replaces the file through a temporary file and a rename, so a crash
// mid-write leaves either the old or the new value.
func (f *FileBackend) Write(score int) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Record returns the stored score and the file's modification time.
func (f *FileBackend) Record() (int, time.Time, error) {
	score, err := f.Read()
	if err != nil {
		return 0, time.Time{}, err
	}
	info, err := os.Stat(f.path)
	if err != nil {
		return score, time.Time{}, nil
	}
	return score, info.ModTime(), nil
}

// Close is a no-op; the file is only open during Read and Write.
func (f *FileBackend) Close() error {
	return nil
}

func init() {
	registry.Register("file", "plain-text integer file (default)", func(path string) (registry.Backend, error) {
		return NewFileBackend(path)
	})
}
