package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	lockFileSuffix = ".run.lock"
)

// ErrRunLocked is returned when another bocheck process is driving the browser.
var ErrRunLocked = errors.New("another bocheck run is in progress")

// RunLock is a file-based lock held for the duration of a scrape run.
// The browser tab is a single shared resource, so runs from different
// processes must not overlap.
type RunLock struct {
	lock *flock.Flock
	path string
}

// NewRunLock creates a lock next to the given state store path.
func NewRunLock(storePath string) (*RunLock, error) {
	absPath, err := GetAbsStorePath(storePath)
	if err != nil {
		return nil, fmt.Errorf("could not get absolute store path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("could not create state directory: %w", err)
	}
	lockPath := absPath + lockFileSuffix
	return &RunLock{
		lock: flock.New(lockPath),
		path: lockPath,
	}, nil
}

// TryLock acquires the lock without waiting. Overlapping runs are rejected
// with ErrRunLocked instead of queued.
func (l *RunLock) TryLock() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		return ErrRunLocked
	}
	return nil
}

// Unlock releases the lock.
func (l *RunLock) Unlock() error {
	if err := l.lock.Unlock(); err != nil {
		// Suppress error if the lock file doesn't exist, as it means we don't hold the lock.
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// GetAbsStorePath resolves the state store path.
func GetAbsStorePath(storePath string) (string, error) {
	if storePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "bocheck", "state.sqlite"), nil
	}
	return filepath.Abs(storePath)
}
