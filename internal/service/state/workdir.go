package state

import (
	"os"
	"path/filepath"
	"sync"
)

var getwd = os.Getwd

// Workdir guards the process-wide working directory.
//
// The directory itself stays OS state: every front end shares it, so a
// change made on one bridge connection is seen by all others. The lock only
// keeps a Chdir from interleaving with a relative operation in flight.
type Workdir struct {
	mu sync.RWMutex
}

func NewWorkdir() *Workdir {
	return &Workdir{}
}

// Read runs fn while no directory change can happen.
func (w *Workdir) Read(fn func() error) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return fn()
}

// Get returns the absolute current directory.
func (w *Workdir) Get() (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return getwd()
}

// Change sets the current directory and returns the new absolute path.
// On failure the directory is left as it was. Once Chdir succeeds the change
// is reported even if the new directory cannot be read back.
func (w *Workdir) Change(path string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// resolve first: after Chdir a relative path points somewhere else
	target, err := filepath.Abs(path)
	if err != nil {
		target = path
	}
	if err := os.Chdir(path); err != nil {
		return "", err
	}
	dir, err := getwd()
	if err != nil {
		return target, nil
	}
	return dir, nil
}

// Base returns the last component of the current directory, or fallback
// when it cannot be determined.
func (w *Workdir) Base(fallback string) string {
	dir, err := w.Get()
	if err != nil {
		return fallback
	}
	base := filepath.Base(dir)
	if base == "." || base == "" {
		return fallback
	}
	return base
}
