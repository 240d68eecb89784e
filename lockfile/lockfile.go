// Package lockfile prevents two instances of the tool from running at
// the same time using an advisory file lock.
//
// The kernel releases an advisory lock automatically when its holder
// exits, so a lock left behind by a dead process never blocks a new
// run. The holder's pid is written into the file purely for
// diagnostics.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
)

// Lock is an advisory single-instance lock.
type Lock struct {
	path string
	fl   *flock.Flock
}

// New creates a lock for the given path. The lock is not held until
// Acquire succeeds.
func New(path string) *Lock {
	return &Lock{
		path: path,
		fl:   flock.New(path),
	}
}

// Acquire takes the lock without blocking. When another live process
// holds it, the error names that process's pid if it recorded one.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", l.path, err)
	}
	if !ok {
		if pid := l.holderPid(); pid != 0 {
			return fmt.Errorf("another instance is already running (pid %d, lock %s)", pid, l.path)
		}
		return fmt.Errorf("another instance is already running (lock %s)", l.path)
	}

	if err := os.WriteFile(l.path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o644); err != nil {
		l.fl.Unlock()
		return fmt.Errorf("failed to record pid in lock file: %w", err)
	}
	return nil
}

// Release drops the lock and removes the file. Safe to call on a lock
// that was never acquired.
func (l *Lock) Release() {
	if !l.fl.Locked() {
		return
	}
	_ = l.fl.Unlock()
	_ = os.Remove(l.path)
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

func (l *Lock) holderPid() int {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
