package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

const lockFileName = "write.lock"

// lockOwner is the payload stored in the lock file.
type lockOwner struct {
	PID        int       `json:"pid"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

// Lock guards a project folder against concurrent writers. The engine
// assumes a single in-process writer; the lock extends that guarantee
// across processes sharing the same workspace. Locks left behind by dead
// processes are reclaimed on the next Acquire.
type Lock struct {
	path string
}

// NewLock creates a lock for the given project directory.
func NewLock(projectDir string) *Lock {
	return &Lock{path: filepath.Join(projectDir, lockFileName)}
}

// Acquire claims the lock. It fails when another live process holds it;
// a lock whose holder is dead, or whose file does not parse, is reclaimed.
func (l *Lock) Acquire() error {
	for attempt := 0; attempt < 2; attempt++ {
		err := l.claim()
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return err
		}

		pid, ok := l.owner()
		if ok && processAlive(pid) {
			return fmt.Errorf("project is open in another process (PID %d)", pid)
		}
		if rmErr := os.Remove(l.path); rmErr != nil && !os.IsNotExist(rmErr) {
			return fmt.Errorf("failed to remove stale lock file: %w", rmErr)
		}
	}
	return fmt.Errorf("lock acquired by another process during retry")
}

// claim atomically creates the lock file and records this process as the
// holder. A bare os.IsExist error means the file was already there.
func (l *Lock) claim() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return err
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	payload, _ := json.Marshal(lockOwner{PID: os.Getpid(), AcquiredAt: time.Now()})
	_, writeErr := f.Write(payload)
	f.Close()
	if writeErr != nil {
		os.Remove(l.path)
		return fmt.Errorf("failed to write lock file: %w", writeErr)
	}
	return nil
}

// owner reads the recorded holder. ok is false when the lock file is
// missing or does not parse.
func (l *Lock) owner() (pid int, ok bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}

	var o lockOwner
	if json.Unmarshal(data, &o) != nil || o.PID <= 0 {
		return 0, false
	}
	return o.PID, true
}

// Release removes the lock file. Releasing an already-released lock is
// not an error.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// IsLocked reports whether a live process holds the lock. A stale or
// unreadable lock file is removed and reported as unlocked.
func (l *Lock) IsLocked() (bool, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return false, nil
	}

	pid, ok := l.owner()
	if ok && processAlive(pid) {
		return true, nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	return false, nil
}

// processAlive checks for a running process with signal 0, which probes
// existence without delivering a signal.
func processAlive(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
