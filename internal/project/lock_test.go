package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeLockFile(t *testing.T, dir string, pid int) string {
	t.Helper()
	path := filepath.Join(dir, lockFileName)
	data, err := json.Marshal(lockOwner{PID: pid, AcquiredAt: time.Now()})
	if err != nil {
		t.Fatalf("failed to marshal lock payload: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to create lock file: %v", err)
	}
	return path
}

func readLockOwner(t *testing.T, dir string) lockOwner {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, lockFileName))
	if err != nil {
		t.Fatalf("failed to read lock file: %v", err)
	}
	var o lockOwner
	if err := json.Unmarshal(data, &o); err != nil {
		t.Fatalf("failed to parse lock file: %v", err)
	}
	return o
}

func TestLock_Acquire_Success(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o := readLockOwner(t, tmpDir)
	if o.PID != os.Getpid() {
		t.Errorf("lock file PID mismatch: got %d, want %d", o.PID, os.Getpid())
	}
	if o.AcquiredAt.IsZero() {
		t.Error("expected acquisition time recorded")
	}
}

func TestLock_Acquire_AlreadyLocked(t *testing.T) {
	tmpDir := t.TempDir()

	// A lock file naming a live process (this one) blocks acquisition.
	writeLockFile(t, tmpDir, os.Getpid())

	lock := NewLock(tmpDir)
	err := lock.Acquire()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.HasPrefix(err.Error(), "project is open in another process") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLock_Acquire_StaleLock(t *testing.T) {
	tmpDir := t.TempDir()

	// PID 99999999 is unlikely to exist.
	writeLockFile(t, tmpDir, 99999999)

	// Acquire should succeed after removing the stale lock.
	lock := NewLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o := readLockOwner(t, tmpDir)
	if o.PID != os.Getpid() {
		t.Errorf("lock file PID mismatch: got %d, want %d", o.PID, os.Getpid())
	}
}

func TestLock_Acquire_InvalidLockFile(t *testing.T) {
	tmpDir := t.TempDir()

	lockPath := filepath.Join(tmpDir, lockFileName)
	if err := os.WriteFile(lockPath, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to create lock file: %v", err)
	}

	// Acquire should succeed after removing the unparseable lock.
	lock := NewLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLock_Release(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewLock(tmpDir)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, lockFileName)); !os.IsNotExist(err) {
		t.Error("expected lock file removed")
	}

	// Release is idempotent.
	if err := lock.Release(); err != nil {
		t.Errorf("expected idempotent release, got %v", err)
	}
}

func TestLock_IsLocked(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewLock(tmpDir)
	locked, err := lock.IsLocked()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locked {
		t.Error("expected unlocked with no lock file")
	}

	if err := lock.Acquire(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	locked, err = lock.IsLocked()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked {
		t.Error("expected locked while held by this process")
	}
}
