package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/mitchellh/go-ps"

	"manage-updates/internal/logger"
)

// Guard ensures that only one instance of the tool runs at a time.
// It holds an advisory lock on a well-known file for the duration of a run.
type Guard struct {
	// lock is the file lock backing the guard.
	lock *flock.Flock
}

// ErrBusy is returned when another instance already holds the lock.
var ErrBusy = errors.New("another instance is already running")

// New creates a guard over the provided lock file path.
func New(path string) *Guard {
	return &Guard{
		lock: flock.New(filepath.Clean(path)),
	}
}

// Acquire takes the lock without blocking. On contention it logs any live
// process with the same executable name so the operator knows who to wait
// for, then fails with ErrBusy.
func (g *Guard) Acquire(ctx context.Context) error {
	locked, err := g.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}

	if !locked {
		for _, pid := range competingProcesses(ctx) {
			logger.WarnKV(ctx, "competing process holds the run lock", "pid", pid)
		}

		return fmt.Errorf("%w (lock file %s)", ErrBusy, g.lock.Path())
	}

	return nil
}

// Release drops the lock. Safe to call when the lock was never taken.
func (g *Guard) Release() {
	_ = g.lock.Unlock()
}

// competingProcesses returns PIDs of other live processes running the same
// executable as this one.
func competingProcesses(ctx context.Context) []int {
	processList, err := ps.Processes()
	if err != nil {
		logger.Debugf(ctx, "unable to list processes: %v", err)
		return nil
	}

	var (
		executable = filepath.Base(os.Args[0])
		thisPID    = os.Getpid()
		pids       []int
	)

	for _, process := range processList {
		if process.Pid() == thisPID || process.Executable() != executable {
			continue
		}

		pids = append(pids, process.Pid())
	}

	return pids
}
