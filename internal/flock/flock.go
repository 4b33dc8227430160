// Package flock provides an exclusive, cross-process file lock with a
// holder record for diagnostics.
package flock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// DefaultWait bounds how long Lock waits when ctx has no deadline.
const DefaultWait = 500 * time.Millisecond

const (
	pollInitial = 5 * time.Millisecond
	pollMax     = 50 * time.Millisecond
)

// ErrTimeout is wrapped by every TimeoutError.
var ErrTimeout = errors.New("write lock timeout")

// lockHolder is written into the lock file by whoever holds it.
type lockHolder struct {
	PID   int       `json:"pid"`
	Since time.Time `json:"since"`
}

func (h lockHolder) String() string {
	if h.PID == 0 {
		return "unknown"
	}
	s := fmt.Sprintf("pid %d since %s", h.PID, h.Since.Format(time.RFC3339))
	if !isProcessAlive(h.PID) {
		s += " (stale, process exited)"
	}
	return s
}

// TimeoutError reports who held the lock when waiting gave up.
type TimeoutError struct {
	Waited time.Duration
	Holder string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%v after %v (holder: %s)", ErrTimeout, e.Waited.Round(time.Millisecond), e.Holder)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// Lock is an exclusive OS lock on one file. The kernel drops it if the
// process dies.
type Lock struct {
	path string
	f    *os.File
}

// New returns an unlocked Lock on path. The file is created on first use.
func New(path string) *Lock {
	return &Lock{path: path}
}

// Lock polls with backoff until the lock is taken, ctx is done, or
// DefaultWait passes when ctx has no deadline.
func (l *Lock) Lock(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultWait)
		defer cancel()
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	l.f = f

	start := time.Now()
	wait := pollInitial
	for {
		if tryLock(l.f) == nil {
			l.recordHolder()
			return nil
		}

		select {
		case <-ctx.Done():
			holder := l.holder()
			l.f.Close()
			l.f = nil
			return &TimeoutError{Waited: time.Since(start), Holder: holder.String()}
		case <-time.After(wait):
		}
		wait = min(wait*2, pollMax)
	}
}

// Unlock clears the holder record and releases the lock. Safe to call twice.
func (l *Lock) Unlock() {
	if l.f == nil {
		return
	}
	l.f.Truncate(0)
	unlock(l.f)
	l.f.Close()
	l.f = nil
}

func (l *Lock) recordHolder() {
	data, _ := json.Marshal(lockHolder{PID: os.Getpid(), Since: time.Now().UTC()})
	l.f.Truncate(0)
	l.f.WriteAt(data, 0)
	l.f.Sync()
}

func (l *Lock) holder() lockHolder {
	var h lockHolder
	data, err := os.ReadFile(l.path)
	if err != nil || len(data) == 0 {
		return h
	}
	json.Unmarshal(data, &h)
	return h
}
