// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package filelock implements advisory locks on lock files using flock(2).
//
// A lock file also records who holds it, so that a process failing to take
// the lock can say which process it is waiting for.
package filelock

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
)

// ErrAlreadyLocked is returned by [Acquire] when another open file holds the
// lock.
var ErrAlreadyLocked = errors.New("already locked")

// Lock is a held lock. The zero value is not usable.
type Lock struct {
	path string
	f    *os.File
}

// Acquire takes an exclusive lock on path without blocking and records owner
// in the file.
func Acquire(path, owner string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := flock(f, syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return nil, err
	}
	l := &Lock{path: path, f: f}
	if err := l.writeOwner(owner); err != nil {
		return nil, errors.Join(err, l.Release())
	}
	return l, nil
}

func (l *Lock) writeOwner(owner string) error {
	if err := l.f.Truncate(0); err != nil {
		return err
	}
	_, err := l.f.WriteAt([]byte(owner), 0)
	return err
}

// Path returns the path of the lock file.
func (l *Lock) Path() string { return l.path }

// Release unlocks the file and closes it. Releasing a nil or already released
// lock does nothing.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	f := l.f
	l.f = nil
	return errors.Join(syscall.Flock(int(f.Fd()), syscall.LOCK_UN), f.Close())
}

// Owner returns the owner recorded in the lock file at path.
func Owner(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// IsLocked reports whether path is locked by some open file.
func IsLocked(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	if err := flock(f, syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		return errors.Is(err, ErrAlreadyLocked)
	}
	syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	return false
}

func flock(f *os.File, how int) error {
	err := syscall.Flock(int(f.Fd()), how)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, syscall.EWOULDBLOCK), errors.Is(err, syscall.EAGAIN):
		return ErrAlreadyLocked
	default:
		return fmt.Errorf("flock %s: %w", f.Name(), err)
	}
}
