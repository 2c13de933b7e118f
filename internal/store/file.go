// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.astrophena.name/botapi/internal/atomicio"
	"go.astrophena.name/botapi/internal/filelock"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore is a Store kept in a JSON file. Every Set rewrites the file
// atomically. The file is locked while the store is open, so only one process
// can use it at a time.
type FileStore struct {
	path string
	lock *filelock.Lock

	mu   sync.Mutex
	data map[string][]byte
}

// NewFileStore opens the store at path, creating it if it doesn't exist. It
// returns an error wrapping [filelock.ErrAlreadyLocked] if another process
// has the store open.
func NewFileStore(path string) (*FileStore, error) {
	lock, err := filelock.Acquire(path+".lock", fmt.Sprint(os.Getpid()))
	if errors.Is(err, filelock.ErrAlreadyLocked) {
		if owner, oerr := filelock.Owner(path + ".lock"); oerr == nil && owner != "" {
			return nil, fmt.Errorf("store: %s is in use by process %s: %w", path, owner, err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("store: locking %s: %w", path, err)
	}

	s := &FileStore{path: path, lock: lock, data: make(map[string][]byte)}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		lock.Release()
		return nil, err
	}
	if err := json.Unmarshal(b, &s.data); err != nil {
		lock.Release()
		return nil, fmt.Errorf("store: parsing %s: %w", path, err)
	}
	return s, nil
}

// Get retrieves a value for a given key.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Set stores a value for a given key.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	b, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return atomicio.WriteFile(s.path, b, 0o600)
}

// Close releases the lock on the file.
func (s *FileStore) Close() error { return s.lock.Release() }
