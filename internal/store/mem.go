// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package store

import (
	"context"

	"go.astrophena.name/botapi/internal/util/syncmap"
)

// MemStore is an in-memory implementation of the Store interface.
type MemStore struct {
	m *syncmap.Map[string, []byte]
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{m: syncmap.NewMap[string, []byte]()}
}

// Get retrieves a value for a given key.
func (s *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.m.Load(key)
	if !ok {
		return nil, nil
	}
	// Return a copy to prevent the caller from mutating the store.
	return append([]byte(nil), v...), nil
}

// Set stores a value for a given key.
func (s *MemStore) Set(_ context.Context, key string, value []byte) error {
	s.m.Store(key, append([]byte(nil), value...))
	return nil
}

// Close is a no-op for MemStore.
func (s *MemStore) Close() error { return nil }
