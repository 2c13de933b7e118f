// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package store implements a key-value store kept in memory, in a JSON file
// or in PostgreSQL.
package store

import (
	"context"
	"strings"
)

// Store is a generic interface for a key-value store.
type Store interface {
	// Get retrieves a value for a given key.
	// It must return (nil, nil) if the key is not found.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value for a given key.
	Set(ctx context.Context, key string, value []byte) error
	// Close closes the store and releases any resources.
	Close() error
}

// Open opens the store at location. An empty location opens a [MemStore], a
// postgres:// or postgresql:// URL opens a [PostgresStore] and anything else
// is treated as a path to a [FileStore].
func Open(ctx context.Context, location string) (Store, error) {
	switch {
	case location == "":
		return NewMemStore(), nil
	case strings.HasPrefix(location, "postgres://"), strings.HasPrefix(location, "postgresql://"):
		return NewPostgresStore(ctx, location)
	}
	return NewFileStore(location)
}
