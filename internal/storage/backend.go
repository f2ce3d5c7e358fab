// Package storage implements the device-local persistent store.
//
// A Backend is an opaque key-value byte store with last-write-wins semantics
// per key. Storage layers the four logical slots (responses, results,
// preferences, consent) on top of a Backend, decoding each slot into typed
// records at the boundary. Storage never returns persistence errors to its
// callers: failures are logged and the slot reads as empty.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Backend kinds accepted by Open
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unsupported backend kind.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is a durable key-value byte store.
type Backend interface {
	// Get returns the stored bytes and true, or false when the key is absent.
	Get(key string) ([]byte, bool, error)
	// Set stores data under key, replacing any previous value.
	Set(key string, data []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases any resources held by the backend.
	Close() error
}

// Options selects and locates a backend.
type Options struct {
	Kind string // "file", "sqlite" or "memory"
	Path string // Directory for file, database file for sqlite
}

// Open creates the backend described by opts.
func Open(opts Options) (Backend, error) {
	switch strings.ToLower(opts.Kind) {
	case "", KindFile:
		return NewFileBackend(opts.Path)
	case KindSQLite:
		return NewSQLiteBackend(opts.Path)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Kind)
	}
}

// ValidKind reports whether kind names a supported backend.
func ValidKind(kind string) bool {
	switch strings.ToLower(kind) {
	case KindFile, KindSQLite, KindMemory:
		return true
	}
	return false
}
