// Package store persists located artifacts - parsed values together with
// their source spans - so parsed output can be handed across a process
// boundary and read back with identical provenance.
package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Store provides persistence for located artifacts.
// This interface abstracts the underlying storage implementation,
// allowing for different backends.
type Store interface {
	// AddArtifact stores one artifact record.
	AddArtifact(a Artifact) error

	// GetArtifacts retrieves artifacts for one document, ordered by span.
	GetArtifacts(document uuid.UUID) ([]Artifact, error)

	// GetAllArtifacts retrieves every artifact, ordered by span.
	GetAllArtifacts() ([]Artifact, error)

	// Count returns the number of stored artifacts.
	Count() (int, error)

	// Close closes the underlying storage.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory store (useful for testing).
	Path string
}

// New creates a new Store. ":memory:" paths get the in-memory backend;
// file paths get SQLite.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}
