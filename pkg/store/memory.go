package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory data structures.
type MemoryStore struct {
	mu        sync.RWMutex
	artifacts []Artifact
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		artifacts: make([]Artifact, 0),
	}
}

// AddArtifact stores one artifact record.
func (m *MemoryStore) AddArtifact(a Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.artifacts = append(m.artifacts, a)
	return nil
}

// GetArtifacts retrieves artifacts for one document, ordered by span.
func (m *MemoryStore) GetArtifacts(document uuid.UUID) ([]Artifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Artifact
	for _, a := range m.artifacts {
		if a.Document.Valid && a.Document.UUID == document {
			out = append(out, a)
		}
	}

	sortArtifacts(out)
	return out, nil
}

// GetAllArtifacts retrieves every artifact, ordered by span.
func (m *MemoryStore) GetAllArtifacts() ([]Artifact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := append([]Artifact{}, m.artifacts...)
	sortArtifacts(out)
	return out, nil
}

// Count returns the number of stored artifacts.
func (m *MemoryStore) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.artifacts), nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

func sortArtifacts(artifacts []Artifact) {
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].less(artifacts[j])
	})
}
