package source

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/srcspan/srcspan/pkg/span"
)

// Registry maps document identifiers to their source text, so a span tagged
// with a document can be resolved back to the text it was parsed from when
// multiple documents are in play.
//
// The registry does not load files; callers hand it already-loaded content.
// Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	docs map[uuid.UUID][]byte
}

// NewRegistry creates an empty document registry.
func NewRegistry() *Registry {
	return &Registry{
		docs: make(map[uuid.UUID][]byte),
	}
}

// Add registers content under a fresh document identifier and returns it.
func (r *Registry) Add(content []byte) uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[id] = content

	return id
}

// AddAs registers content under a caller-chosen identifier, replacing any
// previous content for that identifier.
func (r *Registry) AddAs(id uuid.UUID, content []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[id] = content
}

// Get returns the content registered for id.
func (r *Registry) Get(id uuid.UUID) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	content, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("document not registered: %s", id)
	}
	return content, nil
}

// Len returns the number of registered documents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

// Slice resolves sp through its document identifier and returns the covered
// text. Spans without a document or with an unregistered one produce an
// error; a span extending past the end of its document panics, same as
// span.Slice.
func (r *Registry) Slice(sp span.Span) (string, error) {
	if !sp.Document.Valid {
		return "", fmt.Errorf("span %s has no document", sp)
	}

	content, err := r.Get(sp.Document.UUID)
	if err != nil {
		return "", err
	}

	return string(content[sp.Start:sp.End]), nil
}
