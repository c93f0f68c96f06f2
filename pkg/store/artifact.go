package store

import (
	"github.com/google/uuid"

	"github.com/srcspan/srcspan/pkg/span"
)

// Artifact is one persisted parsed value with its provenance: the document it
// came from, the byte range it covers, a caller-defined kind, and the value's
// text form. Field values round-trip exactly through any backend.
type Artifact struct {
	Document uuid.NullUUID `json:"document"`
	Start    int           `json:"start"`
	End      int           `json:"end"`
	Kind     string        `json:"kind"`
	Text     string        `json:"text"`
}

// FromSpanned builds an artifact from a located value.
func FromSpanned(kind string, sp span.Spanned[string]) Artifact {
	return Artifact{
		Document: sp.Span.Document,
		Start:    sp.Span.Start,
		End:      sp.Span.End,
		Kind:     kind,
		Text:     sp.Item,
	}
}

// Span reconstructs the artifact's source span.
func (a Artifact) Span() span.Span {
	return span.Span{Start: a.Start, End: a.End, Document: a.Document}
}

// Spanned reconstructs the artifact as a located value.
func (a Artifact) Spanned() span.Spanned[string] {
	return span.NewSpanned(a.Text, a.Span())
}

// less orders artifacts by (Start, End, Document, Kind, Text) so reads replay
// deterministically.
func (a Artifact) less(b Artifact) bool {
	if c := a.Span().Compare(b.Span()); c != 0 {
		return c < 0
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Text < b.Text
}
