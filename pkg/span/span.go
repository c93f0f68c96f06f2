package span

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Span is a byte range [Start, End) - half-open interval - into a source
// document. Document identifies which source text the range refers to and
// may be absent when only one document is in play.
//
// Spans are plain values: every transformation returns a new Span and the
// receiver is never modified.
type Span struct {
	Start    int           `json:"start"`
	End      int           `json:"end"`
	Document uuid.NullUUID `json:"document"`
}

// Marker is a single point in source text as produced by a tokenizer: a byte
// offset plus, optionally, the text fragment starting there.
type Marker struct {
	Offset   int
	Fragment string
}

// Range is a plain numeric half-open interval, for callers whose tokenizer
// exposes raw offsets without fragments.
type Range struct {
	Start int
	End   int
}

// New creates a Span from a start/end offset pair, with no document.
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// FromMarker creates a Span covering a marker's captured fragment:
// [m.Offset, m.Offset+len(m.Fragment)).
func FromMarker(m Marker) Span {
	return Span{Start: m.Offset, End: m.Offset + len(m.Fragment)}
}

// FromMarkerPair creates a Span stretching from the start marker's offset to
// the end marker's offset. Fragments are ignored.
func FromMarkerPair(start, end Marker) Span {
	return Span{Start: start.Offset, End: end.Offset}
}

// FromRange creates a Span from a numeric half-open range, with no document.
func FromRange(r Range) Span {
	return Span{Start: r.Start, End: r.End}
}

// FromOptional creates a Span from a possibly-absent one.
// A nil input yields the unknown sentinel.
func FromOptional(s *Span) Span {
	if s == nil {
		return Unknown()
	}
	return *s
}

// Unknown returns the sentinel span used when no real source position is
// available, e.g. for values synthesized rather than parsed.
func Unknown() Span {
	return Span{}
}

// UnknownWithDocument returns the unknown sentinel tagged to a document, for
// cases where the document is known but the offset is not yet determined.
func UnknownWithDocument(doc uuid.UUID) Span {
	return Span{Document: uuid.NullUUID{UUID: doc, Valid: true}}
}

// IsUnknown reports whether the span carries the unknown sentinel offsets.
// This is a heuristic: a genuine zero-length range at the start of a document
// is indistinguishable from a synthesized value.
func (s Span) IsUnknown() bool {
	return s.Start == 0 && s.End == 0
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the byte at offset falls inside [Start, End).
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Slice returns the substring of source covered by [Start, End).
// The source must be the exact document this span was derived from; a span
// extending past the end of source panics rather than silently truncating,
// since a clamped result would corrupt downstream diagnostics.
func (s Span) Slice(source string) string {
	return source[s.Start:s.End]
}

// WithStart returns a copy with the start offset replaced.
// End and Document are preserved.
func (s Span) WithStart(start int) Span {
	s.Start = start
	return s
}

// WithEnd returns a copy with the end offset replaced.
// Start and Document are preserved.
func (s Span) WithEnd(end int) Span {
	s.End = end
	return s
}

// WithDocument returns a copy tagged to the given document.
func (s Span) WithDocument(doc uuid.UUID) Span {
	s.Document = uuid.NullUUID{UUID: doc, Valid: true}
	return s
}

// Union returns the smallest span covering both s and other, keeping s's
// document. Used to widen a reported range to a containing construct.
func (s Span) Union(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// Compare orders spans lexicographically by (Start, End, Document), so
// diagnostics sort deterministically by position. A span without a document
// sorts before any span with one. Returns -1, 0, or 1.
func (s Span) Compare(other Span) int {
	if s.Start != other.Start {
		if s.Start < other.Start {
			return -1
		}
		return 1
	}
	if s.End != other.End {
		if s.End < other.End {
			return -1
		}
		return 1
	}
	if s.Document.Valid != other.Document.Valid {
		if !s.Document.Valid {
			return -1
		}
		return 1
	}
	if !s.Document.Valid {
		return 0
	}
	return bytes.Compare(s.Document.UUID[:], other.Document.UUID[:])
}

// String implements Stringer.
func (s Span) String() string {
	if s.Document.Valid {
		return fmt.Sprintf("[%d:%d@%s]", s.Start, s.End, s.Document.UUID)
	}
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// yamlSpan mirrors Span for YAML, where uuid.NullUUID has no native
// representation.
type yamlSpan struct {
	Start    int     `yaml:"start"`
	End      int     `yaml:"end"`
	Document *string `yaml:"document"`
}

// MarshalYAML implements yaml.Marshaler.
// Field names match the JSON form; an absent document encodes as null.
func (s Span) MarshalYAML() (interface{}, error) {
	out := yamlSpan{Start: s.Start, End: s.End}
	if s.Document.Valid {
		doc := s.Document.UUID.String()
		out.Document = &doc
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Span) UnmarshalYAML(node *yaml.Node) error {
	var in yamlSpan
	if err := node.Decode(&in); err != nil {
		return err
	}

	*s = Span{Start: in.Start, End: in.End}
	if in.Document != nil {
		doc, err := uuid.Parse(*in.Document)
		if err != nil {
			return fmt.Errorf("invalid document id: %w", err)
		}
		s.Document = uuid.NullUUID{UUID: doc, Valid: true}
	}
	return nil
}
