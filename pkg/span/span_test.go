package span

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	s := New(10, 20)
	assert.Equal(t, 10, s.Start)
	assert.Equal(t, 20, s.End)
	assert.False(t, s.Document.Valid)
}

func TestFromMarker(t *testing.T) {
	tests := []struct {
		name      string
		marker    Marker
		wantStart int
		wantEnd   int
	}{
		{
			name:      "marker with fragment",
			marker:    Marker{Offset: 4, Fragment: "world"},
			wantStart: 4,
			wantEnd:   9,
		},
		{
			name:      "marker without fragment",
			marker:    Marker{Offset: 7},
			wantStart: 7,
			wantEnd:   7,
		},
		{
			name:      "marker at start of input",
			marker:    Marker{Offset: 0, Fragment: "let"},
			wantStart: 0,
			wantEnd:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromMarker(tt.marker)
			assert.Equal(t, tt.wantStart, s.Start)
			assert.Equal(t, tt.wantEnd, s.End)
			assert.False(t, s.Document.Valid)
		})
	}
}

func TestFromMarkerPair(t *testing.T) {
	start := Marker{Offset: 3, Fragment: "foo"}
	end := Marker{Offset: 11, Fragment: "ignored"}

	s := FromMarkerPair(start, end)
	assert.Equal(t, 3, s.Start)
	assert.Equal(t, 11, s.End)
	assert.False(t, s.Document.Valid)
}

func TestFromRange(t *testing.T) {
	s := FromRange(Range{Start: 5, End: 9})
	assert.Equal(t, 5, s.Start)
	assert.Equal(t, 9, s.End)
	assert.False(t, s.Document.Valid)
}

func TestFromOptional(t *testing.T) {
	known := New(2, 8)
	assert.Equal(t, known, FromOptional(&known))
	assert.Equal(t, Unknown(), FromOptional(nil))
}

func TestUnknown(t *testing.T) {
	s := Unknown()
	assert.True(t, s.IsUnknown())
	assert.Equal(t, Unknown(), s)
	assert.False(t, s.Document.Valid)
}

func TestUnknownWithDocument(t *testing.T) {
	doc := uuid.New()
	s := UnknownWithDocument(doc)

	// Still the unknown sentinel, but tagged to a document.
	assert.True(t, s.IsUnknown())
	require.True(t, s.Document.Valid)
	assert.Equal(t, doc, s.Document.UUID)
}

func TestIsUnknown_ZeroLengthElsewhere(t *testing.T) {
	// A zero-length span away from offset 0 is a real position.
	assert.False(t, New(5, 5).IsUnknown())
}

func TestSlice(t *testing.T) {
	s := New(6, 11)
	assert.Equal(t, "world", s.Slice("hello world"))
}

func TestSlice_FullAndEmpty(t *testing.T) {
	text := "hello"
	assert.Equal(t, "hello", New(0, 5).Slice(text))
	assert.Equal(t, "", New(3, 3).Slice(text))
}

func TestSlice_OutOfRangePanics(t *testing.T) {
	// A span past the end of the text means the caller paired the span with
	// the wrong document. This must fail hard, never truncate.
	s := New(0, 100)
	assert.Panics(t, func() {
		s.Slice("short")
	})
}

func TestWithStart(t *testing.T) {
	doc := uuid.New()
	s := New(10, 20).WithDocument(doc)

	narrowed := s.WithStart(15)
	assert.Equal(t, 15, narrowed.Start)
	assert.Equal(t, 20, narrowed.End)
	require.True(t, narrowed.Document.Valid)
	assert.Equal(t, doc, narrowed.Document.UUID)

	// Original is unchanged.
	assert.Equal(t, 10, s.Start)
}

func TestWithEnd(t *testing.T) {
	doc := uuid.New()
	s := New(10, 20).WithDocument(doc)

	widened := s.WithEnd(30)
	assert.Equal(t, 10, widened.Start)
	assert.Equal(t, 30, widened.End)
	require.True(t, widened.Document.Valid)
	assert.Equal(t, doc, widened.Document.UUID)

	// Original is unchanged.
	assert.Equal(t, 20, s.End)
}

func TestUnion(t *testing.T) {
	doc := uuid.New()
	a := New(5, 10).WithDocument(doc)
	b := New(8, 20)

	u := a.Union(b)
	assert.Equal(t, 5, u.Start)
	assert.Equal(t, 20, u.End)
	require.True(t, u.Document.Valid)
	assert.Equal(t, doc, u.Document.UUID)

	// Union with a contained span is a no-op.
	assert.Equal(t, a, a.Union(New(6, 7)))
}

func TestLenAndContains(t *testing.T) {
	s := New(4, 9)
	assert.Equal(t, 5, s.Len())
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(8))
	assert.False(t, s.Contains(9)) // half-open: end is excluded
	assert.False(t, s.Contains(3))
}

func TestCompare(t *testing.T) {
	docA := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	docB := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	tests := []struct {
		name string
		a, b Span
		want int
	}{
		{"start orders first", New(1, 9), New(2, 3), -1},
		{"end breaks start ties", New(1, 3), New(1, 9), -1},
		{"equal spans", New(1, 3), New(1, 3), 0},
		{"no document sorts before any document", New(1, 3), New(1, 3).WithDocument(docA), -1},
		{"documents order by bytes", New(1, 3).WithDocument(docA), New(1, 3).WithDocument(docB), -1},
		{"equal tagged spans", New(1, 3).WithDocument(docA), New(1, 3).WithDocument(docA), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestCompare_SortsDiagnosticsDeterministically(t *testing.T) {
	spans := []Span{New(9, 12), New(2, 8), New(2, 4), Unknown()}
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Compare(spans[j]) < 0
	})

	assert.Equal(t, []Span{Unknown(), New(2, 4), New(2, 8), New(9, 12)}, spans)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[6:11]", New(6, 11).String())

	doc := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	assert.Equal(t,
		"[6:11@11111111-1111-1111-1111-111111111111]",
		New(6, 11).WithDocument(doc).String())
}

func TestJSONRoundTrip(t *testing.T) {
	doc := uuid.New()

	tests := []struct {
		name string
		span Span
	}{
		{"without document", New(6, 11)},
		{"with document", New(6, 11).WithDocument(doc)},
		{"unknown", Unknown()},
		{"unknown with document", UnknownWithDocument(doc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.span)
			require.NoError(t, err)

			var decoded Span
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.span, decoded)
		})
	}
}

func TestJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(New(6, 11))
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":6,"end":11,"document":null}`, string(data))
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := uuid.New()

	tests := []struct {
		name string
		span Span
	}{
		{"without document", New(6, 11)},
		{"with document", New(6, 11).WithDocument(doc)},
		{"unknown", Unknown()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := yaml.Marshal(tt.span)
			require.NoError(t, err)

			var decoded Span
			require.NoError(t, yaml.Unmarshal(data, &decoded))
			assert.Equal(t, tt.span, decoded)
		})
	}
}

func TestYAMLRejectsBadDocument(t *testing.T) {
	var s Span
	err := yaml.Unmarshal([]byte("start: 1\nend: 2\ndocument: not-a-uuid\n"), &s)
	assert.Error(t, err)
}
