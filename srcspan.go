// Package srcspan provides source-location tracking for parser and lexer
// pipelines.
//
// A Span records a half-open byte range [start, end) into a source document,
// optionally tagged with a document identifier. A Spanned[T] pairs any parsed
// value with the Span it came from, so tokens, AST nodes, and diagnostics
// carry provenance back to the original text without the parser managing
// location bookkeeping itself.
//
// # Basic Usage
//
// Wrap tokenizer output in spans and read the covered text back out:
//
//	text := "let answer = 42"
//	sp := srcspan.New(13, 15)
//	token := srcspan.Wrap("42", sp)
//
//	fmt.Println(token.Source(text)) // "42"
//
// Later stages refine the value while provenance survives unchanged:
//
//	number := srcspan.Map(token, func(raw string) int {
//	    n, _ := strconv.Atoi(raw)
//	    return n
//	})
//	fmt.Println(number.Span) // [13:15]
//
// # Multiple Documents
//
// When several source texts are in play, register each with a Registry and
// tag spans with the resulting document ID:
//
//	reg := srcspan.NewRegistry()
//	doc := reg.Add([]byte("hello world"))
//
//	sp := srcspan.New(6, 11).WithDocument(doc)
//	covered, _ := reg.Slice(sp) // "world"
package srcspan

import (
	"github.com/srcspan/srcspan/pkg/source"
	"github.com/srcspan/srcspan/pkg/span"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/srcspan/srcspan" without subpackages.
type (
	// Span is a half-open byte range into a source document.
	Span = span.Span

	// Spanned pairs a parsed value with its source span.
	Spanned[T any] = span.Spanned[T]

	// Marker is a tokenizer position: byte offset plus optional fragment.
	Marker = span.Marker

	// Range is a plain numeric half-open interval.
	Range = span.Range

	// Point is a 1-based line:column position.
	Point = source.Point

	// Snippet contains spanned text with surrounding context lines.
	Snippet = source.Snippet

	// Registry maps document identifiers to their source text.
	Registry = source.Registry
)

// Span constructors, one per external positional representation.
var (
	New            = span.New
	FromMarker     = span.FromMarker
	FromMarkerPair = span.FromMarkerPair
	FromRange      = span.FromRange
	FromOptional   = span.FromOptional

	Unknown             = span.Unknown
	UnknownWithDocument = span.UnknownWithDocument
)

// Source-text helpers for diagnostic rendering collaborators.
var (
	LineColumn  = source.LineColumn
	Position    = source.Position
	Extract     = source.Extract
	NewRegistry = source.NewRegistry
)

// Wrap pairs any value with a span.
func Wrap[T any](item T, s Span) Spanned[T] {
	return span.Wrap(item, s)
}

// WrapUnknown pairs any value with the unknown sentinel span.
func WrapUnknown[T any](item T) Spanned[T] {
	return span.WrapUnknown(item)
}

// Map applies f to a located value's item, preserving its span.
func Map[T, U any](sp Spanned[T], f func(T) U) Spanned[U] {
	return span.Map(sp, f)
}

// CopySpan wraps a replacement value in an existing located value's span.
func CopySpan[T, U any](sp Spanned[T], replacement U) Spanned[U] {
	return span.CopySpan(sp, replacement)
}
