package span

// Spanned pairs a value with the Span it was parsed from, so tokens, AST
// nodes, and diagnostics carry provenance back to the original text.
//
// The pair is immutable as a unit: transformations produce a new Spanned
// rather than modifying the item in place.
type Spanned[T any] struct {
	Span Span `json:"span"`
	Item T    `json:"item"`
}

// NewSpanned pairs an item with a span.
func NewSpanned[T any](item T, s Span) Spanned[T] {
	return Spanned[T]{Span: s, Item: item}
}

// Wrap pairs any value with a span. Equivalent to NewSpanned; provided so
// parsing code can wrap values of any type without the type opting in.
func Wrap[T any](item T, s Span) Spanned[T] {
	return Spanned[T]{Span: s, Item: item}
}

// WrapUnknown pairs any value with the unknown sentinel span, for values
// synthesized rather than parsed.
func WrapUnknown[T any](item T) Spanned[T] {
	return Spanned[T]{Span: Unknown(), Item: item}
}

// WithSpan re-tags the same item with a different span, discarding the old
// one. Used to widen a value's provenance to a containing construct.
func (sp Spanned[T]) WithSpan(s Span) Spanned[T] {
	return Spanned[T]{Span: s, Item: sp.Item}
}

// Source returns the source text covered by the item's span.
// Same contract as Span.Slice: mismatched source panics.
func (sp Spanned[T]) Source(source string) string {
	return sp.Span.Slice(source)
}

// Map applies f to the item, carrying the span over unchanged. Later parsing
// stages refine a token into richer structures while the original provenance
// survives every stage.
func Map[T, U any](sp Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{Span: sp.Span, Item: f(sp.Item)}
}

// CopySpan wraps a replacement value in the same span, discarding the current
// item. Used when synthesizing a related value that should be blamed on the
// same source range.
func CopySpan[T, U any](sp Spanned[T], replacement U) Spanned[U] {
	return Spanned[U]{Span: sp.Span, Item: replacement}
}
