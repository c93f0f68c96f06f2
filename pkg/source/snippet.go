package source

import "github.com/srcspan/srcspan/pkg/span"

// Snippet contains the text covered by a span along with surrounding lines of
// context, for rendering a source excerpt in a diagnostic.
type Snippet struct {
	Before   []byte // lines before the span
	Matching []byte // the spanned content
	After    []byte // lines after the span
}

// Extract returns a snippet for sp with up to contextLines lines of
// surrounding context. The returned slices are independent copies, not
// sub-slices of content, so storing a snippet does not pin the whole document
// in memory. A span extending past the end of content panics, same as
// span.Slice.
func Extract(content []byte, sp span.Span, contextLines int) Snippet {
	snip := Snippet{
		Matching: append([]byte{}, content[sp.Start:sp.End]...),
	}

	if contextLines <= 0 {
		return snip
	}

	if b := linesBefore(content, sp.Start, contextLines); len(b) > 0 {
		snip.Before = append([]byte{}, b...)
	}
	if a := linesAfter(content, sp.End, contextLines); len(a) > 0 {
		snip.After = append([]byte{}, a...)
	}

	return snip
}

// linesBefore finds up to n complete lines ending just before offset.
// Walks backward counting newlines.
func linesBefore(content []byte, offset, n int) []byte {
	if offset == 0 {
		return nil
	}

	pos := offset - 1
	found := 0

	for pos >= 0 {
		if content[pos] == '\n' {
			found++
			if found == n {
				// Continue backward to the start of the nth line.
				for pos > 0 {
					pos--
					if content[pos] == '\n' {
						return content[pos+1 : offset]
					}
				}
				return content[0:offset]
			}
		}
		pos--
	}

	return content[0:offset]
}

// linesAfter finds up to n complete lines starting just after offset.
// Walks forward counting newlines.
func linesAfter(content []byte, offset, n int) []byte {
	if offset >= len(content) {
		return nil
	}

	// A newline at the offset belongs to the spanned line, skip it.
	start := offset
	if content[offset] == '\n' {
		start = offset + 1
		if start >= len(content) {
			return nil
		}
	}

	pos := start
	found := 0

	for pos < len(content) {
		if content[pos] == '\n' {
			found++
			if found == n {
				return content[start : pos+1]
			}
		}
		pos++
	}

	return content[start:]
}
