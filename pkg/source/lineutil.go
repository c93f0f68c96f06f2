package source

import "github.com/srcspan/srcspan/pkg/span"

// Point is a 1-based line:column position.
type Point struct {
	Line   int
	Column int
}

// LineColumn computes the 1-based line and column for a byte offset in
// content. Offsets past the end of content resolve to the final position.
func LineColumn(content []byte, offset int) (line, column int) {
	line = 1
	column = 1
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Position resolves both endpoints of a span to line:column points, for
// rendering underline ranges in diagnostics.
func Position(content []byte, sp span.Span) (start, end Point) {
	start.Line, start.Column = LineColumn(content, sp.Start)
	end.Line, end.Column = LineColumn(content, sp.End)
	return start, end
}
