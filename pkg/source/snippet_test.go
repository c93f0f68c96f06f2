package source

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srcspan/srcspan/pkg/span"
)

func TestExtract(t *testing.T) {
	content := []byte("line one\nline two\nline three\nline four\nline five\n")

	// "three" inside the middle line.
	sp := span.New(23, 28)
	snip := Extract(content, sp, 1)

	assert.Equal(t, "three", string(snip.Matching))
	assert.Equal(t, "line two\nline ", string(snip.Before))
	// The newline terminating the spanned line is skipped, not counted as
	// context.
	assert.Equal(t, "line four\n", string(snip.After))
}

func TestExtract_NoContext(t *testing.T) {
	content := []byte("hello world")
	snip := Extract(content, span.New(6, 11), 0)

	assert.Equal(t, "world", string(snip.Matching))
	assert.Nil(t, snip.Before)
	assert.Nil(t, snip.After)
}

func TestExtract_AtBoundaries(t *testing.T) {
	content := []byte("first\nlast")

	start := Extract(content, span.New(0, 5), 2)
	assert.Equal(t, "first", string(start.Matching))
	assert.Nil(t, start.Before)
	assert.Equal(t, "last", string(start.After))

	end := Extract(content, span.New(6, 10), 2)
	assert.Equal(t, "last", string(end.Matching))
	assert.Equal(t, "first\n", string(end.Before))
	assert.Nil(t, end.After)
}

func TestExtract_CopiesAreIndependent(t *testing.T) {
	content := []byte("aaa bbb ccc")
	snip := Extract(content, span.New(4, 7), 1)

	content[4] = 'X'
	assert.Equal(t, "bbb", string(snip.Matching))
}

func TestExtract_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() {
		Extract([]byte("short"), span.New(0, 99), 1)
	})
}
