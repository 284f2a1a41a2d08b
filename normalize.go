package alacs

import (
	"bytes"
	"slices"
)

// Normalize splits every chunk containing LF bytes into one element
// per line, in place, preserving order. The LF bytes themselves are
// dropped, so no element of the result contains an LF and the
// operation is idempotent.
//
// One collapse applies before splitting: a sequence that is exactly
// one empty chunk normalizes to the empty sequence, so "no lines" and
// "a single empty line" converge. (Text values record the difference
// with LongEmpty instead.)
func Normalize(lines [][]byte) [][]byte {
	if len(lines) == 1 && len(lines[0]) == 0 {
		return lines[:0]
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if !bytes.ContainsRune(lines[i], '\n') {
			continue
		}
		parts := bytes.Split(lines[i], []byte{'\n'})
		lines[i] = parts[0]
		lines = slices.Insert(lines, i+1, parts[1:]...)
	}
	return lines
}

// Normalize splits the text's lines at LF bytes, in place.
func (t *Text) Normalize() {
	t.Lines = Normalize(t.Lines)
}

// Normalize splits the comment's lines at LF bytes, in place.
func (c *Comment) Normalize() {
	c.Lines = Normalize(c.Lines)
}
