// Package errors defines the error types reported by the alacs codec.
//
// Structural problems found while walking a document are collected as
// PathError values and surfaced as exactly one aggregated failure per
// top-level operation: ParseError from decoding, SerializeError from
// encoding, ConversionError from the generic-data bridge.
package errors

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrIndentUnderflow reports an attempt to step above indent level 0.
// It signals a caller bug (mismatched More/Less calls), not bad input,
// and is raised as a panic rather than returned.
var ErrIndentUnderflow = errors.New("alacs: indent underflow")

// PathError is a single problem found at a specific place in a
// document walk.
type PathError struct {
	// Path is the dotted/bracketed route from the document root,
	// e.g. "servers[2].name". Empty at the root.
	Path string
	// Line is the 1-based line number where the problem was seen,
	// or 0 when no line context applies.
	Line int
	Err  error
}

// Pathf builds a PathError with a formatted cause.
func Pathf(path string, line int, format string, args ...any) *PathError {
	return &PathError{Path: path, Line: line, Err: errors.Errorf(format, args...)}
}

func (e *PathError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "#%d ", e.Line)
	}
	b.WriteString(e.Path)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *PathError) Unwrap() error { return e.Err }

// aggregate renders a header followed by one tab-indented line per
// problem, so a caller sees every complaint in a single failure.
func aggregate(header string, errs []error) string {
	m := &multierror.Error{
		ErrorFormat: func(es []error) string {
			points := make([]string, len(es))
			for i, err := range es {
				points[i] = err.Error()
			}
			return fmt.Sprintf("%s:\n\t%s", header, strings.Join(points, "\n\t"))
		},
	}
	m = multierror.Append(m, errs...)
	return m.Error()
}

// ParseError aggregates every structural problem found during one
// Decode call.
type ParseError struct {
	Errs []error
}

func (e *ParseError) Error() string {
	return aggregate("alacs: parse errors", e.Errs)
}

// SerializeError aggregates every problem found during one Encode
// call. It is only produced for trees holding data outside the closed
// Value set (for example a nil entry built by hand).
type SerializeError struct {
	Errs []error
}

func (e *SerializeError) Error() string {
	return aggregate("alacs: tree contains non-Value data", e.Errs)
}

// ConversionError aggregates every problem found while converting
// between generic Go data and a document tree.
type ConversionError struct {
	Errs []error
}

func (e *ConversionError) Error() string {
	return aggregate("alacs: cannot convert data", e.Errs)
}
