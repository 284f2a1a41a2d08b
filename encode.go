package alacs

import (
	"bytes"

	alacserrors "github.com/KimNorgaard/go-alacs/errors"
	"github.com/KimNorgaard/go-alacs/internal/indent"
)

// Encode renders f as canonical bytes, the exact inverse of Decode:
// re-encoding a decoded tree reproduces the original input byte for
// byte, and re-decoding the output reproduces the tree (Line fields
// aside).
//
// Values outside the closed set (nil values, nil keys, foreign Value
// implementations) are recorded with their path and aggregated into a
// *errors.SerializeError; they can only occur in trees built by hand.
// Encoding stamps every node's Line and normalizes Text and Comment
// lines in place; the tree is otherwise untouched.
func Encode(f *File) ([]byte, error) {
	if f == nil {
		return nil, &alacserrors.SerializeError{
			Errs: []error{alacserrors.Pathf("", 0, "file is nil")},
		}
	}
	e := &encoder{level: indent.New(), count: 1}
	e.writeComment(f.Hashbang)
	e.writeDict(&f.Dict)
	e.writeComment(f.After)
	if len(e.errs) > 0 {
		return nil, &alacserrors.SerializeError{Errs: e.errs}
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf   bytes.Buffer
	level *indent.Level
	count int
	errs  []error
}

func (e *encoder) recordf(format string, args ...any) {
	e.errs = append(e.errs, alacserrors.Pathf(e.level.Keys(), e.count, format, args...))
}

// writeLine emits one line: indent, optional key, marker, data, LF.
// Data must be normalized; an embedded LF would corrupt the line
// structure, so it panics as a contract breach.
func (e *encoder) writeLine(key *Key, marker string, data []byte) {
	e.buf.Write(e.level.Tabs())
	if key != nil {
		e.buf.WriteString(key.Name)
	}
	e.buf.WriteString(marker)
	if bytes.IndexByte(data, '\n') >= 0 {
		panic("alacs: normalized line contains LF")
	}
	e.buf.Write(data)
	e.buf.WriteByte('\n')
	e.count++
}

// writeComment emits one comment block at the current level: a bare
// '#' for an empty comment, '#' plus the first line, then one
// tab-marked continuation line per remaining line.
func (e *encoder) writeComment(c *Comment) {
	if c == nil {
		return
	}
	c.Line = e.count
	c.Normalize()
	switch len(c.Lines) {
	case 0:
		e.writeLine(nil, "#", nil)
	case 1:
		e.writeLine(nil, "#", c.Lines[0])
	default:
		e.writeLine(nil, "#", c.Lines[0])
		for _, line := range c.Lines[1:] {
			e.writeLine(nil, "\t", line)
		}
	}
}

func (e *encoder) writeText(t *Text) {
	t.Normalize()
	if t.LongEmpty && len(t.Lines) == 0 {
		e.writeLine(nil, "", nil)
		return
	}
	for _, line := range t.Lines {
		e.writeLine(nil, "", line)
	}
}

func (e *encoder) writeList(l *List) {
	e.writeComment(l.Intro)
	for i, value := range l.Values {
		e.level.SetIndex(i)
		e.writeValue(nil, value)
	}
}

func (e *encoder) writeDict(dict *Dict) {
	e.writeComment(dict.Intro)
	for i := range dict.Entries {
		entry := &dict.Entries[i]
		if entry.Key == nil {
			e.recordf("key is nil")
			continue
		}
		e.level.SetKey(entry.Key.Name)
		e.writeComment(entry.Key.Before)
		e.writeValue(entry.Key, entry.Value)
	}
}

// writeValue emits one entry: the opener line at the current level,
// the body one level deeper, then the value's trailing comment back
// at this level. Line is stamped from the counter before the opener.
func (e *encoder) writeValue(key *Key, value Value) {
	switch v := value.(type) {
	case *Text:
		if v == nil {
			e.recordf("value is nil")
			return
		}
		v.Line = e.count
		e.writeLine(key, ">", nil)
		e.level = e.level.More()
		e.writeText(v)
		e.level = e.level.Less()
	case *List:
		if v == nil {
			e.recordf("value is nil")
			return
		}
		v.Line = e.count
		e.writeLine(key, "[]", nil)
		e.level = e.level.More()
		e.writeList(v)
		e.level = e.level.Less()
	case *Dict:
		if v == nil {
			e.recordf("value is nil")
			return
		}
		v.Line = e.count
		e.writeLine(key, ":", nil)
		e.level = e.level.More()
		e.writeDict(v)
		e.level = e.level.Less()
	case *File:
		// a nested File encodes as its dict
		if v == nil {
			e.recordf("value is nil")
			return
		}
		v.Line = e.count
		e.writeLine(key, ":", nil)
		e.level = e.level.More()
		e.writeDict(&v.Dict)
		e.level = e.level.Less()
	case nil:
		e.recordf("value is nil")
		return
	default:
		e.recordf("value is %T", value)
		return
	}
	e.writeComment(value.meta().After)
}
