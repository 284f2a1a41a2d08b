package alacs

import (
	"bytes"

	alacserrors "github.com/KimNorgaard/go-alacs/errors"
	"github.com/KimNorgaard/go-alacs/internal/indent"
)

// Decode parses data into a File.
//
// Parsing is best-effort: structural problems (unrecognized lines,
// missing or misplaced keys, excessive indentation) are recorded with
// their path and line number and parsing continues, so one call
// reports every problem in the input. If any problem was recorded the
// returned error is a *errors.ParseError and the File is nil.
//
// The returned tree aliases data; callers that mutate the input
// buffer afterwards must copy first.
func Decode(data []byte) (*File, error) {
	d := &decoder{src: data, level: indent.New()}
	f := &File{}
	d.readLine(true)
	f.Hashbang = d.readComment()
	d.readDict(&f.Dict)
	f.After = d.trailing
	if len(data) > 0 && data[len(data)-1] != '\n' {
		d.errs = append(d.errs, alacserrors.Pathf("", d.count, "missing trailing newline"))
	}
	if len(d.errs) > 0 {
		return nil, &alacserrors.ParseError{Errs: d.errs}
	}
	return f, nil
}

// decoder is the per-call cursor state: the remaining input, the
// current line with its leading-tab count, the 1-based line counter,
// and the indent chain.
type decoder struct {
	src      []byte
	next     int
	line     []byte
	tabs     int
	count    int
	eof      bool
	level    *indent.Level
	trailing *Comment
	errs     []error
}

func (d *decoder) recordf(format string, args ...any) {
	d.errs = append(d.errs, alacserrors.Pathf(d.level.Keys(), d.count, format, args...))
}

// load pulls the next raw line into d.line and counts its leading
// tabs. It returns false at end of input.
func (d *decoder) load() bool {
	if d.next >= len(d.src) {
		d.eof = true
		d.line = nil
		d.tabs = 0
		return false
	}
	if i := bytes.IndexByte(d.src[d.next:], '\n'); i < 0 {
		d.line = d.src[d.next:]
		d.next = len(d.src)
	} else {
		d.line = d.src[d.next : d.next+i]
		d.next += i + 1
	}
	d.tabs = 0
	for d.tabs < len(d.line) && d.line[d.tabs] == '\t' {
		d.tabs++
	}
	d.count++
	return true
}

// readLine advances to the next line. With limit set, lines indented
// deeper than the current level have no opener to belong to; they are
// recorded once per contiguous run as excessive indent and skipped.
// Text bodies and comment continuations advance without the limit.
func (d *decoder) readLine(limit bool) bool {
	excess := 0
	for {
		if !d.load() {
			if excess > 0 {
				d.recordf("excessive indent from line %d", excess)
			}
			return false
		}
		if !limit || d.tabs <= d.level.Depth() {
			if excess > 0 {
				d.recordf("excessive indent from line %d", excess)
			}
			return true
		}
		if excess == 0 {
			excess = d.count
		}
	}
}

// readKey extracts the key between the leading tabs and the trailing
// marker (drop bytes wide). A zero-width span means a keyless entry.
func (d *decoder) readKey(drop int) *Key {
	if len(d.line) == d.tabs+drop {
		return nil
	}
	return &Key{Name: string(d.line[d.tabs : len(d.line)-drop])}
}

// readComment consumes one comment block at the current level: a '#'
// line at exactly the level, plus every following strictly-deeper
// line as a continuation with its marker tab stripped. Returns nil
// when the current line starts no comment.
func (d *decoder) readComment() *Comment {
	depth := d.level.Depth()
	if d.eof || d.tabs != depth || len(d.line) <= depth || d.line[depth] != '#' {
		return nil
	}
	c := &Comment{Line: d.count}
	c.Lines = append(c.Lines, d.line[depth+1:])
	for d.readLine(false) && d.tabs > depth {
		c.Lines = append(c.Lines, d.line[depth+1:])
	}
	return c
}

// readText consumes every line indented at least to the current level
// verbatim, stripping exactly the level's tabs. A body of exactly one
// empty line collapses to zero lines with LongEmpty set.
func (d *decoder) readText(t *Text) {
	depth := d.level.Depth()
	for !d.eof && d.tabs >= depth {
		t.Lines = append(t.Lines, d.line[depth:])
		if !d.readLine(false) {
			break
		}
	}
	if len(t.Lines) == 1 && len(t.Lines[0]) == 0 {
		t.Lines = nil
		t.LongEmpty = true
	}
}

func (d *decoder) readList(l *List) {
	depth := d.level.Depth()
	if d.eof || d.tabs != depth {
		return
	}
	l.Intro = d.readComment()
	for !d.eof && d.tabs == depth {
		// A value's trailing comment is consumed with the value, and
		// list entries have no before-comment slot, so a block here
		// has nothing to attach to.
		if c := d.readComment(); c != nil {
			d.errs = append(d.errs, alacserrors.Pathf(d.level.Keys(), c.Line, "dangling comment"))
			continue
		}
		key, value := d.readValue(len(l.Values))
		if key != nil {
			d.recordf("key not allowed in List: %s", key.Name)
		} else if value != nil {
			l.Values = append(l.Values, value)
		}
	}
}

func (d *decoder) readDict(dict *Dict) {
	depth := d.level.Depth()
	if d.eof || d.tabs != depth {
		return
	}
	dict.Intro = d.readComment()
	for !d.eof && d.tabs == depth {
		before := d.readComment()
		if before != nil && (d.eof || d.tabs != depth) {
			// The block is followed by nothing at this level. At the
			// root it is the file's trailing comment; in a nested
			// body there is no anchor left for it.
			if depth == 0 {
				d.trailing = before
			} else {
				d.errs = append(d.errs, alacserrors.Pathf(d.level.Keys(), before.Line, "dangling comment"))
			}
			break
		}
		key, value := d.readValue(-1)
		if key == nil {
			d.recordf("key required in Dict")
		} else if value != nil {
			key.Before = before
			// the later value wins and the first key survives, but a
			// duplicate can never re-encode to the same bytes
			if dict.Get(key.Name) != nil {
				d.recordf("duplicate key")
			}
			dict.put(key, value)
		}
	}
}

// readValue parses one entry: the opener line's last byte selects the
// kind ('>' Text, "[]" List, ':' Dict), the span before the marker is
// the key, and the body is parsed one level deeper. An unrecognized
// line is recorded, skipped and substituted with an empty Text so
// parsing continues. The value's trailing comment, back at this
// level, is consumed with it.
func (d *decoder) readValue(index int) (*Key, Value) {
	start := d.count
	var last byte
	if len(d.line) > d.tabs {
		last = d.line[len(d.line)-1]
	}
	var key *Key
	var value Value
	switch {
	case last == '>':
		key = d.readKey(1)
		d.setPathKey(key, index)
		d.level = d.level.More()
		d.readLine(false)
		text := &Text{}
		d.readText(text)
		value = text
		d.level = d.level.Less()
	case last == ']' && len(d.line) >= d.tabs+2 && d.line[len(d.line)-2] == '[':
		key = d.readKey(2)
		d.setPathKey(key, index)
		d.level = d.level.More()
		d.readLine(true)
		list := &List{}
		d.readList(list)
		value = list
		d.level = d.level.Less()
	case last == ':':
		key = d.readKey(1)
		d.setPathKey(key, index)
		d.level = d.level.More()
		d.readLine(true)
		dict := &Dict{}
		d.readDict(dict)
		value = dict
		d.level = d.level.Less()
	default:
		d.recordf("unrecognized line")
		d.readLine(true)
		return nil, &Text{}
	}
	value.meta().Line = start
	value.meta().After = d.readComment()
	return key, value
}

func (d *decoder) setPathKey(key *Key, index int) {
	if key != nil {
		d.level.SetKey(key.Name)
	} else {
		d.level.SetIndex(index)
	}
}
