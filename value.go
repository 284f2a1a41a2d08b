package alacs

// Meta holds the bookkeeping shared by every Value. Line is the
// 1-based line number of the value's opener as of the most recent
// Encode or Decode pass; it is diagnostic only and never read back by
// the codec. After is the comment block following the value's body,
// if any.
//
// Meta is exported so trees can be compared structurally (for example
// with go-cmp, ignoring Line), but the Value interface it implements
// is closed: only the types in this package satisfy it directly, and
// foreign types that embed Meta are rejected by Encode.
type Meta struct {
	Line  int
	After *Comment
}

func (m *Meta) meta() *Meta { return m }

// Value is one node of a document tree: *Text, *List or *Dict.
// (*File also satisfies it through its embedded Dict.)
type Value interface {
	meta() *Meta
}

// Comment is a block of comment lines attached to a document node.
// Lines holds the text with the leading '#' and marker tabs stripped;
// it is normalized (no LF bytes) by Encode before emission. Line is
// diagnostic, like Meta.Line.
type Comment struct {
	Lines [][]byte
	Line  int
}

// NewComment builds a comment from string lines.
func NewComment(lines ...string) *Comment {
	c := &Comment{}
	for _, l := range lines {
		c.Lines = append(c.Lines, []byte(l))
	}
	return c
}

// Text is a leaf value: zero or more lines of opaque bytes.
//
// A Text with no lines normally renders as nothing after its opener.
// LongEmpty marks the one exception: a body that consists of a single
// empty line. The decoder collapses that body to zero lines and sets
// LongEmpty, and the encoder renders it back as one blank indented
// line, keeping the two empty shapes distinct and the round trip
// exact.
type Text struct {
	Meta
	Lines     [][]byte
	LongEmpty bool
}

// NewText builds a Text from string lines. The lines are not
// normalized; Encode normalizes on emission.
func NewText(lines ...string) *Text {
	t := &Text{}
	for _, l := range lines {
		t.Lines = append(t.Lines, []byte(l))
	}
	return t
}

// List is an ordered sequence of values. Intro is the comment block
// that opens the list body, before the first element.
type List struct {
	Meta
	Intro  *Comment
	Values []Value
}

// Key names a Dict entry. Before is the comment block preceding the
// entry's opener line.
type Key struct {
	Name   string
	Before *Comment
}

// Entry is one key/value pair of a Dict.
type Entry struct {
	Key   *Key
	Value Value
}

// Dict is an ordered mapping from keys to values. Intro is the
// comment block that opens the dict body, before the first entry.
type Dict struct {
	Meta
	Intro   *Comment
	Entries []Entry
}

// Get returns the value for name, or nil if absent. With duplicate
// keys the last occurrence wins, matching Set.
func (d *Dict) Get(name string) Value {
	for i := len(d.Entries) - 1; i >= 0; i-- {
		if d.Entries[i].Key != nil && d.Entries[i].Key.Name == name {
			return d.Entries[i].Value
		}
	}
	return nil
}

// Set stores v under name. If the key already exists its value is
// replaced in place and the original Key (with its comment) is kept;
// otherwise a new entry is appended.
func (d *Dict) Set(name string, v Value) {
	d.put(&Key{Name: name}, v)
}

func (d *Dict) put(key *Key, v Value) {
	for i := range d.Entries {
		if d.Entries[i].Key != nil && d.Entries[i].Key.Name == key.Name {
			d.Entries[i].Value = v
			return
		}
	}
	d.Entries = append(d.Entries, Entry{Key: key, Value: v})
}

// File is a whole document: a root Dict plus the file-level comment
// slots. Hashbang is the comment block at the very top of the file
// and Meta.After (via the embedded Dict) is the trailing comment
// after the root body.
type File struct {
	Dict
	Hashbang *Comment
}
