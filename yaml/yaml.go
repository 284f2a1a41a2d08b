// Package yaml renders a document tree as YAML-compatible bytes.
//
// The output is not pretty: it favors preserving everything over
// looking nice. Blocks are tagged !!map / !!seq, text becomes block
// scalars, and comments are re-encoded as YAML comments carrying a
// positional marker (#<depth>i: intro, #<depth>k: before-key,
// #<depth>a: after-value, #! hashbang, #0a: file trailer) so a later
// tool can put them back. A load+dump cycle through a round-tripping
// YAML library cleans the layout up without losing the comments.
//
// There is no importer; the rendering is one-way and best-effort.
package yaml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	alacs "github.com/KimNorgaard/go-alacs"
)

// Marshal renders f as a single YAML document, "--- " through "...".
func Marshal(f *alacs.File) ([]byte, error) {
	if f == nil {
		return nil, errors.New("alacs/yaml: file is nil")
	}
	w := &writer{}
	w.comment("#!", f.Hashbang)
	w.buf.WriteString("--- ")
	if err := w.dict("", &f.Dict); err != nil {
		return nil, err
	}
	w.comment("#0a:", f.After)
	w.buf.WriteString("...")
	return w.buf.Bytes(), nil
}

type writer struct {
	buf bytes.Buffer
}

func (w *writer) lines(prefix string, lines [][]byte) {
	for _, line := range lines {
		w.buf.WriteString(prefix)
		w.buf.Write(line)
		w.buf.WriteByte('\n')
	}
}

func (w *writer) comment(prefix string, c *alacs.Comment) {
	if c == nil {
		return
	}
	c.Normalize()
	w.lines(prefix, c.Lines)
}

func (w *writer) value(indent string, v alacs.Value) error {
	var after *alacs.Comment
	switch x := v.(type) {
	case *alacs.Text:
		if x == nil {
			return errors.New("alacs/yaml: value is nil")
		}
		w.text(indent, x)
		after = x.After
	case *alacs.List:
		if x == nil {
			return errors.New("alacs/yaml: value is nil")
		}
		if err := w.list(indent, x); err != nil {
			return err
		}
		after = x.After
	case *alacs.Dict:
		if x == nil {
			return errors.New("alacs/yaml: value is nil")
		}
		if err := w.dict(indent, x); err != nil {
			return err
		}
		after = x.After
	case *alacs.File:
		if x == nil {
			return errors.New("alacs/yaml: value is nil")
		}
		if err := w.dict(indent, &x.Dict); err != nil {
			return err
		}
		after = x.After
	default:
		return errors.Errorf("alacs/yaml: unexpected type %T", v)
	}
	w.comment(fmt.Sprintf("#%da:", len(indent)), after)
	return nil
}

// text emits a block scalar with explicit indentation indicator 1 (the
// body sits one space deeper per nesting level). A final empty line is
// expressed with the keep chomping indicator instead of being written.
func (w *writer) text(indent string, t *alacs.Text) {
	t.Normalize()
	if n := len(t.Lines); n > 0 && len(t.Lines[n-1]) == 0 {
		w.buf.WriteString("|1+\n")
		w.lines(indent, t.Lines[:n-1])
	} else {
		w.buf.WriteString("|1-\n")
		w.lines(indent, t.Lines)
	}
}

func (w *writer) list(indent string, l *alacs.List) error {
	w.buf.WriteString("!!seq\n")
	w.comment(fmt.Sprintf("#%di:", len(indent)), l.Intro)
	if len(l.Values) == 0 {
		w.buf.WriteString(indent)
		w.buf.WriteString("[]\n")
		return nil
	}
	more := indent + " "
	for _, v := range l.Values {
		w.buf.WriteString(indent)
		w.buf.WriteString("- ")
		if err := w.value(more, v); err != nil {
			return err
		}
	}
	return nil
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\t", `\t`)

func (w *writer) dict(indent string, d *alacs.Dict) error {
	w.buf.WriteString("!!map\n")
	w.comment(fmt.Sprintf("#%di:", len(indent)), d.Intro)
	if len(d.Entries) == 0 {
		w.buf.WriteString(indent)
		w.buf.WriteString("{}\n")
		return nil
	}
	more := indent + " "
	for _, entry := range d.Entries {
		if entry.Key == nil {
			return errors.New("alacs/yaml: key is nil")
		}
		w.comment(fmt.Sprintf("#%dk:", len(indent)), entry.Key.Before)
		w.buf.WriteString(indent)
		w.buf.WriteByte('"')
		w.buf.WriteString(keyEscaper.Replace(entry.Key.Name))
		w.buf.WriteString(`": `)
		if err := w.value(more, entry.Value); err != nil {
			return err
		}
	}
	return nil
}
