package alacs

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	alacserrors "github.com/KimNorgaard/go-alacs/errors"
	"github.com/KimNorgaard/go-alacs/internal/indent"
)

// Marshal converts generic Go data to canonical bytes. It accepts
// what FromGo accepts.
func Marshal(v any) ([]byte, error) {
	f, err := FromGo(v)
	if err != nil {
		return nil, err
	}
	return Encode(f)
}

// Unmarshal parses data and converts the document to generic Go data
// as produced by ToGo.
func Unmarshal(data []byte) (any, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return ToGo(f)
}

// FromGo builds a File from generic Go data. The root must be a
// mapping: a yaml.MapSlice carries explicit entry order, while
// map[string]any and map[string]string are emitted with sorted keys
// so the output is deterministic. Values recurse over nil (empty
// Text), string and []byte (Text, normalized), []any and []string
// (List), and the mapping kinds above (Dict). []byte content is
// shared with the tree, not copied.
//
// Anything else, along with non-string, empty or LF-bearing mapping
// keys, is recorded with its path and aggregated into a
// *errors.ConversionError.
func FromGo(v any) (*File, error) {
	c := &converter{level: indent.New()}
	f := &File{}
	switch v.(type) {
	case map[string]any, map[string]string, yaml.MapSlice:
		c.fillDict(&f.Dict, v)
	default:
		c.recordf("value is %T", v)
	}
	if len(c.errs) > 0 {
		return nil, &alacserrors.ConversionError{Errs: c.errs}
	}
	return f, nil
}

// ToGo converts a document tree to generic Go data: Text becomes a
// string (lines joined by LF), List becomes []any, and Dict and File
// become yaml.MapSlice so entry order is never lost. Nil and foreign
// values are recorded and aggregated into a *errors.ConversionError.
func ToGo(v Value) (any, error) {
	c := &converter{level: indent.New()}
	out := c.fromValue(v)
	if len(c.errs) > 0 {
		return nil, &alacserrors.ConversionError{Errs: c.errs}
	}
	return out, nil
}

type converter struct {
	level *indent.Level
	errs  []error
}

func (c *converter) recordf(format string, args ...any) {
	c.errs = append(c.errs, alacserrors.Pathf(c.level.Keys(), 0, format, args...))
}

func (c *converter) value(v any) Value {
	switch x := v.(type) {
	case nil:
		return &Text{}
	case string:
		return c.text([]byte(x))
	case []byte:
		return c.text(x)
	case []any:
		list := &List{}
		c.level = c.level.More()
		for i, el := range x {
			c.level.SetIndex(i)
			if value := c.value(el); value != nil {
				list.Values = append(list.Values, value)
			}
		}
		c.level = c.level.Less()
		return list
	case []string:
		list := &List{}
		c.level = c.level.More()
		for i, el := range x {
			c.level.SetIndex(i)
			list.Values = append(list.Values, c.text([]byte(el)))
		}
		c.level = c.level.Less()
		return list
	case map[string]any, map[string]string, yaml.MapSlice:
		dict := &Dict{}
		c.fillDict(dict, x)
		return dict
	default:
		c.recordf("value is %T", v)
		return nil
	}
}

func (c *converter) text(b []byte) *Text {
	t := &Text{Lines: [][]byte{b}}
	t.Normalize()
	return t
}

func (c *converter) fillDict(dict *Dict, v any) {
	var items []yaml.MapItem
	switch m := v.(type) {
	case yaml.MapSlice:
		items = m
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			items = append(items, yaml.MapItem{Key: k, Value: m[k]})
		}
	case map[string]string:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			items = append(items, yaml.MapItem{Key: k, Value: m[k]})
		}
	}
	c.level = c.level.More()
	for _, item := range items {
		c.level.SetKey(fmt.Sprint(item.Key))
		key, ok := item.Key.(string)
		switch {
		case !ok:
			c.recordf("key is %T", item.Key)
		case key == "":
			c.recordf("key is empty")
		case strings.ContainsRune(key, '\n'):
			c.recordf("key contains line feed")
		default:
			if value := c.value(item.Value); value != nil {
				dict.Set(key, value)
			}
		}
	}
	c.level = c.level.Less()
}

func (c *converter) fromValue(v Value) any {
	switch x := v.(type) {
	case *Text:
		if x == nil {
			c.recordf("value is nil")
			return nil
		}
		return string(bytes.Join(x.Lines, []byte{'\n'}))
	case *List:
		if x == nil {
			c.recordf("value is nil")
			return nil
		}
		out := make([]any, 0, len(x.Values))
		c.level = c.level.More()
		for i, el := range x.Values {
			c.level.SetIndex(i)
			out = append(out, c.fromValue(el))
		}
		c.level = c.level.Less()
		return out
	case *Dict:
		if x == nil {
			c.recordf("value is nil")
			return nil
		}
		return c.fromDict(x)
	case *File:
		if x == nil {
			c.recordf("value is nil")
			return nil
		}
		return c.fromDict(&x.Dict)
	case nil:
		c.recordf("value is nil")
		return nil
	default:
		c.recordf("value is %T", v)
		return nil
	}
}

func (c *converter) fromDict(dict *Dict) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(dict.Entries))
	c.level = c.level.More()
	for _, entry := range dict.Entries {
		if entry.Key == nil {
			c.recordf("key is nil")
			continue
		}
		c.level.SetKey(entry.Key.Name)
		out = append(out, yaml.MapItem{Key: entry.Key.Name, Value: c.fromValue(entry.Value)})
	}
	c.level = c.level.Less()
	return out
}
