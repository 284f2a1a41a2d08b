// Package indent tracks nesting depth during document walks.
//
// A Level is one node of a doubly linked chain rooted at depth 0.
// More and Less move along the chain; levels are cached so a walk
// allocates each depth at most once. Every level carries a transient
// path key (the dict key or list index currently being visited) from
// which Keys renders a human-readable path for diagnostics.
package indent

import (
	"fmt"

	alacserrors "github.com/KimNorgaard/go-alacs/errors"
)

// Level is one indentation depth of a walk. The zero value is not
// usable; start from New.
type Level struct {
	depth int
	tabs  []byte
	more  *Level
	less  *Level

	// key is the path element active at this level: a string for a
	// dict key, an int for a list index, or nil at the root and on
	// untouched levels.
	key any
}

// New returns the root level at depth 0.
func New() *Level {
	return &Level{}
}

// More returns the level one deeper, creating and caching it on first
// use.
func (l *Level) More() *Level {
	if l.more == nil {
		l.more = &Level{
			depth: l.depth + 1,
			tabs:  append(append([]byte{}, l.tabs...), '\t'),
			less:  l,
		}
	}
	return l.more
}

// Less returns the level one shallower. Calling Less on the root is a
// caller bug and panics with ErrIndentUnderflow.
func (l *Level) Less() *Level {
	if l.less == nil {
		panic(alacserrors.ErrIndentUnderflow)
	}
	return l.less
}

// Zero walks back to the root and clears the path keys of every
// cached level, readying the chain for a fresh walk.
func (l *Level) Zero() *Level {
	root := l
	for root.less != nil {
		root = root.less
	}
	for lv := root; lv != nil; lv = lv.more {
		lv.key = nil
	}
	return root
}

// Depth returns the nesting depth, 0 at the root.
func (l *Level) Depth() int { return l.depth }

// Tabs returns the indent prefix for this level, one tab per depth.
// The slice is shared; callers must not modify it.
func (l *Level) Tabs() []byte { return l.tabs }

// SetKey records the dict key being visited at this level.
func (l *Level) SetKey(name string) { l.key = name }

// SetIndex records the list index being visited at this level.
func (l *Level) SetIndex(i int) { l.key = i }

// Keys renders the path from the root down to this level, e.g.
// "servers[2].name". The root key is rendered bare; deeper string
// keys as ".name" and everything else as "[index]". Levels with no
// recorded key contribute nothing, so a half-walked chain still
// renders cleanly.
func (l *Level) Keys() string {
	if l.less == nil {
		if l.key == nil {
			return ""
		}
		return fmt.Sprint(l.key)
	}
	switch k := l.key.(type) {
	case nil:
		return l.less.Keys()
	case string:
		return l.less.Keys() + "." + k
	default:
		return fmt.Sprintf("%s[%v]", l.less.Keys(), k)
	}
}
