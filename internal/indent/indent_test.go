package indent

import (
	"testing"

	"github.com/stretchr/testify/require"

	alacserrors "github.com/KimNorgaard/go-alacs/errors"
)

func TestMoreLessIdentity(t *testing.T) {
	root := New()
	require.Equal(t, 0, root.Depth())
	require.Empty(t, root.Tabs())

	one := root.More()
	require.Equal(t, 1, one.Depth())
	require.Equal(t, []byte("\t"), one.Tabs())
	require.Same(t, root, one.Less())
	require.Same(t, one, root.More(), "levels must be cached")

	two := one.More()
	require.Equal(t, 2, two.Depth())
	require.Equal(t, []byte("\t\t"), two.Tabs())
	require.Same(t, one, two.Less())
}

func TestLessUnderflowPanics(t *testing.T) {
	require.PanicsWithValue(t, alacserrors.ErrIndentUnderflow, func() {
		New().Less()
	})
}

func TestKeys(t *testing.T) {
	root := New()
	require.Equal(t, "", root.Keys())

	root.SetKey("servers")
	require.Equal(t, "servers", root.Keys())

	one := root.More()
	require.Equal(t, "servers", one.Keys(), "untouched levels contribute nothing")
	one.SetIndex(2)
	require.Equal(t, "servers[2]", one.Keys())

	two := one.More()
	two.SetKey("name")
	require.Equal(t, "servers[2].name", two.Keys())
}

func TestZero(t *testing.T) {
	root := New()
	root.SetKey("a")
	two := root.More().More()
	two.SetKey("b")

	back := two.Zero()
	require.Same(t, root, back)
	require.Equal(t, "", back.Keys())
	require.Equal(t, "", two.Keys(), "zero clears keys on every cached level")
}
