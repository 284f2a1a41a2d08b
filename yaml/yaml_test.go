package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	alacs "github.com/KimNorgaard/go-alacs"
	"github.com/KimNorgaard/go-alacs/yaml"
)

func TestMarshalBasic(t *testing.T) {
	doc, err := alacs.Decode([]byte("k1>\n\tv1\nk2[]\n\t>\n\t\ta\n\t>\n\t\tb\n"))
	require.NoError(t, err)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t,
		"--- !!map\n\"k1\": |1-\n v1\n\"k2\": !!seq\n - |1-\n  a\n - |1-\n  b\n...",
		string(out))
}

func TestMarshalComments(t *testing.T) {
	doc := &alacs.File{Hashbang: alacs.NewComment("hi")}
	doc.Intro = alacs.NewComment("in")
	text := alacs.NewText("v")
	text.After = alacs.NewComment("av")
	doc.Set("k", text)
	doc.Entries[0].Key.Before = alacs.NewComment("bk")
	doc.After = alacs.NewComment("end")

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t,
		"#!hi\n--- !!map\n#0i:in\n#0k:bk\n\"k\": |1-\n v\n#1a:av\n#0a:end\n...",
		string(out))
}

func TestMarshalEmptyContainers(t *testing.T) {
	doc := &alacs.File{}
	doc.Set("e1", &alacs.Dict{})
	doc.Set("e2", &alacs.List{})

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "--- !!map\n\"e1\": !!map\n {}\n\"e2\": !!seq\n []\n...", string(out))
}

func TestMarshalEmptyFile(t *testing.T) {
	out, err := yaml.Marshal(&alacs.File{})
	require.NoError(t, err)
	require.Equal(t, "--- !!map\n{}\n...", string(out))
}

func TestMarshalKeyEscaping(t *testing.T) {
	doc := &alacs.File{}
	doc.Set("a\"b\\c\td", alacs.NewText("v"))

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "--- !!map\n"+`"a\"b\\c\td": |1-`+"\n v\n...", string(out))
}

func TestMarshalKeepChomping(t *testing.T) {
	doc := &alacs.File{}
	doc.Set("k", alacs.NewText("a", ""))

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "--- !!map\n\"k\": |1+\n a\n...", string(out))
}

func TestMarshalNilFile(t *testing.T) {
	out, err := yaml.Marshal(nil)
	require.Nil(t, out)
	require.ErrorContains(t, err, "file is nil")
}

type foreignValue struct{ alacs.Meta }

func TestMarshalRejectsForeignValues(t *testing.T) {
	doc := &alacs.File{}
	doc.Set("k", &foreignValue{})

	out, err := yaml.Marshal(doc)
	require.Nil(t, out)
	require.ErrorContains(t, err, "unexpected type")
}

// The point of the exporter is that standard YAML tooling can load
// its output. The loader must accept explicit collection tags
// (!!map/!!seq) on block collections, which yaml.v3 does.
func TestOutputLoadsAsYAML(t *testing.T) {
	doc, err := alacs.Decode([]byte("k>\n\tv\n"))
	require.NoError(t, err)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "--- !!map\n\"k\": |1-\n v\n...", string(out))

	var loaded map[string]string
	require.NoError(t, yamlv3.Unmarshal(out, &loaded))
	require.Equal(t, map[string]string{"k": "v"}, loaded)
}
