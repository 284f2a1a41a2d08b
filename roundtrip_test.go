package alacs

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestRoundTripIdentity(t *testing.T) {
	inputs := []string{
		"",
		"k>\n\tv\n",
		"k>\n",
		"k>\n\t\n",
		"k:\n",
		"k[]\n",
		"k1>\n\tv1\nk2[]\n\t>\n\t\ta\n\t>\n\t\tb\n",
		"#hashbang\n#intro\nk>\n\tv\n#after\n#trailing\n",
		"#a\n\tcontinued\n\t\t\tdeep\n",
		"m:\n\t#intro\n\t#before\n\tk>\n\t\tv\n",
		"items[]\n\t#intro\n\t>\n\t\tfirst\n\t>\n\t\tsecond\n",
		"k>\n\ta\n\t\tdeeper\n\t\n\tb\n",
		"outer:\n\tinner:\n\t\tleaf[]\n\t\t\t:\n\t\t\t[]\n",
		"a:\n#c\nb>\n\tw\n",
		"a:b>\n\tv\nx[]:\n",
		"#\n",
	}
	for _, input := range inputs {
		doc, err := Decode([]byte(input))
		require.NoError(t, err, "input %q", input)
		out, err := Encode(doc)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, input, string(out))
	}
}

func TestTreeRoundTrip(t *testing.T) {
	data := yaml.MapSlice{
		{Key: "name", Value: "frontend"},
		{Key: "empty", Value: ""},
		{Key: "multi", Value: "a\nb"},
		{Key: "ports", Value: []any{"8080", "8443"}},
		{Key: "env", Value: yaml.MapSlice{
			{Key: "REGION", Value: "eu-west-1"},
			{Key: "nested", Value: []any{yaml.MapSlice{{Key: "x", Value: "1"}}}},
		}},
		{Key: "none", Value: nil},
	}

	tree, err := FromGo(data)
	require.NoError(t, err)

	encoded, err := Encode(tree)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	diff := cmp.Diff(tree, decoded,
		cmpopts.IgnoreFields(Meta{}, "Line"),
		cmpopts.IgnoreFields(Comment{}, "Line"),
		cmpopts.EquateEmpty(),
	)
	require.Empty(t, diff)
}

func TestDecodedTreeSurvivesReencode(t *testing.T) {
	input := []byte("#hashbang\n#intro\nk>\n\tv\n#after\nm:\n\t#in\n\tx>\n\t\t1\n")
	first, err := Decode(input)
	require.NoError(t, err)

	encoded, err := Encode(first)
	require.NoError(t, err)

	second, err := Decode(encoded)
	require.NoError(t, err)

	diff := cmp.Diff(first, second, cmpopts.EquateEmpty())
	require.Empty(t, diff, "a decoded tree and its re-decoded copy must match exactly, line numbers included")
}
