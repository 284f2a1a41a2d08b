/*
Package alacs implements ALACS, a line-oriented, tab-indented document
format that losslessly round-trips a tree of text blocks, ordered
lists and ordered key/value maps together with freeform comments.

The wire format is line-based. An entry's opener line ends in a marker
that selects its kind: '>' for a text block, "[]" for a list, ':' for
a dict. The key, if any, is written between the indentation and the
marker. The entry's body follows one tab deeper. Comments
start with '#' at their level and continue on strictly deeper lines:

	# a service definition
	name>
		frontend
	ports[]
		>
			8080
		>
			8443
	env:
		REGION>
			eu-west-1

The format is canonical: every tree has exactly one rendering, so
Encode is the exact inverse of Decode and re-encoding a decoded
document reproduces the input byte for byte.

The package offers two workflows:

1. Data-Oriented Conversion

Marshal and Unmarshal convert between generic Go data and ALACS
bytes. Dict entry order is significant, so decoded mappings come back
as goccy/go-yaml MapSlice values; plain map[string]any input is
encoded with sorted keys. This path drops comments.

	out, err := alacs.Marshal(yaml.MapSlice{
		{Key: "name", Value: "frontend"},
		{Key: "ports", Value: []any{"8080", "8443"}},
	})
	if err != nil {
		// handle error
	}

2. Full-Fidelity Document Manipulation

Decode produces a File: the complete document tree with every comment
attached to its structural position (file hashbang, list/dict intro,
before a key, after a value, file trailer). The tree can be inspected
and modified, then written back with Encode, keeping the comments
intact.

	doc, err := alacs.Decode(input)
	if err != nil {
		// handle error
	}
	doc.Set("region", alacs.NewText("eu-west-1"))
	out, err := alacs.Encode(doc)

Both Decode and the bridge collect every problem they find instead of
stopping at the first: the returned error enumerates each complaint
prefixed with its line number and structural path.
*/
package alacs
