package alacs

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.alacs")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			doc, err := Decode(src)
			if err != nil {
				// For inputs that are expected to fail parsing, the
				// golden file contains the error message.
				actual = []byte(err.Error())
			} else {
				// The format is canonical: re-encoding a decoded
				// document must reproduce the file byte for byte.
				actual, err = Encode(doc)
				require.NoError(t, err)
				require.Equal(t, string(src), string(actual))
			}

			goldenFile := strings.Replace(file, ".alacs", ".golden", 1)
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, actual, 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")
			require.Equal(t, string(expected), string(actual))
		})
	}
}
