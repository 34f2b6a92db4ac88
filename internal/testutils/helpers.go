package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ABDocument is a catalog document for the automaton accepting "ab" and the empty word.
const ABDocument = `---
alphabet: [a, b]
states: [q0, q1, q2]
start: q0
accept: [q2]
transitions:
  - {from: q0, symbol: a, to: q1}
  - {from: q1, symbol: b, to: q2}
  - {from: q0, symbol: e, to: q2}
inputs:
  - a b
  - [b]
---
Accepts "ab", and the empty word through an epsilon edge.
`

// SetupCatalog creates a temporary directory holding files (name -> content)
// and returns its absolute path. It fails the test immediately on error.
func SetupCatalog(t *testing.T, files map[string]string) string {
	t.Helper()

	// Loam sometimes prefers absolute paths, though t.TempDir usually returns one.
	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range files {
		path := filepath.Join(absPath, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to seed %s", name)
	}
	return absPath
}
