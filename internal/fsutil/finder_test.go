package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPaths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	nested := filepath.Join(root, "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	for _, p := range []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "notes.txt"),
		filepath.Join(nested, "c.hcl"),
	} {
		require.NoError(t, os.WriteFile(p, []byte(""), 0o600))
	}

	// --- Act ---
	files, err := ExpandPaths(".hcl",
		filepath.Join(root, "a.hcl"),
		root,
		filepath.Join(root, "missing.hcl"),
	)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(nested, "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { _, _ = FindFilesByExtension(".", "") })
}
