package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/syssam/entigen/compiler/gen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("creates_directory_recursively", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out", "entities")
		w := gen.NewWriter(dir)
		require.NoError(t, w.Write("User.cs", "class User"))

		data, err := os.ReadFile(filepath.Join(dir, "User.cs"))
		require.NoError(t, err)
		assert.Equal(t, "class User", string(data))
	})

	t.Run("overwrites_existing_file", func(t *testing.T) {
		dir := t.TempDir()
		w := gen.NewWriter(dir)
		require.NoError(t, w.Write("User.cs", "old"))
		require.NoError(t, w.Write("User.cs", "new"))

		data, err := os.ReadFile(filepath.Join(dir, "User.cs"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("fails_when_directory_is_a_file", func(t *testing.T) {
		parent := t.TempDir()
		blocker := filepath.Join(parent, "out")
		require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

		w := gen.NewWriter(blocker)
		assert.Error(t, w.Write("User.cs", "class User"))
	})
}
