package buildctx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("repeated reads are served from cache", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.js")
		require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

		c := New()
		data, err := c.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))

		// The pass owns the cache: a concurrent on-disk change is not
		// observed within the same build.
		require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
		data, err = c.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("missing file returns the read error", func(t *testing.T) {
		c := New()
		_, err := c.Read(filepath.Join(t.TempDir(), "missing.js"))
		assert.Error(t, err)
	})

	t.Run("independent contexts do not share state", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.js")
		require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

		c1 := New()
		_, err := c1.Read(path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))
		c2 := New()
		data, err := c2.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})
}

func TestDiagnostics(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.Diag(ctx, ParseFailure, "bad file", "path", "/x.js")
	c.Diag(ctx, UnresolvedDependency, "missing A")
	c.Diag(ctx, UnresolvedDependency, "missing B")

	assert.Equal(t, 1, c.CountByKind(ParseFailure))
	assert.Equal(t, 2, c.CountByKind(UnresolvedDependency))
	assert.Equal(t, 0, c.CountByKind(CircularDependency))

	all := c.Diagnostics()
	require.Len(t, all, 3)
	assert.Equal(t, ParseFailure, all[0].Kind)
	assert.Equal(t, "missing A", all[1].Message)

	// The snapshot is a copy, not a live view.
	all[0].Message = "mutated"
	assert.Equal(t, "bad file", c.Diagnostics()[0].Message)
}
