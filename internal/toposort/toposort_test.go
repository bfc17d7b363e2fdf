package toposort

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/classpack/internal/buildctx"
	"github.com/vk/classpack/internal/graph"
)

func file(name string, deps ...string) graph.RequiredFile {
	return graph.RequiredFile{Name: name, Path: "/" + name + ".js", Dependencies: deps}
}

func positions(files []graph.RequiredFile) map[string]int {
	pos := make(map[string]int, len(files))
	for i, f := range files {
		pos[f.Name] = i
	}
	return pos
}

// assertOrdered checks every dependency precedes its dependent.
func assertOrdered(t *testing.T, sorted []graph.RequiredFile, input []graph.RequiredFile) {
	t.Helper()
	pos := positions(sorted)
	for _, f := range input {
		for _, dep := range f.Dependencies {
			if _, present := pos[dep]; !present {
				continue
			}
			assert.Less(t, pos[dep], pos[f.Name],
				"%s must precede %s", dep, f.Name)
		}
	}
}

func TestSort(t *testing.T) {
	ctx := context.Background()

	t.Run("acyclic graph is fully ordered", func(t *testing.T) {
		input := []graph.RequiredFile{
			file("NS.App", "NS.View", "NS.Controller"),
			file("NS.View", "NS.Base"),
			file("NS.Controller", "NS.Base"),
			file("NS.Base"),
		}
		bctx := buildctx.New()
		sorted := Sort(ctx, bctx, input)
		require.Len(t, sorted, 4)
		assertOrdered(t, sorted, input)
		assert.Zero(t, bctx.CountByKind(buildctx.CircularDependency))
	})

	t.Run("diamond dependencies appear once", func(t *testing.T) {
		input := []graph.RequiredFile{
			file("NS.Top", "NS.Left", "NS.Right"),
			file("NS.Left", "NS.Bottom"),
			file("NS.Right", "NS.Bottom"),
			file("NS.Bottom"),
		}
		bctx := buildctx.New()
		sorted := Sort(ctx, bctx, input)
		require.Len(t, sorted, 4)
		assert.Equal(t, "NS.Bottom", sorted[0].Name)
		assert.Equal(t, "NS.Top", sorted[3].Name)
	})

	t.Run("cycle drops one edge and keeps both files", func(t *testing.T) {
		input := []graph.RequiredFile{
			file("NS.A", "NS.B"),
			file("NS.B", "NS.A"),
		}
		bctx := buildctx.New()
		sorted := Sort(ctx, bctx, input)
		require.Len(t, sorted, 2)
		assert.Equal(t, 1, bctx.CountByKind(buildctx.CircularDependency))
	})

	t.Run("dependencies outside the list are ignored", func(t *testing.T) {
		input := []graph.RequiredFile{
			file("NS.A", "NS.NotHere", "NS.B"),
			file("NS.B"),
		}
		bctx := buildctx.New()
		sorted := Sort(ctx, bctx, input)
		require.Len(t, sorted, 2)
		assert.Equal(t, "NS.B", sorted[0].Name)
	})

	t.Run("deterministic for a given input order", func(t *testing.T) {
		input := []graph.RequiredFile{
			file("NS.C"),
			file("NS.A", "NS.C"),
			file("NS.B", "NS.C"),
		}
		first := Sort(ctx, buildctx.New(), input)
		for i := 0; i < 10; i++ {
			again := Sort(ctx, buildctx.New(), input)
			assert.Equal(t, first, again)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		sorted := Sort(ctx, buildctx.New(), nil)
		assert.Empty(t, sorted)
	})
}
