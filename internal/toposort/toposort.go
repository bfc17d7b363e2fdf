package toposort

import (
	"context"

	"github.com/vk/classpack/internal/buildctx"
	"github.com/vk/classpack/internal/ctxlog"
	"github.com/vk/classpack/internal/graph"
)

// Sort returns the files in dependency order: every file strictly after
// the files it depends on, for as long as the graph is acyclic. Depth-first
// post-order traversal; dependency names that are not in the input list
// are ignored (the graph builder already reported them). When a name is
// re-encountered on the active path, that edge is dropped and recorded as
// a CircularDependency diagnostic; ordering across the broken edge is then
// only best-effort.
//
// Traversal follows input order, not map order, so a given input always
// produces the same output.
func Sort(ctx context.Context, bctx *buildctx.Context, files []graph.RequiredFile) []graph.RequiredFile {
	logger := ctxlog.FromContext(ctx)

	byName := make(map[string]*graph.RequiredFile, len(files))
	for i := range files {
		f := &files[i]
		if _, ok := byName[f.Name]; !ok {
			byName[f.Name] = f
		}
	}

	sorted := make([]graph.RequiredFile, 0, len(files))
	done := make(map[string]bool, len(files))
	onPath := make(map[string]bool)

	var visit func(f *graph.RequiredFile)
	visit = func(f *graph.RequiredFile) {
		if done[f.Name] {
			return
		}
		if onPath[f.Name] {
			bctx.Diag(ctx, buildctx.CircularDependency,
				"Cycle while ordering files, edge dropped.", "name", f.Name)
			return
		}
		onPath[f.Name] = true
		for _, dep := range f.Dependencies {
			if depFile, ok := byName[dep]; ok {
				visit(depFile)
			}
		}
		delete(onPath, f.Name)
		done[f.Name] = true
		sorted = append(sorted, *f)
	}

	for i := range files {
		visit(&files[i])
	}

	logger.Debug("Topological sort complete.", "files", len(sorted))
	return sorted
}
