package graph

import (
	"context"

	"github.com/vk/classpack/internal/buildctx"
	"github.com/vk/classpack/internal/ctxlog"
	"github.com/vk/classpack/internal/extract"
	"github.com/vk/classpack/internal/index"
	"github.com/vk/classpack/internal/jsparse"
)

// builder carries the traversal state of one build. Each name is
// finalized (moved to visited) at most once, which bounds the traversal
// by the index size; inProgress membership keeps cycles from re-expanding.
type builder struct {
	bctx  *buildctx.Context
	idx   *index.FileIndex
	appNS string

	visited    map[string]bool
	inProgress map[string]bool
	seenPaths  map[string]bool
	result     *Result
}

// Build walks the dependency graph from the seed names (the entry class,
// plus the resolved main view when the application declares one) and
// returns every file the bundle needs. Recoverable problems degrade the
// result and are recorded on the build context.
func Build(ctx context.Context, bctx *buildctx.Context, idx *index.FileIndex, appNS string, seeds []string, opts Options) *Result {
	logger := ctxlog.FromContext(ctx)
	b := &builder{
		bctx:       bctx,
		idx:        idx,
		appNS:      appNS,
		visited:    make(map[string]bool),
		inProgress: make(map[string]bool),
		seenPaths:  make(map[string]bool),
		result: &Result{
			RequiredNames: make(map[string]bool),
		},
	}

	for _, seed := range seeds {
		if seed == "" {
			continue
		}
		if _, ok := idx.Lookup(seed); !ok && opts.EntryPath != "" && seed == seeds[0] {
			// The entry class is not indexed but its file location is
			// known: emit that one file as a minimal required set.
			logger.Debug("Entry class not indexed, using its known file directly.",
				"name", seed, "path", opts.EntryPath)
			b.append(RequiredFile{
				Name:   seed,
				Path:   opts.EntryPath,
				Origin: index.OriginApplication,
			})
			continue
		}
		b.visit(ctx, seed)
	}

	logger.Debug("Dependency graph complete.",
		"classes", len(b.result.RequiredNames), "files", len(b.result.RequiredFiles))
	return b.result
}

// visit finalizes one qualified name, recursing into its dependencies
// first so discovery order already approximates dependency order.
func (b *builder) visit(ctx context.Context, name string) {
	if b.visited[name] {
		return
	}
	if b.inProgress[name] {
		b.bctx.Diag(ctx, buildctx.CircularDependency,
			"Circular dependency detected, reference skipped.", "name", name)
		return
	}

	entry, ok := b.idx.Lookup(name)
	if !ok {
		b.visited[name] = true
		b.bctx.Diag(ctx, buildctx.UnresolvedDependency,
			"Dependency not found in index, skipped.", "name", name)
		return
	}

	b.inProgress[name] = true
	defer func() {
		delete(b.inProgress, name)
		b.visited[name] = true
	}()

	deps := b.dependencies(ctx, name, entry)
	for _, dep := range deps {
		b.visit(ctx, dep)
	}
	b.append(RequiredFile{
		Name:         name,
		Path:         entry.Path,
		Origin:       entry.Origin,
		Dependencies: deps,
	})
}

// dependencies extracts and expands the declared dependency names of one
// indexed class. Extraction failures degrade to an empty list.
func (b *builder) dependencies(ctx context.Context, name string, entry index.Entry) []string {
	src, err := b.bctx.Read(entry.Path)
	if err != nil {
		b.bctx.Diag(ctx, buildctx.ParseFailure, "Required file unreadable.",
			"name", name, "path", entry.Path, "error", err)
		return nil
	}
	file := jsparse.NewSourceFile(entry.Path, src)
	defer file.Close()

	decl, err := extract.FromFile(ctx, file, b.appNS)
	if err != nil {
		b.bctx.Diag(ctx, buildctx.ParseFailure, "Required file unparsable.",
			"name", name, "path", entry.Path, "error", err)
		return nil
	}
	if decl == nil {
		// Fallback-named framework file without a registration call.
		return nil
	}
	return ExpandWildcards(decl.Dependencies, b.idx)
}

// append records a RequiredFile unless its path is already present.
func (b *builder) append(rf RequiredFile) {
	b.result.RequiredNames[rf.Name] = true
	if b.seenPaths[rf.Path] {
		return
	}
	b.seenPaths[rf.Path] = true
	b.result.RequiredFiles = append(b.result.RequiredFiles, rf)
}
