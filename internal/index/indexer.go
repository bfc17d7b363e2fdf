package index

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vk/classpack/internal/buildctx"
	"github.com/vk/classpack/internal/ctxlog"
	"github.com/vk/classpack/internal/jsparse"
)

// skipDirs are well-known non-source directories excluded from the walk.
var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	"node_modules": true,
	"build":        true,
	".sass-cache":  true,
	"resources":    true,
}

// Root is one search root with its origin tag.
type Root struct {
	Path   string
	Origin Origin
}

// Build walks every root and indexes each source file that registers a
// class. Per-file problems are diagnostics, never errors: a file that
// cannot be read or parsed is skipped and the walk continues. Only a
// failure to walk a root at all is returned.
func Build(ctx context.Context, bctx *buildctx.Context, roots []Root) (*FileIndex, error) {
	logger := ctxlog.FromContext(ctx)
	idx := NewFileIndex()
	for _, root := range roots {
		logger.Debug("Indexing root.", "path", root.Path, "origin", root.Origin)
		if err := indexRoot(ctx, bctx, idx, root); err != nil {
			return nil, fmt.Errorf("indexing root %s: %w", root.Path, err)
		}
	}
	logger.Debug("Index complete.", "classes", idx.Len())
	return idx, nil
}

func indexRoot(ctx context.Context, bctx *buildctx.Context, idx *FileIndex, root Root) error {
	return filepath.WalkDir(root.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".js") {
			return nil
		}
		indexFile(ctx, bctx, idx, root, path)
		return nil
	})
}

// indexFile records the registration found in one file. Nothing in here
// propagates an error past the file.
func indexFile(ctx context.Context, bctx *buildctx.Context, idx *FileIndex, root Root, path string) {
	src, err := bctx.Read(path)
	if err != nil {
		bctx.Diag(ctx, buildctx.ParseFailure, "Source file unreadable, skipped.", "path", path, "error", err)
		return
	}
	file := jsparse.NewSourceFile(path, src)
	defer file.Close()

	reg, err := file.FindRegistration(ctx, nil)
	if err != nil {
		bctx.Diag(ctx, buildctx.ParseFailure, "Source file unparsable, skipped.", "path", path, "error", err)
		return
	}

	name := ""
	if reg != nil {
		name = reg.Name
	} else if root.Origin == OriginFramework {
		// Framework sources without an explicit registration still get a
		// conventional name from their location.
		name = FallbackName(root.Path, path)
	}
	if name == "" {
		return
	}
	if !idx.Add(name, Entry{Path: path, Origin: root.Origin}) {
		existing, _ := idx.Lookup(name)
		bctx.Diag(ctx, buildctx.DuplicateDefinition, "Class registered twice, second file discarded.",
			"name", name, "kept", existing.Path, "discarded", path)
	}
}
