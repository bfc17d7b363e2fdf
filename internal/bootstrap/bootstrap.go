package bootstrap

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/classpack/internal/buildctx"
	"github.com/vk/classpack/internal/ctxlog"
)

// prebuiltNames are the conventional locations of a prebuilt framework
// bundle below the framework directory, in preference order.
var prebuiltNames = []string{
	"build/framework.min.js",
	"build/framework.js",
	"framework-all.min.js",
	"framework-all.js",
}

// criticalFiles are the framework sources that establish the class system,
// in load order. Synthesis concatenates whichever of these exist.
var criticalFiles = []string{
	"src/Core.js",
	"src/class/Base.js",
	"src/class/Class.js",
	"src/class/ClassManager.js",
	"src/class/Loader.js",
	"src/env/Ready.js",
}

// CoreFile is one framework-origin unit scheduled before every required
// application file, regardless of its own declared dependencies.
type CoreFile struct {
	// Name labels the unit in logs and in the assembled banner.
	Name string
	// Path is the on-disk source, "" for synthesized content.
	Path string
	// Content is the unit's text.
	Content []byte
	// Sources lists the on-disk files a synthesized unit absorbed, so
	// the orchestrator can drop them from the required set.
	Sources []string
	// Priority orders core files ascending; the prebuilt bundle is 0.
	Priority int
	// Synthesized marks tier (b) and (c) output.
	Synthesized bool
}

// Options adjusts core resolution.
type Options struct {
	// ForceMinimal skips the prebuilt bundle tier and prefers the
	// synthesized minimal bootstrap.
	ForceMinimal bool
	// DebugFramework logs per-tier decisions at debug level and keeps
	// synthesized output annotated with its source file names.
	DebugFramework bool
	// Namespace is the framework's global namespace, "Ext" when empty.
	Namespace string
}

// Resolve returns the core files for the build, ordered by ascending
// priority. The list may be empty; absence of every tier is recorded as a
// MissingBootstrap diagnostic, never an error.
func Resolve(ctx context.Context, bctx *buildctx.Context, frameworkDir string, opts Options) []CoreFile {
	logger := ctxlog.FromContext(ctx)
	if opts.Namespace == "" {
		opts.Namespace = "Ext"
	}

	if frameworkDir != "" && !opts.ForceMinimal {
		if core, ok := prebuilt(ctx, bctx, frameworkDir, opts); ok {
			return []CoreFile{core}
		}
	}

	if frameworkDir != "" {
		if core, ok := synthesize(ctx, bctx, frameworkDir, opts); ok {
			return []CoreFile{core}
		}
	}

	logger.Debug("No framework core found, emitting embedded fallback bootstrap.")
	bctx.Diag(ctx, buildctx.MissingBootstrap,
		"No prebuilt bundle or critical framework files found, using embedded fallback primitives.",
		"framework", frameworkDir)
	return []CoreFile{{
		Name:        "minimal-bootstrap",
		Content:     []byte(minimalBootstrap(opts.Namespace)),
		Priority:    2,
		Synthesized: true,
	}}
}

// prebuilt tries tier (a): a framework bundle artifact used verbatim.
func prebuilt(ctx context.Context, bctx *buildctx.Context, frameworkDir string, opts Options) (CoreFile, bool) {
	logger := ctxlog.FromContext(ctx)
	for _, rel := range prebuiltNames {
		path := filepath.Join(frameworkDir, filepath.FromSlash(rel))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		content, err := bctx.Read(path)
		if err != nil {
			logger.Warn("Prebuilt framework bundle unreadable, trying next tier.", "path", path, "error", err)
			continue
		}
		if opts.DebugFramework {
			logger.Debug("Using prebuilt framework bundle.", "path", path, "bytes", len(content))
		}
		return CoreFile{
			Name:     rel,
			Path:     path,
			Content:  content,
			Priority: 0,
		}, true
	}
	return CoreFile{}, false
}
