package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vk/classpack/internal/assemble"
	"github.com/vk/classpack/internal/bootstrap"
	"github.com/vk/classpack/internal/buildctx"
	"github.com/vk/classpack/internal/config"
	"github.com/vk/classpack/internal/ctxlog"
	"github.com/vk/classpack/internal/extract"
	"github.com/vk/classpack/internal/graph"
	"github.com/vk/classpack/internal/index"
	"github.com/vk/classpack/internal/jsparse"
	"github.com/vk/classpack/internal/manifest"
	"github.com/vk/classpack/internal/minify"
	"github.com/vk/classpack/internal/toposort"
)

// Run executes one build to completion. Recoverable problems degrade the
// artifact and surface as diagnostics; the error return is reserved for
// the fatal taxonomy: missing entry point, missing registration
// primitive, escalated unresolved dependencies, and output write
// failures.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	bctx := buildctx.New()

	appCfg := config.LoadApp(ctx, a.cfg.AppPath)
	ws := config.DefaultWorkspace()
	if a.cfg.WorkspacePath != "" {
		ws = config.LoadWorkspace(ctx, a.cfg.WorkspacePath)
	}
	eff := a.effective(appCfg)
	a.logger.Debug("Configuration resolved.", "profile", eff.Profile,
		"minify_js", eff.MinifyJS, "minify_css", eff.MinifyCSS, "fail_on_missing", eff.FailOnMissing)

	frameworkDir := a.cfg.Framework
	if frameworkDir == "" && appCfg.Framework != "" {
		frameworkDir = resolvePath(appCfg.Dir, appCfg.Framework)
	}
	if frameworkDir == "" && ws.Framework != "" {
		frameworkDir = resolvePath(filepath.Dir(a.cfg.WorkspacePath), ws.Framework)
	}
	buildDir := firstNonEmpty(a.cfg.OutDir, ws.BuildDir, "build")

	idx, err := index.Build(ctx, bctx, a.roots(appCfg, ws, frameworkDir))
	if err != nil {
		return fmt.Errorf("failed to index sources: %w", err)
	}

	core := bootstrap.Resolve(ctx, bctx, frameworkDir, bootstrap.Options{
		ForceMinimal:   a.cfg.MinimalCore,
		DebugFramework: a.cfg.DebugFramework,
	})

	seeds, opts, err := a.entry(ctx, appCfg, idx)
	if err != nil {
		return err
	}

	result := graph.Build(ctx, bctx, idx, appCfg.Name, seeds, opts)
	if eff.FailOnMissing {
		if n := bctx.CountByKind(buildctx.UnresolvedDependency); n > 0 {
			return fmt.Errorf("%d unresolved dependencies and profile %q fails on missing", n, eff.Profile)
		}
	}

	sorted := toposort.Sort(ctx, bctx, dropCorePaths(result.RequiredFiles, core))

	asm := assemble.Assemble(ctx, bctx, assemble.Input{
		Core:      core,
		Files:     sorted,
		Namespace: jsparse.DefaultNamespaces[0],
	})
	if !asm.HasRegistrationPrimitive {
		return errors.New("assembled bundle has no class-registration primitive")
	}

	js := asm.JS
	if eff.MinifyJS && !a.cfg.DebugFramework {
		if js, err = minify.JS(js); err != nil {
			return err
		}
	} else if eff.MinifyJS {
		a.logger.Debug("Debug-framework mode, skipping script minification.")
	}

	css, err := a.stylesheet(ctx, bctx, appCfg, eff)
	if err != nil {
		return err
	}

	id := manifest.BuildID(js, css)
	m := manifest.New(id, js, css, time.Now())
	if err := manifest.Write(ctx, buildDir, m, js, css, jsparse.DefaultNamespaces[0]); err != nil {
		return err
	}
	if a.cfg.HTMLPath != "" {
		if err := manifest.InjectHTML(ctx, a.cfg.HTMLPath, m); err != nil {
			return err
		}
	}

	a.summarize(bctx, id, len(sorted), len(core))
	a.logger.Debug("App.Run method finished.")
	return nil
}

// effective merges the profile settings with explicit flag overrides.
func (a *App) effective(appCfg config.App) config.Effective {
	eff := config.Merge(appCfg, a.cfg.Profile)
	if a.cfg.MinifyJS != nil {
		eff.MinifyJS = *a.cfg.MinifyJS
	}
	if a.cfg.MinifyCSS != nil {
		eff.MinifyCSS = *a.cfg.MinifyCSS
	}
	if a.cfg.FailOnMissing != nil {
		eff.FailOnMissing = *a.cfg.FailOnMissing
	}
	return eff
}

// roots assembles the tagged search roots of the pass: the framework
// tree, the application classpath, and any extra package roots.
func (a *App) roots(appCfg config.App, ws config.Workspace, frameworkDir string) []index.Root {
	var roots []index.Root
	if frameworkDir != "" {
		roots = append(roots, index.Root{Path: frameworkDir, Origin: index.OriginFramework})
	}
	for _, cp := range appCfg.ClassPath {
		roots = append(roots, index.Root{Path: resolvePath(appCfg.Dir, cp), Origin: index.OriginApplication})
	}
	for _, extra := range appCfg.ExtraPaths {
		roots = append(roots, index.Root{Path: resolvePath(appCfg.Dir, extra), Origin: index.OriginFramework})
	}
	if ws.PackagesDir != "" {
		roots = append(roots, index.Root{Path: ws.PackagesDir, Origin: index.OriginFramework})
	}
	return roots
}

// entry determines the traversal seeds. A missing entry point is fatal
// before graph building, unless the application's conventional app.js
// exists on disk, in which case the builder is told its location
// directly.
func (a *App) entry(ctx context.Context, appCfg config.App, idx *index.FileIndex) ([]string, graph.Options, error) {
	entry := appCfg.EntryName()
	if entry == "" {
		return nil, graph.Options{}, errors.New("no entry class: application descriptor has neither name nor entry")
	}

	var opts graph.Options
	if _, ok := idx.Lookup(entry); !ok {
		conventional := filepath.Join(appCfg.Dir, "app.js")
		if _, err := os.Stat(conventional); err == nil {
			opts.EntryPath = conventional
		} else {
			return nil, graph.Options{}, fmt.Errorf("entry class %q not found in any search root", entry)
		}
	}

	seeds := []string{entry}
	if appCfg.MainView != "" {
		mv := extract.Resolve(appCfg.MainView, extract.RoleView, appCfg.Name)
		ctxlog.FromContext(ctx).Debug("Main view resolved.", "shorthand", appCfg.MainView, "resolved", mv)
		seeds = append(seeds, mv)
	}
	return seeds, opts, nil
}

// stylesheet concatenates the configured CSS entries, optionally
// minified. Unreadable entries are fatal: a stylesheet listed in the
// descriptor is expected to exist.
func (a *App) stylesheet(ctx context.Context, bctx *buildctx.Context, appCfg config.App, eff config.Effective) ([]byte, error) {
	if len(appCfg.CSS) == 0 {
		return nil, nil
	}
	var out []byte
	for _, entry := range appCfg.CSS {
		path := resolvePath(appCfg.Dir, entry.Path)
		blob, err := bctx.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet %s: %w", path, err)
		}
		out = append(out, blob...)
		out = append(out, '\n')
	}
	if eff.MinifyCSS {
		return minify.CSS(out)
	}
	return out, nil
}

// dropCorePaths removes required files already covered verbatim by a core
// file, so a class never ships twice.
func dropCorePaths(files []graph.RequiredFile, core []bootstrap.CoreFile) []graph.RequiredFile {
	corePaths := make(map[string]bool, len(core))
	for _, c := range core {
		if c.Path != "" {
			corePaths[c.Path] = true
		}
		for _, src := range c.Sources {
			corePaths[src] = true
		}
	}
	if len(corePaths) == 0 {
		return files
	}
	out := files[:0]
	for _, f := range files {
		if !corePaths[f.Path] {
			out = append(out, f)
		}
	}
	return out
}

// summarize prints the post-assembly verification summary.
func (a *App) summarize(bctx *buildctx.Context, id string, fileCount, coreCount int) {
	a.logger.Info("🏁 Build finished.", "id", id, "files", fileCount, "core_files", coreCount)
	kinds := []buildctx.Kind{
		buildctx.ParseFailure,
		buildctx.UnresolvedDependency,
		buildctx.DuplicateDefinition,
		buildctx.CircularDependency,
		buildctx.MissingBootstrap,
	}
	for _, kind := range kinds {
		if n := bctx.CountByKind(kind); n > 0 {
			a.logger.Warn("Diagnostics recorded during build.", "kind", kind, "count", n)
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
