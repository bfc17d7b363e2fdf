package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vk/classpack/internal/buildctx"
	"github.com/vk/classpack/internal/ctxlog"
)

// ambiguousCalls matches bare calls to platform primitives whose meaning
// depends on the call context. The prelude binds __global explicitly, and
// patching rewrites these to call through it. The leading group keeps the
// match away from member accesses and longer identifiers.
var ambiguousCalls = regexp.MustCompile(`(^|[^\w$.])(eval|setTimeout|setInterval|clearTimeout|clearInterval)\s*\(`)

// PatchContext rewrites ambiguous platform calls to explicit __global
// references. The assembler applies the same patch to application files.
func PatchContext(src string) string {
	return ambiguousCalls.ReplaceAllString(src, "${1}__global.${2}(")
}

// synthesize tries tier (b): concatenate the critical framework sources
// into one isolating scope, patch their call context, and inject the class
// primitives when the sources did not establish them.
func synthesize(ctx context.Context, bctx *buildctx.Context, frameworkDir string, opts Options) (CoreFile, bool) {
	logger := ctxlog.FromContext(ctx)

	var parts []string
	var found []string
	var sources []string
	for _, rel := range criticalFiles {
		path := filepath.Join(frameworkDir, filepath.FromSlash(rel))
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		content, err := bctx.Read(path)
		if err != nil {
			logger.Warn("Critical framework file unreadable, skipped.", "path", path, "error", err)
			continue
		}
		found = append(found, rel)
		sources = append(sources, path)
		if opts.DebugFramework {
			parts = append(parts, fmt.Sprintf("// %s", rel))
		}
		parts = append(parts, PatchContext(string(content)))
	}
	if len(found) == 0 {
		return CoreFile{}, false
	}
	if opts.DebugFramework {
		logger.Debug("Synthesizing minimal bootstrap from critical files.", "files", found)
	}

	body := strings.Join(parts, "\n")
	var b strings.Builder
	b.WriteString("// synthesized minimal bootstrap\n")
	b.WriteString("(function(__global) {\n")
	b.WriteString(body)
	b.WriteString("\n")
	if !establishesPrimitives(body, opts.Namespace) {
		b.WriteString(fallbackPrimitives(opts.Namespace))
	}
	b.WriteString("})(typeof window !== 'undefined' ? window : this);\n")

	return CoreFile{
		Name:        "synthesized-bootstrap",
		Content:     []byte(b.String()),
		Sources:     sources,
		Priority:    1,
		Synthesized: true,
	}, true
}

// establishesPrimitives reports whether the concatenated critical sources
// already define the registration primitive on the namespace. The check is
// textual; the sources are never executed at build time.
func establishesPrimitives(body, ns string) bool {
	for _, marker := range []string{
		ns + ".define =",
		ns + ".define=",
		"define: function",
		"define:function",
	} {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
