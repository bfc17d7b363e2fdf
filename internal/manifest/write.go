package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/classpack/internal/ctxlog"
)

// Write emits every artifact of one build below buildDir:
//
//	<buildDir>/<id>/app.js
//	<buildDir>/<id>/app.css      (when css is non-empty)
//	<buildDir>/<id>.json
//	<buildDir>/bootstrap.js
//
// Any write failure is fatal for the build.
func Write(ctx context.Context, buildDir string, m Manifest, js, css []byte, ns string) error {
	logger := ctxlog.FromContext(ctx)

	outDir := filepath.Join(buildDir, m.ID)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	jsPath := filepath.Join(outDir, "app.js")
	if err := os.WriteFile(jsPath, js, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", jsPath, err)
	}
	logger.Debug("Script artifact written.", "path", jsPath, "bytes", len(js))

	if len(css) > 0 {
		cssPath := filepath.Join(outDir, "app.css")
		if err := os.WriteFile(cssPath, css, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cssPath, err)
		}
		logger.Debug("Stylesheet artifact written.", "path", cssPath, "bytes", len(css))
	}

	doc, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	manifestPath := filepath.Join(buildDir, m.ID+".json")
	if err := os.WriteFile(manifestPath, append(doc, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", manifestPath, err)
	}
	logger.Debug("Manifest written.", "path", manifestPath)

	loaderPath := filepath.Join(buildDir, "bootstrap.js")
	if err := os.WriteFile(loaderPath, []byte(loaderScript(m, ns)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", loaderPath, err)
	}
	logger.Debug("Bootstrap loader written.", "path", loaderPath)

	return nil
}

// loaderScript is the small loader emitted next to the build output: it
// verifies the framework primitives exist, injects the stylesheet links,
// and logs readiness.
func loaderScript(m Manifest, ns string) string {
	links, _ := json.Marshal(cssPaths(m))
	return fmt.Sprintf(`// classpack bootstrap loader (build %[1]s)
(function(global) {
    var NS = global.%[2]s;
    if (!NS || typeof NS.define !== 'function') {
        if (global.console && global.console.error) {
            global.console.error('bootstrap: framework primitives missing, bundle not loaded?');
        }
        return;
    }
    var links = %[3]s;
    var head = global.document && global.document.head;
    if (head) {
        for (var i = 0; i < links.length; i++) {
            var link = global.document.createElement('link');
            link.rel = 'stylesheet';
            link.href = links[i];
            head.appendChild(link);
        }
    }
    if (global.console && global.console.log) {
        global.console.log('bootstrap: build %[1]s ready');
    }
})(typeof window !== 'undefined' ? window : this);
`, m.ID, ns, links)
}

func cssPaths(m Manifest) []string {
	paths := make([]string, 0, len(m.CSS))
	for _, a := range m.CSS {
		paths = append(paths, a.Path)
	}
	return paths
}
