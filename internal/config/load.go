package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
	"github.com/vk/classpack/internal/ctxlog"
)

// previewLen bounds how much of a broken descriptor is echoed in the log.
const previewLen = 120

// LoadApp reads and parses the application descriptor at path. A missing
// or unparsable file logs the problem and yields DefaultApp(); loading
// never fails the build.
func LoadApp(ctx context.Context, path string) App {
	logger := ctxlog.FromContext(ctx)
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Application descriptor unreadable, using defaults.", "path", path, "error", err)
		return DefaultApp()
	}
	var app App
	if ok := decode(ctx, path, raw, &app); !ok {
		return DefaultApp()
	}
	app.Dir = filepath.Dir(path)
	logger.Debug("Application descriptor loaded.", "path", path, "name", app.Name)
	return app
}

// LoadWorkspace reads and parses the workspace descriptor at path, falling
// back to DefaultWorkspace() the same way LoadApp does.
func LoadWorkspace(ctx context.Context, path string) Workspace {
	logger := ctxlog.FromContext(ctx)
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Workspace descriptor unreadable, using defaults.", "path", path, "error", err)
		return DefaultWorkspace()
	}
	var ws Workspace
	if ok := decode(ctx, path, raw, &ws); !ok {
		return DefaultWorkspace()
	}
	logger.Debug("Workspace descriptor loaded.", "path", path)
	return ws
}

// decode strips comments and trailing commas, then unmarshals into v.
// On failure it logs the error and a short preview of the offending input
// and reports false.
func decode(ctx context.Context, path string, raw []byte, v any) bool {
	logger := ctxlog.FromContext(ctx)
	std, err := hujson.Standardize(raw)
	if err != nil {
		logger.Warn("Descriptor is not valid JSON-with-comments, using defaults.",
			"path", path, "error", err, "preview", preview(raw))
		return false
	}
	if err := json.Unmarshal(std, v); err != nil {
		logger.Warn("Descriptor does not match the expected shape, using defaults.",
			"path", path, "error", err, "preview", preview(std))
		return false
	}
	return true
}

func preview(raw []byte) string {
	if len(raw) > previewLen {
		raw = raw[:previewLen]
	}
	return string(raw)
}
