package manifest

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/classpack/internal/ctxlog"
)

// InjectHTML rewrites the HTML entry file in place, inserting stylesheet
// <link> and script <script> tags for the build's artifacts immediately
// before the closing head marker. The marker search is case-insensitive.
// A file without a head section is left untouched with a warning.
func InjectHTML(ctx context.Context, htmlPath string, m Manifest) error {
	logger := ctxlog.FromContext(ctx)
	raw, err := os.ReadFile(htmlPath)
	if err != nil {
		return fmt.Errorf("reading html template %s: %w", htmlPath, err)
	}

	idx := strings.Index(strings.ToLower(string(raw)), "</head>")
	if idx < 0 {
		logger.Warn("HTML template has no closing head marker, tags not injected.", "path", htmlPath)
		return nil
	}

	var tags strings.Builder
	for _, a := range m.CSS {
		fmt.Fprintf(&tags, "    <link rel=\"stylesheet\" href=\"%s\">\n", a.Path)
	}
	for _, a := range m.JS {
		fmt.Fprintf(&tags, "    <script src=\"%s\"></script>\n", a.Path)
	}

	var out []byte
	out = append(out, raw[:idx]...)
	out = append(out, []byte(tags.String())...)
	out = append(out, raw[idx:]...)

	if err := os.WriteFile(htmlPath, out, 0o644); err != nil {
		return fmt.Errorf("writing html entry %s: %w", htmlPath, err)
	}
	logger.Debug("HTML entry updated.", "path", htmlPath, "css", len(m.CSS), "js", len(m.JS))
	return nil
}
