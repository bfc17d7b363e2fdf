package index

import (
	"path/filepath"
	"strings"
)

// FallbackName infers a qualified name for a framework file that carries
// no registration call, from its path relative to the root. Known prefix
// segments ("src", and the "packages/<name>/src" nesting) are stripped and
// the rest joined with dots:
//
//	<root>/src/data/Store.js            -> data.Store
//	<root>/packages/core/src/Ajax.js    -> Ajax
//
// It returns "" when no usable segments remain. Application files never
// receive a fallback name.
func FallbackName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	rel = strings.TrimSuffix(rel, ".js")
	segments := strings.Split(filepath.ToSlash(rel), "/")

	if len(segments) >= 3 && segments[0] == "packages" {
		segments = segments[2:]
	}
	if len(segments) > 0 && segments[0] == "src" {
		segments = segments[1:]
	}
	for _, s := range segments {
		if s == "" || s == "." || s == ".." {
			return ""
		}
	}
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, ".")
}
