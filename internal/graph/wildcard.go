package graph

import (
	"strings"

	"github.com/vk/classpack/internal/index"
)

// ExpandWildcards replaces every wildcard dependency (trailing ".*") with
// the sorted set of indexed names under its prefix. The match requires a
// "." boundary: "A.sub.*" matches "A.sub.X" but not "A.subextra.X".
// Concrete names pass through in place; expansion preserves list order
// and drops duplicates introduced by overlapping wildcards.
func ExpandWildcards(deps []string, idx *index.FileIndex) []string {
	expanded := false
	for _, dep := range deps {
		if strings.HasSuffix(dep, ".*") {
			expanded = true
			break
		}
	}
	if !expanded {
		return deps
	}

	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, dep := range deps {
		if !strings.HasSuffix(dep, ".*") {
			add(dep)
			continue
		}
		prefix := strings.TrimSuffix(dep, "*")
		for _, name := range idx.Names() {
			if strings.HasPrefix(name, prefix) {
				add(name)
			}
		}
	}
	return out
}
