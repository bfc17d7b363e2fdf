package graph

import "github.com/vk/classpack/internal/index"

// RequiredFile is one file the bundle must contain, with its resolved
// dependency names. Dependencies are always concrete qualified names;
// wildcards are expanded before a RequiredFile is recorded.
type RequiredFile struct {
	Name         string
	Path         string
	Origin       index.Origin
	Dependencies []string
}

// Result is the outcome of one graph build.
type Result struct {
	// RequiredNames is the set of every qualified name the traversal
	// decided to include.
	RequiredNames map[string]bool
	// RequiredFiles lists the included files in discovery order,
	// de-duplicated by qualified name and by file path.
	RequiredFiles []RequiredFile
}

// Options adjusts a graph build.
type Options struct {
	// EntryPath, when non-empty, is the known on-disk location of the
	// entry class. If the entry name is missing from the index, the
	// builder still emits that one file as a dependency-free required
	// set instead of an empty result.
	EntryPath string
}
