// Package app wires the build pipeline together: configuration loading,
// source indexing, bootstrap resolution, dependency graph construction,
// topological ordering, bundle assembly, minification and artifact
// writing. It owns the per-build logger and build context, and it is the
// only place that decides which problems are fatal.
package app
