// Package index builds the qualified-name to file-location index of one
// build pass. Framework roots, application roots and extra package roots
// are walked once; each source file contributes at most one binding. The
// resulting FileIndex is read-only for the rest of the build.
package index
