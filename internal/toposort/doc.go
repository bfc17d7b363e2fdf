// Package toposort orders the required application and framework files so
// that every file loads after its dependencies. Cycles do not fail the
// sort: the closing back-edge is dropped with a diagnostic and the result
// is a best-effort linearization for the affected classes.
package toposort
