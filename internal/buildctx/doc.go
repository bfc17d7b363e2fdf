// Package buildctx holds the shared state of a single build pass: the
// bounded source content cache and the diagnostics sink. A Context is
// created by the orchestrator, threaded through every stage as an argument,
// and discarded when the build finishes. It is never shared across builds,
// so stages may treat it as single-writer.
package buildctx
