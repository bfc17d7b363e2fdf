// Package graph builds the transitive required-file set of a build from
// its entry class. The traversal is cycle-tolerant and degrades rather
// than fails: unresolved names, duplicate registrations and circular
// references are recorded as diagnostics and skipped, so a build always
// produces the largest set it can justify.
package graph
