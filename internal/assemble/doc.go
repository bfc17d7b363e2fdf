// Package assemble concatenates the ordered core and application files
// into one wrapped compilation unit. The output is a single isolating
// function scope with an explicit global binding, a runtime
// duplicate-registration guard, and a trailing verification block that
// reports missing framework primitives. Assembly is pure text work; it
// has no side effects beyond diagnostics.
package assemble
