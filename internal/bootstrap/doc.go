// Package bootstrap locates or synthesizes the framework core files that
// must load before any application class. Three tiers, in preference
// order: a prebuilt framework bundle on a conventional name, a minimal
// bootstrap synthesized from the framework's critical sources, and an
// embedded fallback providing only the bare class primitives. The
// resolver itself never fails; an empty result is the orchestrator's
// problem.
package bootstrap
