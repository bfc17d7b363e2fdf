// Package config loads the two on-disk configuration files of a build:
// the application descriptor (app.json) and the workspace descriptor
// (workspace.json). Both are JSON with // and /* */ comments permitted.
// Loading is deliberately forgiving: a file that cannot be parsed is
// reported and replaced by built-in defaults, it never aborts a build.
package config
