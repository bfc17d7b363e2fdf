// Package jsparse wraps tree-sitter parsing of application and framework
// sources. It exposes just enough of the syntax tree for the bundler:
// locating the single class-registration call in a file and reading the
// literal string and array values out of its configuration object. Nothing
// here evaluates code; non-literal values are ignored.
package jsparse
