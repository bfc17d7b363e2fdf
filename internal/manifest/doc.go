// Package manifest derives the content-addressed build id, the build
// manifest document, and writes every output artifact: the assembled
// script and stylesheet under the id-named directory, the manifest JSON,
// the small bootstrap loader, and the stylesheet/script tags injected
// into the HTML entry file.
package manifest
