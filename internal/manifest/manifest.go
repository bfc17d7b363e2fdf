package manifest

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// Asset is one emitted artifact entry in the manifest.
type Asset struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	Size    int    `json:"size"`
}

// Manifest is the build manifest document. It is derived from the final
// artifact bytes and never mutated after creation.
type Manifest struct {
	ID      string  `json:"id"`
	Created string  `json:"created"`
	JS      []Asset `json:"js"`
	CSS     []Asset `json:"css"`
}

// BuildID returns the first 8 hex characters of the digest of the
// concatenated final JS and CSS bytes. Identical output bytes always
// yield the identical id.
func BuildID(js, css []byte) string {
	h := md5.New()
	h.Write(js)
	h.Write(css)
	return hex.EncodeToString(h.Sum(nil))[:8]
}

// assetVersion is the per-artifact content version: the same digest
// family as the build id, over just that artifact's bytes.
func assetVersion(blob []byte) string {
	sum := md5.Sum(blob)
	return hex.EncodeToString(sum[:])[:8]
}

// New derives the manifest for the final artifact bytes. css may be nil
// when the build has no stylesheets.
func New(id string, js, css []byte, now time.Time) Manifest {
	m := Manifest{
		ID:      id,
		Created: now.UTC().Format(time.RFC3339),
		JS: []Asset{{
			Path:    id + "/app.js",
			Version: assetVersion(js),
			Size:    len(js),
		}},
		CSS: []Asset{},
	}
	if len(css) > 0 {
		m.CSS = append(m.CSS, Asset{
			Path:    id + "/app.css",
			Version: assetVersion(css),
			Size:    len(css),
		})
	}
	return m
}
