package buildctx

import (
	"context"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vk/classpack/internal/ctxlog"
)

// cacheSize bounds the number of source files held in memory at once.
// Framework trees run to a few thousand files; anything beyond the bound is
// simply re-read on the next access.
const cacheSize = 4096

// Context carries the pass-scoped shared state of one build: a bounded
// content cache and the diagnostics sink. It replaces what used to be
// ambient global caches, so independent builds cannot interfere.
type Context struct {
	cache *lru.Cache[string, []byte]
	diags *Sink
}

// New creates an empty build context.
func New() *Context {
	cache, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}
	return &Context{
		cache: cache,
		diags: &Sink{},
	}
}

// Read returns the raw bytes of the file at path, serving repeated reads
// from the cache. The bytes must not be mutated by callers.
func (c *Context) Read(path string) ([]byte, error) {
	if data, ok := c.cache.Get(path); ok {
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c.cache.Add(path, data)
	return data, nil
}

// Diag records one diagnostic and mirrors it to the context logger at
// warn level.
func (c *Context) Diag(ctx context.Context, kind Kind, msg string, args ...any) {
	c.diags.Add(kind, msg)
	logArgs := append([]any{"kind", kind}, args...)
	ctxlog.FromContext(ctx).Warn(msg, logArgs...)
}

// Diagnostics returns a snapshot of all recorded diagnostics in order.
func (c *Context) Diagnostics() []Diagnostic {
	return c.diags.All()
}

// CountByKind returns how many diagnostics of the given kind were recorded.
func (c *Context) CountByKind(kind Kind) int {
	return c.diags.Count(kind)
}
