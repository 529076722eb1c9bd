// Package fonts resolves the regular and bold font resources used by the
// engine and derives the fixed table of named text styles every later
// stage shares.
package fonts

import (
	"context"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader reads a font resource by path. The default loader reads from
// disk; tests substitute their own.
type Loader func(path string) ([]byte, error)

// Cache is a process-wide font byte cache keyed by resource path. Loading
// is the engine's only I/O suspension point, so concurrent renders share
// one in-flight fetch per key instead of re-reading the resource.
type Cache struct {
	load  Loader
	group singleflight.Group

	mu    sync.Mutex
	files map[string][]byte
}

// NewCache creates a cache backed by the filesystem.
func NewCache() *Cache {
	return NewCacheWithLoader(os.ReadFile)
}

// NewCacheWithLoader creates a cache with an injected loader so tests can
// substitute fake font resources.
func NewCacheWithLoader(load Loader) *Cache {
	return &Cache{
		load:  load,
		files: make(map[string][]byte),
	}
}

// Load returns the cached bytes for path, fetching them at most once per
// key even under concurrent callers.
func (c *Cache) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if data, ok := c.files[path]; ok {
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	result, err, _ := c.group.Do(path, func() (interface{}, error) {
		data, err := c.load(path)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.files[path] = data
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}
