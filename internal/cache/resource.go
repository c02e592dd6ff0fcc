// Package cache provides caching utilities for the SDK.
package cache

import (
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ResourceCache provides LRU caching of raw resource payloads, keyed by
// resource path. Entries are never invalidated; the API's resource model has
// no refresh.
type ResourceCache struct {
	cache *lru.Cache[string, json.RawMessage]
}

// NewResourceCache creates a new LRU cache holding at most maxItems payloads.
func NewResourceCache(maxItems int) (*ResourceCache, error) {
	c, err := lru.New[string, json.RawMessage](maxItems)
	if err != nil {
		return nil, err
	}
	return &ResourceCache{cache: c}, nil
}

// Get retrieves a payload by resource path.
// Returns the payload and true if found, nil and false otherwise.
func (c *ResourceCache) Get(path string) (json.RawMessage, bool) {
	return c.cache.Get(path)
}

// Put adds or updates a payload in the cache.
func (c *ResourceCache) Put(path string, payload json.RawMessage) {
	c.cache.Add(path, payload)
}

// Len returns the current number of items in the cache.
func (c *ResourceCache) Len() int {
	return c.cache.Len()
}
