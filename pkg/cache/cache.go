// Package cache provides a content-addressed artifact cache.
//
// The render pipeline keys artifacts by the hash of the graph document
// they were produced from, so re-rendering an unchanged graph is a read
// from disk instead of a graphviz run.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
// Rendering is deterministic for a given document, so the TTL mainly
// bounds disk usage rather than freshness.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is the storage interface used by the render pipeline.
type Cache interface {
	// Get returns the cached data for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact.
// contentHash is the hash of the serialized graph document.
func ArtifactKey(contentHash, format string) string {
	return hashKey("artifact", contentHash, format)
}
