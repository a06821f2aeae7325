// Package cache provides artifact caching for repeated runs.
//
// Chart rendering is deterministic in the cleaned dataset, so PNG artifacts
// can be reused across reruns of the same file. Keys are derived from a
// content hash of the cleaned records plus the chart parameters; any change
// to the data produces a different key.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered chart artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is the storage interface for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether it was a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKey builds the cache key for one chart artifact. datasetHash is
// the content hash of the cleaned records; kind and column identify what was
// drawn from them. Width and height participate too, so a run with different
// chart dimensions never reuses a PNG of the old size.
func ArtifactKey(datasetHash, kind, column string, width, height int) string {
	return hashKey("artifact", datasetHash, kind, column, width, height)
}
