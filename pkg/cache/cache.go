// Package cache stores finished render artifacts between invocations.
//
// Rendering a board is cheap but not free (Graphviz netlists and the
// rsvg-convert formats in particular), so the CLI caches finished
// artifacts keyed by a hash of everything that influences the output:
// the layout document, the metrics in effect, and the requested format.
// Because keys are content hashes, a cached artifact can never go
// stale; there is no expiry, only explicit eviction via the cache
// subcommands. Two backends are provided:
//
//   - [FileStore]: directory-backed, for CLI usage (XDG cache dir)
//   - [NullStore]: no-op, for --no-cache and tests
package cache

import "context"

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves an artifact. The second return reports whether the
	// key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an artifact, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes an artifact. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact from the
// inputs that determine it: the layout document hash, the metrics
// hash, and the output format (including the visualization type, e.g.
// "netlist.svg").
func ArtifactKey(docHash, metricsHash, format string) string {
	return hashKey("artifact", docHash, metricsHash, format)
}
