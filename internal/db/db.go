// Package db defines the storage contract the repositories consume.
// The similarity-search backend is external; this layer only speaks its
// wire protocol.
package db

import (
	"context"
	"time"
)

// Store is the backend access contract.
type Store interface {
	Ping(ctx context.Context) error
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error

	// SearchKNNBatch runs every query in one pipelined round trip and
	// returns one result per query, in query order. Any individual command
	// failure fails the whole batch.
	SearchKNNBatch(ctx context.Context, qs []KNNQuery) ([]SearchResult, error)

	// EnsureIndex creates the vector index if it does not exist yet.
	EnsureIndex(ctx context.Context, idx IndexSpec) error

	// HSet writes one document as a flat hash.
	HSet(ctx context.Context, key string, fields map[string]string) error
}
