package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/buildpeer/unimatch/internal/db"
)

// EnsureIndex creates the classification code index if it is missing.
// Schema: code TAG, title TEXT, type TAG, depth NUMERIC, vector HNSW/COSINE.
func (s *Store) EnsureIndex(ctx context.Context, idx db.IndexSpec) error {
	if idx.Name == "" {
		return fmt.Errorf("index name is required")
	}
	if idx.Dimensions <= 0 {
		return fmt.Errorf("vector dimensions must be positive")
	}

	args := []string{
		idx.Name,
		"ON", "HASH",
		"PREFIX", "1", idx.Prefix,
		"SCHEMA",
		"code", "TAG",
		"title", "TEXT",
		"type", "TAG",
		"depth", "NUMERIC",
		"vector", "VECTOR", "HNSW", "6",
		"TYPE", "FLOAT32",
		"DIM", strconv.Itoa(idx.Dimensions),
		"DISTANCE_METRIC", "COSINE",
	}

	cmd := s.b().Arbitrary("FT.CREATE").Args(args...).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return nil
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}
