package match

import (
	"context"
	"fmt"

	"github.com/buildpeer/unimatch/internal/db"
	"github.com/buildpeer/unimatch/internal/domain"
)

// store is the consumer interface for match lookups (ISP).
type store interface {
	SearchKNNBatch(ctx context.Context, qs []db.KNNQuery) ([]db.SearchResult, error)
}

// Repo implements usecase/match.Matcher over the vector index.
type Repo struct {
	store     store
	indexName string
}

// New creates a match repository against the named index.
func New(s store, indexName string) *Repo {
	return &Repo{store: s, indexName: indexName}
}

var returnFields = []string{"code", "title", "__vector_score"}

// Match issues the single backend call for a batch of embedded queries and
// returns zero or one BackendMatch per request id. Index k across the
// request's four arrays refers to the same query; the pipelined backend
// preserves that order, so result k is attributed to RequestIDs[k].
func (r *Repo) Match(ctx context.Context, req domain.MatchRequest) ([]domain.BackendMatch, error) {
	if len(req.RequestIDs) == 0 {
		return nil, nil
	}

	qs := make([]db.KNNQuery, len(req.RequestIDs))
	for k := range req.RequestIDs {
		qs[k] = db.KNNQuery{
			IndexName:    r.indexName,
			Blob:         req.Vectors[k],
			TypeFilter:   req.Types[k],
			MaxDepth:     req.Depths[k],
			K:            1,
			ReturnFields: returnFields,
		}
	}

	results, err := r.store.SearchKNNBatch(ctx, qs)
	if err != nil {
		return nil, fmt.Errorf("search knn batch: %w: %w", err, domain.ErrBackendUnavailable)
	}

	matches := make([]domain.BackendMatch, 0, len(results))
	for k, res := range results {
		for _, entry := range res.Entries {
			matches = append(matches, domain.BackendMatch{
				RequestID:  req.RequestIDs[k],
				Code:       entry.Fields["code"],
				Title:      entry.Fields["title"],
				Similarity: entry.Score,
			})
		}
	}

	return matches, nil
}
