package match

import (
	"context"

	"github.com/buildpeer/unimatch/internal/domain"
)

// Embedder vectorizes a sub-batch of texts in a single provider call.
// Implementations must either return one vector per input text, in input
// order, or an error; they never return a short result.
type Embedder interface {
	BatchEmbed(ctx context.Context, texts []string) ([][]float32, error)
}

// Matcher resolves embedded queries against the similarity-search backend
// in one call. A returned error means no query's outcome is known.
type Matcher interface {
	Match(ctx context.Context, req domain.MatchRequest) ([]domain.BackendMatch, error)
}
