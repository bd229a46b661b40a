package match

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/buildpeer/unimatch/internal/domain"
	"github.com/buildpeer/unimatch/internal/logger"
	"github.com/buildpeer/unimatch/internal/metrics"
)

// DefaultChunkSize is the provider-imposed maximum texts per embedding call.
const DefaultChunkSize = 100

// Service runs the batch match pipeline: chunked concurrent embedding,
// a single backend call for the successfully embedded queries, and
// reconciliation of backend records onto the original batch.
//
// Duplicate request ids (explicit duplicates, or a mix of explicit ids and
// positional defaults that collide) are not rejected; the last backend
// record for an id wins in the lookup. Every input position still yields
// exactly one output record.
type Service struct {
	embed     Embedder
	matcher   Matcher
	chunkSize int
}

// New creates a match service.
func New(embed Embedder, matcher Matcher) *Service {
	return &Service{embed: embed, matcher: matcher, chunkSize: DefaultChunkSize}
}

// WithChunkSize overrides the embedding sub-batch size.
func (s *Service) WithChunkSize(size int) *Service {
	if size > 0 {
		s.chunkSize = size
	}
	return s
}

// Match resolves a batch of queries to one ResultRecord each. The result
// slice always has the same length and order as the input. Per-query
// embedding failures are absorbed into placeholder records; a backend call
// failure aborts the whole invocation.
func (s *Service) Match(ctx context.Context, queries []domain.Query) ([]domain.ResultRecord, error) {
	if len(queries) == 0 {
		return []domain.ResultRecord{}, nil
	}

	resolved := domain.Resolve(queries)

	texts := make([]string, len(resolved))
	for i, q := range resolved {
		texts[i] = q.Text
	}

	embeddings := s.embedAll(ctx, texts)

	req, survivors := buildMatchRequest(resolved, embeddings)

	byID := make(map[int]domain.BackendMatch, len(survivors))
	if len(survivors) > 0 {
		matches, err := s.matcher.Match(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("match backend: %w", err)
		}
		for _, m := range matches {
			byID[m.RequestID] = m
		}
	}

	results := reconcile(resolved, embeddings, byID)
	for _, r := range results {
		switch r.Match {
		case domain.EmbeddingFailedText:
			metrics.MatchQueriesTotal.WithLabelValues("embedding_failed").Inc()
		case domain.NoMatchText:
			metrics.MatchQueriesTotal.WithLabelValues("no_match").Inc()
		default:
			metrics.MatchQueriesTotal.WithLabelValues("matched").Inc()
		}
	}
	return results, nil
}

// embedAll fans out one embedding call per chunk and waits for all of them.
// Each goroutine writes into its own disjoint window of the output slice, so
// no synchronization beyond the barrier is needed. A failed chunk leaves nil
// markers in its window and never disturbs sibling chunks.
func (s *Service) embedAll(ctx context.Context, texts []string) [][]float32 {
	out := make([][]float32, len(texts))

	var wg sync.WaitGroup
	offset := 0
	for _, chunk := range chunkTexts(texts, s.chunkSize) {
		dst := out[offset : offset+len(chunk)]
		offset += len(chunk)

		wg.Add(1)
		go func(chunk []string, dst [][]float32) {
			defer wg.Done()
			s.embedChunk(ctx, chunk, dst)
		}(chunk, dst)
	}
	wg.Wait()

	return out
}

// embedChunk fetches embeddings for one chunk. Its contract is total: any
// provider error degrades to nil markers for the whole chunk, logged for
// operators but never surfaced to the caller.
func (s *Service) embedChunk(ctx context.Context, chunk []string, dst [][]float32) {
	vecs, err := s.embed.BatchEmbed(ctx, chunk)
	if err != nil {
		logger.FromContext(ctx).Warn("embedding chunk failed",
			zap.Int("chunk_size", len(chunk)),
			zap.Error(err),
		)
		metrics.MatchChunksTotal.WithLabelValues("error").Inc()
		return
	}
	if len(vecs) != len(chunk) {
		logger.FromContext(ctx).Warn("embedding chunk returned wrong length",
			zap.Int("chunk_size", len(chunk)),
			zap.Int("got", len(vecs)),
		)
		metrics.MatchChunksTotal.WithLabelValues("error").Inc()
		return
	}
	copy(dst, vecs)
	metrics.MatchChunksTotal.WithLabelValues("success").Inc()
}

// buildMatchRequest filters out queries without an embedding and builds the
// four parallel arrays of the backend payload. survivors holds the original
// positions of the queries included in the payload.
func buildMatchRequest(
	resolved []domain.ResolvedQuery, embeddings [][]float32,
) (domain.MatchRequest, []int) {
	req := domain.MatchRequest{}
	survivors := make([]int, 0, len(resolved))

	for i, q := range resolved {
		if embeddings[i] == nil {
			continue
		}
		req.RequestIDs = append(req.RequestIDs, q.RequestID)
		req.Vectors = append(req.Vectors, domain.EncodeVector(embeddings[i]))
		req.Types = append(req.Types, q.UniclassType)
		req.Depths = append(req.Depths, q.Depth)
		survivors = append(survivors, i)
	}

	return req, survivors
}

// reconcile maps backend records onto every original query position.
func reconcile(
	resolved []domain.ResolvedQuery,
	embeddings [][]float32,
	byID map[int]domain.BackendMatch,
) []domain.ResultRecord {
	results := make([]domain.ResultRecord, len(resolved))
	for i, q := range resolved {
		if embeddings[i] == nil {
			results[i] = domain.EmbeddingFailed(q.RequestID)
			continue
		}
		m, ok := byID[q.RequestID]
		if !ok {
			results[i] = domain.NoMatch(q.RequestID)
			continue
		}
		results[i] = domain.ResultRecord{
			RequestID:  q.RequestID,
			Match:      domain.FormatMatch(m.Code, m.Title, m.Similarity),
			Confidence: m.Similarity,
		}
	}
	return results
}
