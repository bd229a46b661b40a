package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/buildpeer/unimatch/internal/domain"
	healthuc "github.com/buildpeer/unimatch/internal/usecase/health"
	matchuc "github.com/buildpeer/unimatch/internal/usecase/match"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeBackendUnavailable = "backend_unavailable"
	codeEmbeddingProvider  = "embedding_provider_error"
	codeInternalError      = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the match pipeline over HTTP.
type Server struct {
	match         *matchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(match *matchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		match:  match,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
		// Backend failure detail is reported verbatim: the caller needs it
		// to distinguish an unreachable index from everything else.
		detailHandler(domain.ErrBackendUnavailable, http.StatusBadGateway, codeBackendUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProvider),
	}
	return s
}

// matchQuery is one inbound query. request_id and depth are optional.
type matchQuery struct {
	RequestID    *int   `json:"request_id,omitempty"`
	Query        string `json:"query"`
	UniclassType string `json:"uniclass_type"`
	Depth        *int   `json:"depth,omitempty"`
}

// matchRequest is the POST /api/v1/match body.
type matchRequest struct {
	Queries []matchQuery `json:"queries"`
}

// matchResult is one per-query output record.
type matchResult struct {
	RequestID  int     `json:"request_id"`
	Match      string  `json:"match"`
	Confidence float64 `json:"confidence"`
}

// matchResponse is the success envelope.
type matchResponse struct {
	Success   bool          `json:"success"`
	Processed int           `json:"processed"`
	Results   []matchResult `json:"results"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MatchBatch handles POST /api/v1/match.
func (s *Server) MatchBatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Queries) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			"queries must be a non-empty array")
		return
	}

	queries := make([]domain.Query, len(req.Queries))
	for i, q := range req.Queries {
		queries[i] = domain.Query{
			RequestID:    q.RequestID,
			Text:         q.Query,
			UniclassType: q.UniclassType,
			Depth:        q.Depth,
		}
	}

	records, err := s.match.Match(r.Context(), queries)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]matchResult, len(records))
	for i, rec := range records {
		results[i] = matchResult{
			RequestID:  rec.RequestID,
			Match:      rec.Match,
			Confidence: rec.Confidence,
		}
	}

	writeJSON(w, http.StatusOK, matchResponse{
		Success:   true,
		Processed: len(results),
		Results:   results,
	})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))

	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}

	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// sentinelHandler matches a single sentinel error and reports only the
// sentinel's own message, never wrapped internals.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// detailHandler matches a sentinel but reports the full error chain text.
func detailHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}
