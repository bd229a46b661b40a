package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// Report aggregates component health check results. Check values are
// "ok" or "error".
type Report struct {
	Status Status
	Checks map[string]string
}

// Service coordinates health checks over the two external collaborators.
type Service struct {
	store     StorePinger
	embedding EmbeddingChecker
}

// New creates a Service. embedding can be nil.
func New(store StorePinger, embedding EmbeddingChecker) *Service {
	return &Service{store: store, embedding: embedding}
}

// Check probes the match backend and the embedding provider.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]string)

	if err := s.store.Ping(ctx); err != nil {
		checks["backend"] = "error"
	} else {
		checks["backend"] = "ok"
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			checks["embedding"] = "error"
		} else {
			checks["embedding"] = "ok"
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == "error" {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
