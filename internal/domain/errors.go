package domain

import "errors"

var (
	// ErrInvalidInput signals a malformed or empty match request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrBackendUnavailable signals a failed call to the match backend.
	ErrBackendUnavailable = errors.New("match backend unavailable")
)
