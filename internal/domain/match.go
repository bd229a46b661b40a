package domain

import "fmt"

// BackendMatch is one record returned by the similarity-search backend,
// keyed by the request id it answers.
type BackendMatch struct {
	RequestID  int
	Code       string
	Title      string
	Similarity float64
}

// MatchRequest is the backend call payload: four parallel arrays where index
// k across all four refers to the same query. Vectors carry the transport
// encoding produced by EncodeVector, not native float slices.
type MatchRequest struct {
	RequestIDs []int
	Vectors    []string
	Types      []string
	Depths     []int
}

// ResultRecord is the per-query output unit of the pipeline.
type ResultRecord struct {
	RequestID  int
	Match      string
	Confidence float64
}

// Placeholder match strings. The distinction matters to callers: an embedding
// failure is likely transient and worth retrying, a no-match is a business
// outcome.
const (
	NoMatchText         = "No match found:0.00"
	EmbeddingFailedText = "Embedding failed:0.00"
)

// FormatMatch renders the colon-delimited match string. The two-decimal
// score format is part of the wire contract; keep all formatting here.
func FormatMatch(code, title string, similarity float64) string {
	return fmt.Sprintf("%s:%s:%.2f", code, title, similarity)
}

// NoMatch builds the placeholder record for a query the backend returned
// nothing for.
func NoMatch(requestID int) ResultRecord {
	return ResultRecord{RequestID: requestID, Match: NoMatchText}
}

// EmbeddingFailed builds the placeholder record for a query whose embedding
// never materialized and which therefore never reached the backend.
func EmbeddingFailed(requestID int) ResultRecord {
	return ResultRecord{RequestID: requestID, Match: EmbeddingFailedText}
}
