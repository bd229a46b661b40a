package domain

import "strings"

// DefaultDepth is the Uniclass hierarchy depth used when a query omits it.
const DefaultDepth = 2

// Query is one inbound match query as received from the caller.
// RequestID and Depth are optional on the wire.
type Query struct {
	RequestID    *int
	Text         string
	UniclassType string
	Depth        *int
}

// ResolvedQuery is a Query with every optional field resolved to a concrete
// value. All pipeline stages past ingestion operate on resolved queries only.
type ResolvedQuery struct {
	RequestID    int
	Text         string
	UniclassType string
	Depth        int
}

// Resolve fills in defaults for a batch of queries: a missing request id
// becomes the query's zero-based position, a missing depth becomes
// DefaultDepth, and the uniclass type is upper-cased.
func Resolve(queries []Query) []ResolvedQuery {
	resolved := make([]ResolvedQuery, len(queries))
	for i, q := range queries {
		id := i
		if q.RequestID != nil {
			id = *q.RequestID
		}
		depth := DefaultDepth
		if q.Depth != nil {
			depth = *q.Depth
		}
		resolved[i] = ResolvedQuery{
			RequestID:    id,
			Text:         q.Text,
			UniclassType: strings.ToUpper(q.UniclassType),
			Depth:        depth,
		}
	}
	return resolved
}
