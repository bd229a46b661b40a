package db

// KNNQuery is the input for one vector similarity lookup.
type KNNQuery struct {
	IndexName    string
	Blob         string // transport-encoded query vector (FT.SEARCH BLOB param)
	TypeFilter   string // tag filter on the classification table, already upper-cased
	MaxDepth     int    // inclusive upper bound on code depth
	K            int
	ReturnFields []string
}

// SearchResult is the output of one search command.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// IndexSpec describes the classification code index schema.
type IndexSpec struct {
	Name       string
	Prefix     string
	Dimensions int
}
