package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/buildpeer/unimatch/internal/db"
)

// SearchKNNBatch runs one FT.SEARCH per query, pipelined into a single
// DoMulti round trip. Results come back in query order. The whole batch
// fails if any command fails: a partial answer cannot be reconciled.
func (s *Store) SearchKNNBatch(ctx context.Context, qs []db.KNNQuery) ([]db.SearchResult, error) {
	if len(qs) == 0 {
		return nil, nil
	}

	cmds := make([]rueidis.Completed, len(qs))
	for i, q := range qs {
		if q.IndexName == "" {
			return nil, fmt.Errorf("index name is required")
		}
		if q.Blob == "" {
			return nil, fmt.Errorf("query vector is required")
		}
		if q.K <= 0 {
			return nil, fmt.Errorf("k must be positive")
		}
		cmds[i] = s.b().Arbitrary("FT.SEARCH").Args(knnArgs(q)...).Build()
	}

	results := make([]db.SearchResult, len(qs))
	for i, resp := range s.client.DoMulti(ctx, cmds...) {
		raw, err := resp.ToArray()
		if err != nil {
			return nil, &db.Error{Op: db.OpSearch, Err: err}
		}
		parsed, err := parseKNNResult(raw)
		if err != nil {
			return nil, &db.Error{Op: db.OpSearch, Err: err}
		}
		results[i] = parsed
	}

	return results, nil
}

// knnArgs builds the FT.SEARCH argument list for one query:
//
//	(@type:{T} @depth:[1 d])=>[KNN k @vector $BLOB]
func knnArgs(q db.KNNQuery) []string {
	filter := fmt.Sprintf("(@type:{%s} @depth:[1 %d])", escapeTag(q.TypeFilter), q.MaxDepth)
	queryStr := fmt.Sprintf("%s=>[KNN %d @vector $BLOB]", filter, q.K)

	args := []string{q.IndexName, queryStr}
	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}
	args = append(args, "PARAMS", "2", "BLOB", q.Blob, "DIALECT", "2")
	return args
}

// parseKNNResult parses the RESP2 FT.SEARCH reply: [total, key1, fields1, ...].
func parseKNNResult(raw []rueidis.RedisMessage) (db.SearchResult, error) {
	if len(raw) == 0 {
		return db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return db.SearchResult{}, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fieldArr, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entry := db.SearchEntry{Key: key, Fields: make(map[string]string, len(fieldArr)/2)}
		for j := 0; j+1 < len(fieldArr); j += 2 {
			k, kerr := fieldArr[j].ToString()
			v, verr := fieldArr[j+1].ToString()
			if kerr != nil || verr != nil {
				continue
			}
			entry.Fields[k] = v
		}

		if scoreStr, ok := entry.Fields["__vector_score"]; ok {
			if d, err := strconv.ParseFloat(scoreStr, 64); err == nil {
				entry.Score = max(0, 1.0-d) // cosine distance → similarity, clamped to [0,1]
			}
			delete(entry.Fields, "__vector_score")
		}

		entries = append(entries, entry)
	}

	return db.SearchResult{Total: int(total), Entries: entries}, nil
}

// escapeTag escapes RediSearch query syntax inside a tag value.
func escapeTag(s string) string {
	return tagEscaper.Replace(s)
}

var tagEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	` `, `\ `,
)
