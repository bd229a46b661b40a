// uniload ingests a Uniclass CSV export (code,title per row) into the match
// backend: it ensures the vector index exists, batch-embeds titles in chunks,
// and writes one hash per code.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/buildpeer/unimatch/internal/config"
	dbpkg "github.com/buildpeer/unimatch/internal/db"
	dbRedis "github.com/buildpeer/unimatch/internal/db/redis"
	"github.com/buildpeer/unimatch/internal/domain"
	logpkg "github.com/buildpeer/unimatch/internal/logger"
	openaiEmb "github.com/buildpeer/unimatch/internal/transport/openai"
)

// codeRow is one Uniclass table entry.
type codeRow struct {
	Code  string
	Title string
	Type  string
	Depth int
}

func main() {
	csvPath := flag.String("csv", "", "path to Uniclass CSV export (code,title)")
	flag.Parse()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if *csvPath == "" {
		logger.Fatal("missing -csv flag")
	}

	rows, err := readRows(*csvPath)
	if err != nil {
		logger.Fatal("read csv", zap.Error(err))
	}
	logger.Info("Loaded rows", zap.Int("count", len(rows)))

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("create store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("backend not ready", zap.Error(err))
	}

	if err := store.EnsureIndex(ctx, dbpkg.IndexSpec{
		Name:       cfg.Matcher.IndexName,
		Prefix:     cfg.Matcher.KeyPrefix,
		Dimensions: cfg.Embedding.Dimensions,
	}); err != nil {
		logger.Fatal("ensure index", zap.Error(err))
	}

	embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})

	start := time.Now()
	written := 0
	chunk := cfg.Embedding.ChunkSize

	for offset := 0; offset < len(rows); offset += chunk {
		end := offset + chunk
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[offset:end]

		texts := make([]string, len(batch))
		for i, r := range batch {
			texts[i] = r.Title
		}

		vecs, err := embedder.BatchEmbed(ctx, texts)
		if err != nil {
			logger.Fatal("embed batch", zap.Int("offset", offset), zap.Error(err))
		}

		for i, r := range batch {
			key := cfg.Matcher.KeyPrefix + r.Code
			err := store.HSet(ctx, key, map[string]string{
				"code":   r.Code,
				"title":  r.Title,
				"type":   r.Type,
				"depth":  strconv.Itoa(r.Depth),
				"vector": domain.EncodeVector(vecs[i]),
			})
			if err != nil {
				logger.Fatal("write document", zap.String("code", r.Code), zap.Error(err))
			}
			written++
		}

		logger.Info("Batch written", zap.Int("offset", offset), zap.Int("written", written))
	}

	logger.Info("Done",
		zap.Int("written", written),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// readRows parses the CSV export. Type and depth are derived from the code:
// "Ss_25_30" has type SS and depth 2 (segments after the table prefix).
func readRows(path string) ([]codeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows []codeRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		if len(rec) < 2 || rec[0] == "" || strings.EqualFold(rec[0], "code") {
			continue
		}

		code := strings.TrimSpace(rec[0])
		parts := strings.Split(code, "_")
		rows = append(rows, codeRow{
			Code:  code,
			Title: strings.TrimSpace(rec[1]),
			Type:  strings.ToUpper(parts[0]),
			Depth: len(parts) - 1,
		})
	}
	return rows, nil
}
