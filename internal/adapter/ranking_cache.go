package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "wordguess.dev/pkg/wordguess/internal/model"
	"wordguess.dev/pkg/wordguess/pkg"
)

// RankingCache stores score tables of expensive scans under a fingerprint key.
type RankingCache interface {
	Load(ctx context.Context, dir m.Path, key string) (m.ScoreTable, bool, error)
	Save(ctx context.Context, dir m.Path, key string, table m.ScoreTable) error
}

// GobRankingCache keeps one gob spill file per key.
type GobRankingCache struct{}

// NewGobRankingCache constructs a GobRankingCache.
func NewGobRankingCache() *GobRankingCache {
	return &GobRankingCache{}
}

func cachePath(dir m.Path, key string) string {
	return filepath.Join(string(dir), key+".gob")
}

// Load returns the table stored for key, or false when there is none.
func (c *GobRankingCache) Load(ctx context.Context, dir m.Path, key string) (m.ScoreTable, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path := cachePath(dir, key)

	spill, err := pkg.OpenFileSpill[m.Score](path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("open cached ranking: %w", err)
	}

	defer spill.Close()

	table := make(m.ScoreTable, 0, spill.Len())

	err = spill.Range(func(_ uint64, score m.Score) error {
		table = append(table, score)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read cached ranking: %w", err)
	}

	return table, true, nil
}

// Save writes the table for key. The file appears atomically.
func (c *GobRankingCache) Save(ctx context.Context, dir m.Path, key string, table m.ScoreTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	spill, err := pkg.NewFileSpill[m.Score](string(dir), key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}

	if err := spill.AppendBatch(table); err != nil {
		_ = spill.Close()
		removeQuietly(spill.Path())

		return fmt.Errorf("write cache file: %w", err)
	}

	if err := spill.Close(); err != nil {
		removeQuietly(spill.Path())
		return fmt.Errorf("close cache file: %w", err)
	}

	if err := os.Rename(spill.Path(), cachePath(dir, key)); err != nil {
		removeQuietly(spill.Path())
		return fmt.Errorf("publish cache file: %w", err)
	}

	slog.Debug("cached ranking", "dir", dir, "key", key, "guesses", len(table))

	return nil
}

func removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to remove temporary cache file", "path", path, "error", err)
	}
}
