// Package adapter contains the I/O adapters used by the wordguess workflow.
package adapter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	m "wordguess.dev/pkg/wordguess/internal/model"
)

// WordListAdapter supplies word lists. Lines are returned in file order with
// surrounding whitespace removed; blank lines are skipped. Nothing else is
// validated.
type WordListAdapter interface {
	Load(ctx context.Context, path m.Path) ([]m.Word, error)
}

// LocalWordListAdapter reads word lists from the local file system.
type LocalWordListAdapter struct{}

// NewLocalWordListAdapter constructs a LocalWordListAdapter.
func NewLocalWordListAdapter() *LocalWordListAdapter {
	return &LocalWordListAdapter{}
}

// Load reads one word per line from path.
func (a *LocalWordListAdapter) Load(ctx context.Context, path m.Path) ([]m.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("Failed to close word list", "path", path, "error", err)
		}
	}()

	var words []m.Word

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		words = append(words, m.Word(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}

	slog.Debug("loaded word list", "path", path, "words", len(words))

	return words, nil
}
