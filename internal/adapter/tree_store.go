package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

// TreeFormat selects the serialization of an exported decision tree.
type TreeFormat string

const (
	// FormatJSON writes indented JSON.
	FormatJSON TreeFormat = "json"
	// FormatYAML writes YAML.
	FormatYAML TreeFormat = "yaml"
)

// ErrUnknownFormat is returned for an unsupported tree format.
var ErrUnknownFormat = errors.New("unknown tree format")

// ParseTreeFormat validates a format name.
func ParseTreeFormat(name string) (TreeFormat, error) {
	switch TreeFormat(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// TreeStore persists exported decision trees and loads them back as openings.
type TreeStore interface {
	Encode(format TreeFormat, tree map[string]any) ([]byte, error)
	Save(ctx context.Context, path m.Path, format TreeFormat, tree map[string]any) error
	Load(ctx context.Context, path m.Path) (map[string]any, error)
	Diff(ctx context.Context, path m.Path, format TreeFormat, tree map[string]any) (string, error)
}

// LocalTreeStore keeps trees in local files.
type LocalTreeStore struct{}

// NewLocalTreeStore constructs a LocalTreeStore.
func NewLocalTreeStore() *LocalTreeStore {
	return &LocalTreeStore{}
}

// Encode serializes tree in format.
func (s *LocalTreeStore) Encode(format TreeFormat, tree map[string]any) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json tree: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("encode yaml tree: %w", err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes tree to path, creating parent directories.
func (s *LocalTreeStore) Save(ctx context.Context, path m.Path, format TreeFormat, tree map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.Encode(format, tree)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("Failed to create tree directory", "path", dir, "error", err)
			return fmt.Errorf("create tree directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		slog.Error("Failed to write tree", "path", path, "error", err)
		return fmt.Errorf("write tree: %w", err)
	}

	slog.Info("wrote decision tree", "path", path, "format", format, "bytes", len(data))

	return nil
}

// Load reads a tree written by Save. JSON is chosen by the .json extension,
// anything else is read as YAML. A file holding a single plain word is
// accepted as a one-guess opening.
func (s *LocalTreeStore) Load(ctx context.Context, path m.Path) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text != "" && !strings.ContainsAny(text, ":{}\n") {
		return map[string]any{m.GuessKey(0): text}, nil
	}

	tree := map[string]any{}

	if strings.EqualFold(filepath.Ext(string(path)), ".json") {
		err = json.Unmarshal(data, &tree)
	} else {
		err = yaml.Unmarshal(data, &tree)
	}

	if err != nil {
		return nil, fmt.Errorf("decode tree %s: %w", path, err)
	}

	return tree, nil
}

// Diff returns a unified diff from the tree stored at path (empty when the
// file does not exist yet) to tree.
func (s *LocalTreeStore) Diff(ctx context.Context, path m.Path, format TreeFormat, tree map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	current, err := s.Encode(format, tree)
	if err != nil {
		return "", err
	}

	previous, err := os.ReadFile(string(path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read previous tree: %w", err)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(string(current)),
		FromFile: string(path),
		ToFile:   string(path) + " (new)",
		Context:  2,
	})
	if err != nil {
		return "", fmt.Errorf("diff tree: %w", err)
	}

	return diff, nil
}
