package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	m "wordguess.dev/pkg/wordguess/internal/model"
)

func sampleTree() map[string]any {
	return map[string]any{
		"guess:0": "slate",
		"-----":   "crony",
		"mmmmm":   "slate",
		"--w-m": map[string]any{
			"guess:1": "grace",
			"-m-mm":   "prune",
		},
	}
}

func TestParseTreeFormat(t *testing.T) {
	tests := []struct {
		name string
		want TreeFormat
	}{
		{name: "", want: FormatJSON},
		{name: "json", want: FormatJSON},
		{name: " YAML ", want: FormatYAML},
		{name: "yml", want: FormatYAML},
	}

	for _, tt := range tests {
		got, err := ParseTreeFormat(tt.name)
		if err != nil {
			t.Fatalf("ParseTreeFormat(%q) error = %v", tt.name, err)
		}

		if got != tt.want {
			t.Errorf("ParseTreeFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if _, err := ParseTreeFormat("toml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseTreeFormat(toml) error = %v, want ErrUnknownFormat", err)
	}
}

func TestLocalTreeStore_SaveLoad(t *testing.T) {
	for _, tc := range []struct {
		format TreeFormat
		file   string
	}{
		{format: FormatJSON, file: "tree.json"},
		{format: FormatYAML, file: "tree.yaml"},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			store := NewLocalTreeStore()
			path := m.Path(filepath.Join(t.TempDir(), "out", tc.file))

			if err := store.Save(context.Background(), path, tc.format, sampleTree()); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := store.Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if !reflect.DeepEqual(got, sampleTree()) {
				t.Fatalf("Load() = %#v, want %#v", got, sampleTree())
			}
		})
	}
}

func TestLocalTreeStore_LoadPlainWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opening.txt")
	writeTestFile(t, path, "slate\n")

	got, err := NewLocalTreeStore().Load(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := map[string]any{"guess:0": "slate"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load() = %v, want %v", got, want)
	}
}

func TestLocalTreeStore_LoadErrors(t *testing.T) {
	store := NewLocalTreeStore()

	if _, err := store.Load(context.Background(), m.Path(filepath.Join(t.TempDir(), "none.json"))); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load() error = %v, want os.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	writeTestFile(t, path, "{\"guess:0\": ")

	if _, err := store.Load(context.Background(), m.Path(path)); err == nil {
		t.Fatalf("Load() expected decode error")
	}
}

func TestLocalTreeStore_EncodeUnknownFormat(t *testing.T) {
	_, err := NewLocalTreeStore().Encode("toml", sampleTree())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Encode() error = %v, want ErrUnknownFormat", err)
	}
}

func TestLocalTreeStore_Diff(t *testing.T) {
	store := NewLocalTreeStore()
	path := m.Path(filepath.Join(t.TempDir(), "tree.yaml"))

	diff, err := store.Diff(context.Background(), path, FormatYAML, sampleTree())
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}

	if !strings.Contains(diff, "+guess:0: slate") {
		t.Fatalf("Diff() against missing file = %q, want additions", diff)
	}

	if err := store.Save(context.Background(), path, FormatYAML, sampleTree()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	diff, err = store.Diff(context.Background(), path, FormatYAML, sampleTree())
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}

	if diff != "" {
		t.Fatalf("Diff() of identical tree = %q, want empty", diff)
	}

	changed := sampleTree()
	changed["guess:0"] = "crane"

	diff, err = store.Diff(context.Background(), path, FormatYAML, changed)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}

	if !strings.Contains(diff, "-guess:0: slate") || !strings.Contains(diff, "+guess:0: crane") {
		t.Fatalf("Diff() = %q, want the changed guess", diff)
	}
}
