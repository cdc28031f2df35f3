package faq

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = "question\tanswer\n" +
	"How do I return an item?\tYou have 30 days to return any item.\n" +
	"incomplete row\n" +
	"Do you ship internationally?\tWe ship to India only.\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	entries, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// header and the incomplete row are skipped
	if len(entries) != 2 {
		t.Fatalf("Load() = %d entries, want 2", len(entries))
	}
	if entries[0].Question != "How do I return an item?" {
		t.Errorf("first question = %q", entries[0].Question)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("Load() = nil error for missing file")
	}
}

func TestLookup(t *testing.T) {
	entries, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	store := NewStore(entries)

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"how to RETURN an item", "You have 30 days to return any item.", true},
		{"do you ship abroad", "", false},
		{"ship internationally?", "We ship to India only.", true},
		{"a b c", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		entry, ok := store.Lookup(tt.query)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.query, ok, tt.ok)
			continue
		}
		if ok && entry.Answer != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.query, entry.Answer, tt.want)
		}
	}
}
