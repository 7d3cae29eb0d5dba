package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLexicon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write lexicon file: %v", err)
	}
	return path
}

func TestOpen_DefaultsOnly(t *testing.T) {
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open with empty path: %v", err)
	}
	snap := store.Snapshot()

	if snap.Version == "" {
		t.Error("default lexicon has no version")
	}
	if len(snap.Topics["security"]) == 0 {
		t.Error("default lexicon has no security vocabulary")
	}
	if len(snap.Cues[CueHedging]) == 0 {
		t.Error("default lexicon has no hedging cues")
	}
	if snap.Thresholds.LengthNorm != 2000 {
		t.Errorf("LengthNorm = %d, want 2000", snap.Thresholds.LengthNorm)
	}
	if snap.Thresholds.MaxSuggestions != 3 {
		t.Errorf("MaxSuggestions = %d, want 3", snap.Thresholds.MaxSuggestions)
	}
	if len(snap.Pricing) == 0 {
		t.Error("default lexicon has no price table")
	}
}

func TestOpen_FileOverridesDefaults(t *testing.T) {
	path := writeLexicon(t, `
version: "team-2025.09"
topics:
  gardening: ["soil", "compost", "pruning"]
thresholds:
  risk_flag_count: 5
pricing:
  in-house-model:
    input_per_million: 1.0
    output_per_million: 2.0
`)
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	snap := store.Snapshot()

	if snap.Version != "team-2025.09" {
		t.Errorf("Version = %q, want team-2025.09", snap.Version)
	}
	if len(snap.Topics["gardening"]) != 3 {
		t.Errorf("gardening vocabulary = %v", snap.Topics["gardening"])
	}
	if snap.Thresholds.RiskFlagCount != 5 {
		t.Errorf("RiskFlagCount = %d, want 5", snap.Thresholds.RiskFlagCount)
	}
	// Untouched thresholds keep their defaults.
	if snap.Thresholds.LengthNorm != 2000 {
		t.Errorf("LengthNorm = %d, want default 2000", snap.Thresholds.LengthNorm)
	}
	if _, ok := snap.Pricing["in-house-model"]; !ok {
		t.Error("file pricing entry not loaded")
	}
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "topics: [unclosed"},
		{"blank version", `version: ""`},
		{"negative length norm", "thresholds:\n  length_norm: -1\n"},
		{"score out of range", "thresholds:\n  score_strong: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLexicon(t, tt.content)
			if _, err := Open(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReload(t *testing.T) {
	path := writeLexicon(t, `version: "v1"`)
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	held := store.Snapshot()

	if err := os.WriteFile(path, []byte(`version: "v2"`), 0o644); err != nil {
		t.Fatalf("rewrite lexicon: %v", err)
	}
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if got := store.Snapshot().Version; got != "v2" {
		t.Errorf("reloaded version = %q, want v2", got)
	}
	// A snapshot taken before the reload is untouched.
	if held.Version != "v1" {
		t.Errorf("held snapshot version = %q, want v1", held.Version)
	}
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	path := writeLexicon(t, `version: "v1"`)
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := os.WriteFile(path, []byte(`version: ""`), 0o644); err != nil {
		t.Fatalf("rewrite lexicon: %v", err)
	}
	if err := store.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if got := store.Snapshot().Version; got != "v1" {
		t.Errorf("version after failed reload = %q, want v1", got)
	}
}
