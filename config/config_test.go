package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"nlpwalk/internal/adapter/chunker"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Segment.Backend != "punkt" {
		t.Errorf("expected Backend=punkt, got %s", cfg.Segment.Backend)
	}
	if cfg.Stopwords.Match != "exact" {
		t.Errorf("expected Match=exact, got %s", cfg.Stopwords.Match)
	}
	if cfg.Stem.Algorithm != "porter" {
		t.Errorf("expected Algorithm=porter, got %s", cfg.Stem.Algorithm)
	}
	if len(cfg.Chunk.Grammars) != 1 || cfg.Chunk.Grammars[0].Rules != chunker.DefaultGrammar {
		t.Errorf("expected the default grammar, got %+v", cfg.Chunk.Grammars)
	}
	if cfg.Corpus.TrainDoc != "2005-GWBush.txt" || cfg.Corpus.TargetDoc != "2006-GWBush.txt" {
		t.Errorf("unexpected corpus docs: %+v", cfg.Corpus)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nlpwalk.yaml")

	content := `
stopwords:
  match: lowercase
  extra: [pythonly]
stem:
  algorithm: snowball
tag:
  cache_size: 8
  cache_ttl: 30s
chunk:
  grammars:
    - name: nouns
      rules: "NP: {<NN.*>+}"
    - name: names
      rules: "Chunk: {<NNP>+}"
corpus:
  bolt_path: /tmp/state_union.db
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Stopwords.Match != "lowercase" {
		t.Errorf("expected Match=lowercase, got %s", cfg.Stopwords.Match)
	}
	if len(cfg.Stopwords.Extra) != 1 || cfg.Stopwords.Extra[0] != "pythonly" {
		t.Errorf("expected Extra=[pythonly], got %v", cfg.Stopwords.Extra)
	}
	if cfg.Stem.Algorithm != "snowball" {
		t.Errorf("expected Algorithm=snowball, got %s", cfg.Stem.Algorithm)
	}
	if cfg.Tag.CacheSize != 8 || cfg.Tag.CacheTTL != 30*time.Second {
		t.Errorf("unexpected tag config %+v", cfg.Tag)
	}
	if cfg.Corpus.BoltPath != "/tmp/state_union.db" {
		t.Errorf("expected BoltPath, got %q", cfg.Corpus.BoltPath)
	}
	// Untouched sections keep their defaults.
	if cfg.Corpus.TrainDoc != "2005-GWBush.txt" {
		t.Errorf("expected default TrainDoc, got %s", cfg.Corpus.TrainDoc)
	}

	order, texts := cfg.GrammarTexts()
	if len(order) != 2 || order[0] != "nouns" || order[1] != "names" {
		t.Errorf("unexpected grammar order %v", order)
	}
	if texts["names"] != "Chunk: {<NNP>+}" {
		t.Errorf("unexpected grammar text %q", texts["names"])
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "stem: [unterminated"},
		{"unknown backend", "segment:\n  backend: spacy\n"},
		{"unknown match", "stopwords:\n  match: fuzzy\n"},
		{"unknown stemmer", "stem:\n  algorithm: lancaster\n"},
		{"unknown log level", "logging:\n  level: loud\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
		{"negative cache", "tag:\n  cache_size: -1\n"},
		{"unnamed grammar", "chunk:\n  grammars:\n    - rules: \"NP: {<NN>}\"\n"},
		{"duplicate grammar", "chunk:\n  grammars:\n    - {name: a, rules: \"X: {<NN>}\"}\n    - {name: a, rules: \"Y: {<NN>}\"}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nlpwalk.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureConfigDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(ConfigDir(tmpDir), "config.yaml")

	content := `
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromDir_Empty(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected defaults, got level %s", cfg.Logging.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlpwalk.yaml")
	cfg := DefaultConfig()
	cfg.Stem.Algorithm = "snowball"
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Stem.Algorithm != "snowball" {
		t.Errorf("expected Algorithm=snowball, got %s", loaded.Stem.Algorithm)
	}
}

func TestCorpusDBPath(t *testing.T) {
	path := CorpusDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".nlpwalk", "corpus.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
