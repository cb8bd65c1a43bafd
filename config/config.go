package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"nlpwalk/internal/adapter/chunker"
)

// Config holds all configuration for the walkthrough tool.
type Config struct {
	Segment   SegmentConfig   `yaml:"segment"`
	Stopwords StopwordsConfig `yaml:"stopwords"`
	Stem      StemConfig      `yaml:"stem"`
	Tag       TagConfig       `yaml:"tag"`
	Chunk     ChunkConfig     `yaml:"chunk"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SegmentConfig holds sentence segmentation configuration.
type SegmentConfig struct {
	Backend  string `yaml:"backend"` // "punkt" or "naive"
	Language string `yaml:"language"`
}

// StopwordsConfig holds stopword filtering configuration.
type StopwordsConfig struct {
	Language string   `yaml:"language"`
	Match    string   `yaml:"match"` // "exact" or "lowercase"
	Extra    []string `yaml:"extra"`
}

// StemConfig holds stemming configuration.
type StemConfig struct {
	Algorithm string `yaml:"algorithm"` // "porter" or "snowball"
}

// TagConfig holds tagging configuration. A zero CacheSize disables the
// tag cache.
type TagConfig struct {
	CacheSize int           `yaml:"cache_size"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

// GrammarConfig is one named chunk grammar.
type GrammarConfig struct {
	Name  string `yaml:"name"`
	Rules string `yaml:"rules"`
}

// ChunkConfig holds chunk grammars. The first grammar is the default.
type ChunkConfig struct {
	Grammars []GrammarConfig `yaml:"grammars"`
}

// CorpusConfig locates the corpus collection used by the training stages.
type CorpusConfig struct {
	Dir       string   `yaml:"dir"`
	BoltPath  string   `yaml:"bolt_path"` // packed corpus; takes precedence over dir
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
	TrainDoc  string   `yaml:"train_doc"`
	TargetDoc string   `yaml:"target_doc"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Segment: SegmentConfig{
			Backend:  "punkt",
			Language: "english",
		},
		Stopwords: StopwordsConfig{
			Language: "english",
			Match:    "exact",
		},
		Stem: StemConfig{
			Algorithm: "porter",
		},
		Tag: TagConfig{
			CacheSize: 1024,
			CacheTTL:  10 * time.Minute,
		},
		Chunk: ChunkConfig{
			Grammars: []GrammarConfig{{Name: "default", Rules: chunker.DefaultGrammar}},
		},
		Corpus: CorpusConfig{
			Dir:       "~/nltk_data/corpora/state_union",
			Includes:  []string{"**/*"},
			Excludes:  []string{"**/.git/**"},
			TrainDoc:  "2005-GWBush.txt",
			TargetDoc: "2006-GWBush.txt",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for nlpwalk.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "nlpwalk.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".nlpwalk", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate checks enumerated settings. Grammar rules are checked when they
// are compiled.
func (c *Config) Validate() error {
	switch c.Segment.Backend {
	case "", "punkt", "naive":
	default:
		return fmt.Errorf("segment.backend: unknown backend %q", c.Segment.Backend)
	}
	switch c.Stopwords.Match {
	case "", "exact", "lowercase":
	default:
		return fmt.Errorf("stopwords.match: unknown policy %q", c.Stopwords.Match)
	}
	switch c.Stem.Algorithm {
	case "", "porter", "snowball", "porter2":
	default:
		return fmt.Errorf("stem.algorithm: unknown algorithm %q", c.Stem.Algorithm)
	}
	if c.Logging.Level != "" {
		if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if c.Tag.CacheSize < 0 {
		return fmt.Errorf("tag.cache_size: must not be negative")
	}
	seen := make(map[string]bool)
	for i, g := range c.Chunk.Grammars {
		if g.Name == "" {
			return fmt.Errorf("chunk.grammars[%d]: missing name", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("chunk.grammars: duplicate name %q", g.Name)
		}
		seen[g.Name] = true
	}
	return nil
}

// GrammarTexts returns grammar names in configured order and their rules.
func (c *Config) GrammarTexts() ([]string, map[string]string) {
	order := make([]string, 0, len(c.Chunk.Grammars))
	texts := make(map[string]string, len(c.Chunk.Grammars))
	for _, g := range c.Chunk.Grammars {
		order = append(order, g.Name)
		texts[g.Name] = g.Rules
	}
	return order, texts
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ConfigDir returns the per-project configuration directory.
func ConfigDir(dir string) string {
	return filepath.Join(dir, ".nlpwalk")
}

// EnsureConfigDir ensures the .nlpwalk directory exists.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(ConfigDir(dir), 0755)
}

// CorpusDBPath returns the default location of a packed corpus.
func CorpusDBPath(dir string) string {
	return filepath.Join(ConfigDir(dir), "corpus.db")
}
