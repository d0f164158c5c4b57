// Package config provides configuration structures for the résumé evidence
// engine: pipeline tuning knobs, server settings, and the section-header and
// keyword vocabularies used by segmentation and keyword extraction.
package config

import (
	"math"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	internalErrors "github.com/taekim-dev/resume-rag-engine/internal/errors"
)

// Config holds all tunable options for the segmentation-and-retrieval
// pipeline. The heuristic thresholds (title-case ratios, bullet indent) are
// approximate classifiers, not ground truth; they are exposed here so tests
// and deployments can tune them.
type Config struct {
	// Chunking
	TargetChunkSize int     `env:"TARGET_CHUNK_SIZE" envDefault:"500" json:"target_chunk_size"` // characters per sliding window
	OverlapRatio    float64 `env:"OVERLAP_RATIO" envDefault:"0.2" json:"overlap_ratio"`

	// Keyword extraction
	MaxKeywords int `env:"MAX_KEYWORDS" envDefault:"14" json:"max_keywords"` // per-chunk cap

	// Entity header heuristics
	BulletIndentThreshold int     `env:"BULLET_INDENT_THRESHOLD" envDefault:"2" json:"bullet_indent_threshold"`
	TitleCaseWithDate     float64 `env:"TITLE_CASE_WITH_DATE" envDefault:"0.55" json:"title_case_with_date"`
	TitleCaseShortLine    float64 `env:"TITLE_CASE_SHORT_LINE" envDefault:"0.70" json:"title_case_short_line"`
	MaxEntityHeaderLen    int     `env:"MAX_ENTITY_HEADER_LEN" envDefault:"90" json:"max_entity_header_len"`

	// Summaries refer to the résumé owner by first name, e.g. "Tae's work
	// related to Acme Corp".
	Subject string `env:"SUBJECT_NAME" envDefault:"Tae" json:"subject"`

	// Paths and server settings
	DataDir        string `env:"DATA_DIR" envDefault:"./engine_data" json:"data_dir"`
	ResumeFile     string `env:"RESUME_FILE" envDefault:"./resume.txt" json:"resume_file"`
	VocabularyFile string `env:"VOCABULARY_FILE" json:"vocabulary_file,omitempty"` // optional YAML override
	Port           string `env:"PORT" envDefault:"8080" json:"port"`

	// Answer synthesis collaborator (OpenAI-compatible chat completions).
	// Synthesis is disabled when LLMURL is empty; retrieval still works and
	// the chat endpoint returns a deterministic evidence summary instead.
	LLMURL   string `env:"LLM_URL" json:"llm_url,omitempty"`
	LLMModel string `env:"LLM_MODEL" envDefault:"gpt-4.1-nano" json:"llm_model,omitempty"`
	LLMKey   string `env:"LLM_API_KEY" json:"-"`
}

// Load reads configuration from the environment, consulting a .env file when
// one is present. Missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with compiled-in defaults, bypassing the
// environment. Used by tests and as a fallback when no environment is set.
func Default() *Config {
	return &Config{
		TargetChunkSize:       500,
		OverlapRatio:          0.2,
		MaxKeywords:           14,
		BulletIndentThreshold: 2,
		TitleCaseWithDate:     0.55,
		TitleCaseShortLine:    0.70,
		MaxEntityHeaderLen:    90,
		Subject:               "Tae",
		DataDir:               "./engine_data",
		ResumeFile:            "./resume.txt",
		Port:                  "8080",
		LLMModel:              "gpt-4.1-nano",
	}
}

// Overlap derives the character overlap between consecutive chunks from the
// configured chunk size and ratio, with a floor of one character.
func (c *Config) Overlap() int {
	overlap := int(math.Round(float64(c.TargetChunkSize) * c.OverlapRatio))
	if overlap < 1 {
		overlap = 1
	}
	return overlap
}

// Validate checks the configuration for violations that would otherwise cause
// degenerate chunking loops or useless heuristics. These fail loudly at
// configuration time rather than silently at build time.
func (c *Config) Validate() error {
	if c.TargetChunkSize <= 0 {
		return internalErrors.NewInvalidConfigError("target_chunk_size", "must be positive")
	}
	if c.OverlapRatio < 0 || c.OverlapRatio >= 1 {
		return internalErrors.NewInvalidConfigError("overlap_ratio", "must be in [0, 1)")
	}
	if c.Overlap() >= c.TargetChunkSize {
		return internalErrors.NewInvalidConfigError("overlap_ratio", "derived overlap must be smaller than target_chunk_size")
	}
	if c.MaxKeywords <= 0 {
		return internalErrors.NewInvalidConfigError("max_keywords", "must be positive")
	}
	if c.BulletIndentThreshold < 0 {
		return internalErrors.NewInvalidConfigError("bullet_indent_threshold", "cannot be negative")
	}
	if c.TitleCaseWithDate < 0 || c.TitleCaseWithDate > 1 {
		return internalErrors.NewInvalidConfigError("title_case_with_date", "must be in [0, 1]")
	}
	if c.TitleCaseShortLine < 0 || c.TitleCaseShortLine > 1 {
		return internalErrors.NewInvalidConfigError("title_case_short_line", "must be in [0, 1]")
	}
	if c.MaxEntityHeaderLen <= 0 {
		return internalErrors.NewInvalidConfigError("max_entity_header_len", "must be positive")
	}
	return nil
}
