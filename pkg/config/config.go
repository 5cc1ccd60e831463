package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/djeday123/onehot/tokenizer"
)

var ErrUnknownLevel = errors.New("unknown tokenizer level")

// Config holds the configuration for the one-hot demo
type Config struct {
	Sentence  string          `json:"sentence"`
	Tokenizer TokenizerConfig `json:"tokenizer"`
}

// TokenizerConfig configures how a sentence is split before encoding
type TokenizerConfig struct {
	Level         string `json:"level"` // "word" or "char"
	Lowercase     bool   `json:"lowercase"`
	Normalization string `json:"normalization"` // "", "none", "nfc", "nfd", "nfkc", "nfkd"
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Sentence: "i like pizza",
		Tokenizer: TokenizerConfig{
			Level:         "word",
			Lowercase:     false,
			Normalization: "none",
		},
	}
}

// Load reads a JSON file on top of the defaults. Fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by the JSON decoder.
func (c *Config) Validate() error {
	if _, err := c.Tokenizer.NewTokenizer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// NewTokenizer builds the tokenizer described by the configuration.
// An empty Level means "word".
func (c TokenizerConfig) NewTokenizer() (tokenizer.Tokenizer, error) {
	form, err := tokenizer.ParseNormalization(c.Normalization)
	if err != nil {
		return nil, err
	}
	switch c.Level {
	case "", "word":
		return &tokenizer.Whitespace{Lower: c.Lowercase, Form: form}, nil
	case "char":
		return &tokenizer.Chars{Lower: c.Lowercase, Form: form}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, c.Level)
	}
}
