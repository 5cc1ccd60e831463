package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/djeday123/onehot/tokenizer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Sentence != "i like pizza" {
		t.Errorf("Expected Sentence to be %q, got %q", "i like pizza", cfg.Sentence)
	}

	if cfg.Tokenizer.Lowercase {
		t.Error("Expected Lowercase to be off by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `{"tokenizer": {"lowercase": true, "normalization": "NFC"}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Sentence != "i like pizza" {
		t.Errorf("Expected default Sentence to survive, got %q", cfg.Sentence)
	}

	if !cfg.Tokenizer.Lowercase {
		t.Error("Expected Lowercase to be read from file")
	}

	tok, err := cfg.Tokenizer.NewTokenizer()
	if err != nil {
		t.Fatalf("NewTokenizer() failed: %v", err)
	}
	ws, ok := tok.(*tokenizer.Whitespace)
	if !ok {
		t.Fatalf("Expected *tokenizer.Whitespace, got %T", tok)
	}
	if ws.Form != tokenizer.NormNFC || !ws.Lower {
		t.Errorf("Unexpected tokenizer %+v", ws)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}

	if _, err := Load(writeFile(t, `{"sentence":`)); err == nil {
		t.Error("Expected parse error for truncated JSON")
	}

	_, err := Load(writeFile(t, `{"tokenizer": {"normalization": "nfx"}}`))
	if !errors.Is(err, tokenizer.ErrUnknownNormalization) {
		t.Errorf("Expected ErrUnknownNormalization, got %v", err)
	}

	_, err = Load(writeFile(t, `{"tokenizer": {"level": "sentence"}}`))
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
}

func TestNewTokenizerChar(t *testing.T) {
	cfg := TokenizerConfig{Level: "char"}
	tok, err := cfg.NewTokenizer()
	if err != nil {
		t.Fatalf("NewTokenizer() failed: %v", err)
	}
	if _, ok := tok.(*tokenizer.Chars); !ok {
		t.Errorf("Expected *tokenizer.Chars, got %T", tok)
	}
}
