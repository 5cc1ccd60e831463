package pipeline

import (
	"context"
	"fmt"

	"github.com/djeday123/onehot/onehot"
	"github.com/djeday123/onehot/pkg/config"
	"github.com/djeday123/onehot/tokenizer"
)

// Pipeline turns a free-form sentence into a one-hot encoding.
// It coordinates the Tokenizer and the encoder.
type Pipeline struct {
	tokenizer tokenizer.Tokenizer
}

// New creates a new Pipeline instance
func New(cfg *config.Config) (*Pipeline, error) {
	tok, err := cfg.Tokenizer.NewTokenizer()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return &Pipeline{tokenizer: tok}, nil
}

// WithTokenizer creates a Pipeline around an existing tokenizer
func WithTokenizer(tok tokenizer.Tokenizer) *Pipeline {
	return &Pipeline{tokenizer: tok}
}

// Tokens returns the tokens the pipeline would encode for sentence
func (p *Pipeline) Tokens(sentence string) []string {
	return p.tokenizer.Tokenize(sentence)
}

// Process tokenizes sentence and encodes the tokens
func (p *Pipeline) Process(ctx context.Context, sentence string) (*onehot.Result, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return onehot.New(p.Tokens(sentence)), nil
}
