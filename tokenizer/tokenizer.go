package tokenizer

// Tokenizer is the common interface for all tokenizers feeding the
// one-hot encoder. Whitespace implements this.
type Tokenizer interface {
	Tokenize(text string) []string
}
