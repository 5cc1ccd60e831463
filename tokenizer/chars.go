package tokenizer

import "strings"

// Chars is the simplest possible tokenizer: each character is a token.
// White space is dropped, so "ab c" yields "a", "b", "c".
type Chars struct {
	Lower bool
	Form  Normalization
}

func NewChars() *Chars {
	return &Chars{}
}

// Tokenize returns one token per non-space rune.
func (t *Chars) Tokenize(text string) []string {
	text = t.Form.apply(text)
	if t.Lower {
		text = strings.ToLower(text)
	}
	tokens := make([]string, 0, len(text))
	for _, w := range strings.Fields(text) {
		for _, r := range w {
			tokens = append(tokens, string(r))
		}
	}
	return tokens
}
