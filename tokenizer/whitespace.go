package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var ErrUnknownNormalization = errors.New("tokenizer: unknown normalization")

// Normalization names a Unicode normalization form applied before
// splitting. The zero value leaves text untouched.
type Normalization string

const (
	NormNone Normalization = ""
	NormNFC  Normalization = "nfc"
	NormNFD  Normalization = "nfd"
	NormNFKC Normalization = "nfkc"
	NormNFKD Normalization = "nfkd"
)

// ParseNormalization accepts a form name in any case; "none" and ""
// both mean no normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch n := Normalization(strings.ToLower(strings.TrimSpace(s))); n {
	case NormNone, NormNFC, NormNFD, NormNFKC, NormNFKD:
		return n, nil
	case "none":
		return NormNone, nil
	default:
		return NormNone, fmt.Errorf("%w: %q", ErrUnknownNormalization, s)
	}
}

func (n Normalization) apply(text string) string {
	switch n {
	case NormNFC:
		return norm.NFC.String(text)
	case NormNFD:
		return norm.NFD.String(text)
	case NormNFKC:
		return norm.NFKC.String(text)
	case NormNFKD:
		return norm.NFKD.String(text)
	default:
		return text
	}
}

// Whitespace splits text on runs of Unicode white space.
// Lower-casing and normalization only happen when asked for.
type Whitespace struct {
	Lower bool
	Form  Normalization
}

func NewWhitespace() *Whitespace {
	return &Whitespace{}
}

// Tokenize normalizes, optionally lower-cases, then splits text.
// Empty or all-space input yields no tokens.
func (t *Whitespace) Tokenize(text string) []string {
	text = t.Form.apply(text)
	if t.Lower {
		text = strings.ToLower(text)
	}
	return strings.Fields(text)
}
