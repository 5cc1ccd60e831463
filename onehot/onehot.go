// Package onehot turns a sequence of tokens into one-hot rows over a sorted
// vocabulary.
package onehot

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmpty     = errors.New("onehot: empty matrix")
	ErrRowLength = errors.New("onehot: row length does not match vocabulary")
	ErrNotOneHot = errors.New("onehot: row is not one-hot")
)

// Matrix holds one row per input token, in input order.
type Matrix [][]int

// Index maps a vocabulary term to its column.
type Index map[string]int

// Result bundles the three outputs of a single encoding.
type Result struct {
	Matrix Matrix
	Vocab  []string
	Index  Index
}

// Encode returns the one-hot matrix, the sorted vocabulary and the
// term to column mapping for tokens.
//
// The vocabulary is ordered by plain byte-wise string comparison, so "B"
// sorts before "a". Tokens are used exactly as given; any lower-casing or
// normalization belongs to the caller.
func Encode(tokens []string) (Matrix, []string, Index) {
	vocab := slices.Clone(tokens)
	slices.Sort(vocab)
	vocab = slices.Compact(vocab)
	if vocab == nil {
		vocab = []string{}
	}

	index := make(Index, len(vocab))
	for i, w := range vocab {
		index[w] = i
	}

	matrix := make(Matrix, len(tokens))
	for i, t := range tokens {
		row := make([]int, len(vocab))
		row[index[t]] = 1
		matrix[i] = row
	}
	return matrix, vocab, index
}

// New encodes tokens and returns the bundled result.
func New(tokens []string) *Result {
	m, v, idx := Encode(tokens)
	return &Result{Matrix: m, Vocab: v, Index: idx}
}

// Dims returns the number of rows (tokens) and columns (vocabulary size).
func (r *Result) Dims() (rows, cols int) {
	return len(r.Matrix), len(r.Vocab)
}

// Column returns the column assigned to term.
func (r *Result) Column(term string) (int, bool) {
	c, ok := r.Index[term]
	return c, ok
}

// Decode maps a one-hot row back to its vocabulary term.
func (r *Result) Decode(row []int) (string, error) {
	if len(row) != len(r.Vocab) {
		return "", fmt.Errorf("%w: got %d, want %d", ErrRowLength, len(row), len(r.Vocab))
	}
	hot := -1
	for i, v := range row {
		switch {
		case v == 0:
		case v == 1 && hot < 0:
			hot = i
		default:
			return "", fmt.Errorf("%w: unexpected %d at column %d", ErrNotOneHot, v, i)
		}
	}
	if hot < 0 {
		return "", fmt.Errorf("%w: no column set", ErrNotOneHot)
	}
	return r.Vocab[hot], nil
}

// Dense copies the matrix into a float64 gonum matrix. gonum has no
// zero-sized matrices, so an encoding without rows or columns yields
// ErrEmpty.
func (r *Result) Dense() (*mat.Dense, error) {
	rows, cols := r.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmpty
	}
	data := make([]float64, 0, rows*cols)
	for _, row := range r.Matrix {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

// Format writes the vocabulary, the index in column order and every row.
func (r *Result) Format(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "vocab: %q\n", r.Vocab)

	b.WriteString("index: {")
	for i, term := range r.Vocab {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %d", term, r.Index[term])
	}
	b.WriteString("}\n")

	b.WriteString("matrix:\n")
	for _, row := range r.Matrix {
		fmt.Fprintf(&b, "%v\n", row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
