// Package tfidf builds per-call TF-IDF weight matrices over a sentence set.
package tfidf

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"textsum/internal/domain"
)

// Options tunes the weighting scheme.
type Options struct {
	// SublinearTF replaces raw counts with 1+ln(count).
	SublinearTF bool
	// Normalize scales every non-zero row to unit L2 length.
	Normalize bool
}

// DefaultOptions mirrors the classic smoothed TF-IDF with L2 row norms.
func DefaultOptions() Options {
	return Options{Normalize: true}
}

// Builder computes term weights. It holds no per-call state, so one Builder may
// be shared by concurrent callers.
type Builder struct {
	tokenizer *Tokenizer
	opts      Options
}

// NewBuilder creates a weight builder around tokenizer.
func NewBuilder(tokenizer *Tokenizer, opts Options) *Builder {
	return &Builder{tokenizer: tokenizer, opts: opts}
}

// Build returns the sentence × term matrix and the vocabulary it was built on.
// Both are derived only from sentences.
func (b *Builder) Build(sentences []string) (*Matrix, Vocabulary, error) {
	if len(sentences) == 0 {
		return nil, nil, domain.ErrEmptyInput
	}
	// Term counts per sentence and document frequencies
	counts := make([]map[string]int, len(sentences))
	df := make(map[string]int)
	for i, sent := range sentences {
		tf := make(map[string]int)
		for _, tok := range b.tokenizer.Tokenize(sent) {
			if tf[tok] == 0 {
				df[tok]++
			}
			tf[tok]++
		}
		counts[i] = tf
	}
	// Create stable ordering for vocabulary
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	vocab := make(Vocabulary, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(sentences))
	for j, term := range terms {
		vocab[term] = j
		idf[j] = SmoothIDF(n, float64(df[term]))
	}

	m := newMatrix(len(sentences), len(terms))
	if len(terms) == 0 {
		return m, vocab, nil
	}
	for i, tf := range counts {
		for term, count := range tf {
			j := vocab[term]
			m.set(i, j, b.termFrequency(count)*idf[j])
		}
		if b.opts.Normalize {
			row := m.Row(i)
			if norm := floats.Norm(row, 2); norm > 0 {
				floats.Scale(1/norm, row)
			}
		}
	}
	return m, vocab, nil
}

func (b *Builder) termFrequency(count int) float64 {
	if b.opts.SublinearTF {
		return 1 + math.Log(float64(count))
	}
	return float64(count)
}

// SmoothIDF is ln((1+n)/(1+df)) + 1. It stays finite and positive when a term
// occurs in every one of the n sentences, including n == 1.
func SmoothIDF(n, df float64) float64 {
	return math.Log((1+n)/(1+df)) + 1
}
