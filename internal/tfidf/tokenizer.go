package tfidf

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"

	"textsum/internal/stopwords"
)

// Tokenizer turns a sentence into lowercase terms with stopwords removed.
type Tokenizer struct {
	tokenPattern *regexp.Regexp
	stopwords    *stopwords.Set
	stem         bool
}

// NewTokenizer creates a tokenizer that drops every word in stop. When stem is
// set, surviving tokens are reduced with the English Snowball stemmer.
func NewTokenizer(stop *stopwords.Set, stem bool) *Tokenizer {
	return &Tokenizer{
		// two or more word characters, same as `\b\w\w+\b` but unicode aware
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}_]{2,}`),
		stopwords:    stop,
		stem:         stem,
	}
}

// Tokenize returns the terms of text in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	raw := t.tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, tok := range raw {
		if t.stopwords.Contains(tok) {
			continue
		}
		if t.stem {
			if stemmed, err := snowball.Stem(tok, "english", false); err == nil && stemmed != "" {
				tok = stemmed
			}
		}
		out = append(out, tok)
	}
	return out
}
