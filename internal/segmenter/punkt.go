package segmenter

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Punkt is an abbreviation-aware segmenter backed by the English punkt model.
type Punkt struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the bundled English punkt training data.
func NewPunkt() (*Punkt, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, errors.Wrap(err, "load punkt english model")
	}
	return &Punkt{tokenizer: tok}, nil
}

// Name returns the identifier of this segmenter implementation.
func (p *Punkt) Name() string { return TypePunkt }

// Segment returns the trimmed, non-empty sentences of text in document order.
func (p *Punkt) Segment(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		t := strings.TrimSpace(s.Text)
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
