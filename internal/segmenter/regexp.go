package segmenter

import (
	"regexp"
	"strings"
)

// Regexp splits text on '.', '!' and '?' without any abbreviation handling,
// so "Mr." ends a sentence. Text with no terminator yields no sentences.
type Regexp struct {
	splitter *regexp.Regexp
}

// NewRegexp creates the punctuation-based segmenter.
func NewRegexp() *Regexp {
	return &Regexp{splitter: regexp.MustCompile(`[^.!?]+[.!?]`)}
}

// Name returns the identifier of this segmenter implementation.
func (r *Regexp) Name() string { return TypeRegexp }

// Segment returns the trimmed, non-empty sentences of text in document order.
func (r *Regexp) Segment(text string) []string {
	raw := r.splitter.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
