// Package summarizer wires segmentation, TF-IDF weighting, centroid scoring
// and selection into a single extractive summarization call.
package summarizer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"textsum/internal/assembler"
	"textsum/internal/domain"
	"textsum/internal/scorer"
	"textsum/internal/segmenter"
	"textsum/internal/stopwords"
	"textsum/internal/tfidf"
)

// Summarizer ranks sentences by similarity to the document centroid. It keeps
// no state between calls and may be used from several goroutines.
type Summarizer struct {
	segmenter domain.Segmenter
	stopwords *stopwords.Set
	stem      bool
	weighting tfidf.Options
	builder   *tfidf.Builder
	log       *logrus.Entry
}

var _ domain.Analyzer = (*Summarizer)(nil)

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithSegmenter replaces the punctuation-based segmenter.
func WithSegmenter(seg domain.Segmenter) Option {
	return func(s *Summarizer) { s.segmenter = seg }
}

// WithStopwords replaces the bundled English stopword list.
func WithStopwords(set *stopwords.Set) Option {
	return func(s *Summarizer) { s.stopwords = set }
}

// WithWeighting sets the TF-IDF options.
func WithWeighting(opts tfidf.Options) Option {
	return func(s *Summarizer) { s.weighting = opts }
}

// WithStemming enables Snowball stemming of terms.
func WithStemming(stem bool) Option {
	return func(s *Summarizer) { s.stem = stem }
}

// WithLogger sets the logger entry used for per-call debug output.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Summarizer) { s.log = log }
}

// New builds a summarizer. The stopword list is loaded here so that a missing
// resource fails construction with ErrResourceUnavailable.
func New(opts ...Option) (*Summarizer, error) {
	s := &Summarizer{weighting: tfidf.DefaultOptions()}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = logrus.NewEntry(l)
	}
	if s.segmenter == nil {
		s.segmenter = segmenter.NewRegexp()
	}
	if s.stopwords == nil {
		set, err := stopwords.English()
		if err != nil {
			return nil, err
		}
		s.stopwords = set
	}
	if s.stopwords.Len() == 0 {
		return nil, errors.Wrap(domain.ErrResourceUnavailable, "stopword list is empty")
	}
	s.builder = tfidf.NewBuilder(tfidf.NewTokenizer(s.stopwords, s.stem), s.weighting)
	return s, nil
}

// Summarize returns the extractive summary of text. Blank text, or text with
// no sentence terminator, returns "" and ErrEmptyInput.
func (s *Summarizer) Summarize(text string, ratio float64) (string, error) {
	res, err := s.Analyze(text, ratio)
	if err != nil {
		return "", err
	}
	return res.Summary, nil
}

// Analyze runs the pipeline and reports the intermediate sentences and scores.
func (s *Summarizer) Analyze(text string, ratio float64) (*domain.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}
	sentences := s.segmenter.Segment(text)
	if len(sentences) == 0 {
		return nil, domain.ErrEmptyInput
	}
	m, vocab, err := s.builder.Build(sentences)
	if err != nil {
		return nil, err
	}
	scores := scorer.Score(m)
	selected, err := assembler.Pick(sentences, scores, ratio)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"segmenter":  s.segmenter.Name(),
		"sentences":  len(sentences),
		"vocabulary": len(vocab),
		"ratio":      ratio,
		"selected":   len(selected),
	}).Debug("summarized document")
	return &domain.Analysis{
		Sentences: sentences,
		Scores:    scores,
		Selected:  selected,
		Summary:   assembler.Join(sentences, selected),
	}, nil
}
