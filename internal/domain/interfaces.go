package domain

// Document represents a single text file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// FileSummary is the extractive summary produced for one document.
type FileSummary struct {
	Document  Document
	Summary   string
	Sentences int
	Selected  int
}

// Analysis describes one summarization call: the segmented sentences, their
// scores, the kept indices in document order and the joined summary.
type Analysis struct {
	Sentences []string
	Scores    []float64
	Selected  []int
	Summary   string
}

// Segmenter splits raw text into an ordered sequence of sentences.
type Segmenter interface {
	Name() string
	Segment(text string) []string
}

// Summarizer produces an extractive summary whose length is governed by ratio.
type Summarizer interface {
	Summarize(text string, ratio float64) (string, error)
}

// Analyzer is a Summarizer that also reports the intermediate pipeline state.
type Analyzer interface {
	Summarizer
	Analyze(text string, ratio float64) (*Analysis, error)
}

// SummaryService defines the file-level operations exposed by the application core.
type SummaryService interface {
	SummarizeFiles(paths []string, ratio float64) ([]FileSummary, error)
	LoadText(path string) (string, error)
	SaveSummary(path, summary string) (string, error)
}
