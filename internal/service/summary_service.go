package service

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"textsum/internal/domain"
)

const textExt = ".txt"

var _ domain.SummaryService = (*SummaryServiceImpl)(nil)

// SummaryServiceImpl loads plain text documents, summarizes each one on its
// own and writes summaries back to disk.
type SummaryServiceImpl struct {
	analyzer domain.Analyzer
	log      *logrus.Entry
}

func NewSummaryService(analyzer domain.Analyzer, log *logrus.Entry) *SummaryServiceImpl {
	return &SummaryServiceImpl{analyzer: analyzer, log: log}
}

// SummarizeFiles expands globs, keeps .txt files and summarizes every document
// independently. Documents without extractable sentences get an empty summary.
func (s *SummaryServiceImpl) SummarizeFiles(paths []string, ratio float64) ([]domain.FileSummary, error) {
	documents, err := s.loadDocuments(paths)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FileSummary, 0, len(documents))
	for _, d := range documents {
		fs := domain.FileSummary{Document: d}
		log := s.log.WithFields(logrus.Fields{"doc_id": d.ID, "path": d.Path})
		res, err := s.analyzer.Analyze(d.Content, ratio)
		switch {
		case errors.Is(err, domain.ErrEmptyInput):
			log.Warn("no extractable sentences")
		case err != nil:
			return nil, errors.Wrapf(err, "summarize %s", d.Path)
		default:
			fs.Summary = res.Summary
			fs.Sentences = len(res.Sentences)
			fs.Selected = len(res.Selected)
			log.WithFields(logrus.Fields{
				"sentences": fs.Sentences,
				"selected":  fs.Selected,
			}).Debug("document summarized")
		}
		out = append(out, fs)
	}
	return out, nil
}

// LoadText reads a UTF-8 .txt file.
func (s *SummaryServiceImpl) LoadText(path string) (string, error) {
	if !isText(path) {
		return "", errors.Wrapf(domain.ErrUnsupportedFile, "%s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to load file")
	}
	if !utf8.Valid(data) {
		return "", errors.Errorf("failed to load file: %s is not valid UTF-8", path)
	}
	return string(data), nil
}

// SaveSummary writes summary to path, adding a .txt extension when path has
// none. It returns the path actually written.
func (s *SummaryServiceImpl) SaveSummary(path, summary string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("failed to save file: empty path")
	}
	if filepath.Ext(path) == "" {
		path += textExt
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrap(err, "failed to save file")
		}
	}
	if err := os.WriteFile(path, []byte(summary), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to save file")
	}
	s.log.WithField("path", path).Info("summary saved")
	return path, nil
}

func (s *SummaryServiceImpl) loadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	seen := make(map[string]struct{})
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, errors.Wrapf(err, "expand %s", p)
		}
		if matches == nil {
			matches = []string{p}
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !isText(m) {
				s.log.WithField("path", m).Debug("skipping non-text file")
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			content, err := s.LoadText(m)
			if err != nil {
				return nil, err
			}
			documents = append(documents, domain.Document{ID: hashString(m), Path: m, Content: content})
		}
	}
	if len(documents) == 0 {
		return nil, errors.Wrap(domain.ErrUnsupportedFile, "no .txt documents found")
	}
	return documents, nil
}

func isText(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), textExt)
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
