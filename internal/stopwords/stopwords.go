// Package stopwords provides the read-only word lists excluded from term weighting.
package stopwords

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"textsum/internal/domain"
)

//go:embed english.txt
var englishList []byte

// Set is an immutable collection of lowercase stopwords. It is safe for
// concurrent reads.
type Set struct {
	words map[string]struct{}
}

// English returns the bundled English stopword list.
func English() (*Set, error) {
	return Load(bytes.NewReader(englishList))
}

// LoadFile reads a newline separated stopword list from path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrResourceUnavailable, "open stopwords %s: %v", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads one word per line. Blank lines and lines starting with '#' are
// skipped. An empty list is reported as ErrResourceUnavailable.
func Load(r io.Reader) (*Set, error) {
	words := make(map[string]struct{})
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.ToLower(strings.TrimSpace(scan.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = struct{}{}
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrapf(domain.ErrResourceUnavailable, "read stopwords: %v", err)
	}
	if len(words) == 0 {
		return nil, errors.Wrap(domain.ErrResourceUnavailable, "stopword list is empty")
	}
	return &Set{words: words}, nil
}

// Contains reports whether word (already lowercased) is a stopword.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
