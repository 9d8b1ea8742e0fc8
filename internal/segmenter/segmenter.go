// Package segmenter splits documents into ordered sentences.
package segmenter

import (
	"github.com/pkg/errors"

	"textsum/internal/domain"
)

const (
	TypeRegexp = "regexp"
	TypePunkt  = "punkt"
)

// New returns the segmenter registered under kind. An empty kind selects the
// punctuation-based default.
func New(kind string) (domain.Segmenter, error) {
	switch kind {
	case TypeRegexp, "":
		return NewRegexp(), nil
	case TypePunkt:
		p, err := NewPunkt()
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, errors.Errorf("unknown segmenter: %s", kind)
	}
}
