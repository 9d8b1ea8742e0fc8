// Package assembler picks the best scoring sentences and joins them back in
// document order.
package assembler

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"textsum/internal/domain"
)

// Count returns how many of total sentences a summary at ratio keeps:
// max(1, floor(total*ratio)) capped at total. Non-positive or NaN ratios keep
// one sentence.
func Count(total int, ratio float64) int {
	if total <= 0 {
		return 0
	}
	f := math.Floor(float64(total) * ratio)
	switch {
	case math.IsNaN(f) || f < 1:
		return 1
	case f >= float64(total):
		return total
	default:
		return int(f)
	}
}

// Select returns the indices of the n highest scores in ascending index order.
// Equal scores prefer the lower index.
func Select(scores []float64, n int) []int {
	if n > len(scores) {
		n = len(scores)
	}
	if n <= 0 {
		return nil
	}
	idxs := make([]int, len(scores))
	for i := range idxs {
		idxs[i] = i
	}
	slices.SortFunc(idxs, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	selected := idxs[:n]
	slices.Sort(selected)
	return selected
}

// Assemble joins the sentences kept at ratio with single spaces.
func Assemble(sentences []string, scores []float64, ratio float64) (string, error) {
	selected, err := Pick(sentences, scores, ratio)
	if err != nil {
		return "", err
	}
	return Join(sentences, selected), nil
}

// Pick validates its input and returns the indices Assemble would keep.
func Pick(sentences []string, scores []float64, ratio float64) ([]int, error) {
	if len(sentences) == 0 {
		return nil, domain.ErrEmptyInput
	}
	if len(sentences) != len(scores) {
		return nil, domain.ErrLengthMismatch
	}
	return Select(scores, Count(len(sentences), ratio)), nil
}

// Join concatenates sentences[i] for each selected index.
func Join(sentences []string, selected []int) string {
	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, sentences[idx])
	}
	return strings.Join(out, " ")
}
