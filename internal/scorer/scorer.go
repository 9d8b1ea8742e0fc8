// Package scorer rates sentences by their cosine similarity to the document
// centroid.
package scorer

import (
	"gonum.org/v1/gonum/floats"

	"textsum/internal/tfidf"
)

// Score returns one importance score per matrix row, in row order.
func Score(m *tfidf.Matrix) []float64 {
	rows, _ := m.Dims()
	centroid := Centroid(m)
	scores := make([]float64, rows)
	for i := range scores {
		scores[i] = Cosine(m.Row(i), centroid)
	}
	return scores
}

// Centroid returns the element-wise mean of all rows.
func Centroid(m *tfidf.Matrix) []float64 {
	rows, cols := m.Dims()
	centroid := make([]float64, cols)
	if rows == 0 || cols == 0 {
		return centroid
	}
	for i := 0; i < rows; i++ {
		floats.Add(centroid, m.Row(i))
	}
	floats.Scale(1/float64(rows), centroid)
	return centroid
}

// Cosine returns dot(a, b) / (|a| |b|). A zero-magnitude operand yields 0
// instead of NaN. Vectors of different length are compared on their common
// prefix.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	a, b = a[:n], b[:n]
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
