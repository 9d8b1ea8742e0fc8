package tfidf

import "gonum.org/v1/gonum/mat"

// Vocabulary maps a term to its column in the weight matrix.
type Vocabulary map[string]int

// Matrix is a dense sentence × term weight matrix. A matrix built from an empty
// vocabulary has zero columns and every row is a zero-length vector.
type Matrix struct {
	rows, cols int
	dense      *mat.Dense
}

func newMatrix(rows, cols int) *Matrix {
	m := &Matrix{rows: rows, cols: cols}
	if rows > 0 && cols > 0 {
		m.dense = mat.NewDense(rows, cols, nil)
	}
	return m
}

// Dims returns the number of sentences and terms.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the weight of term j in sentence i.
func (m *Matrix) At(i, j int) float64 {
	if m.dense == nil {
		return 0
	}
	return m.dense.At(i, j)
}

// Row returns the weights of sentence i. The slice aliases the matrix storage
// and must not be modified.
func (m *Matrix) Row(i int) []float64 {
	if m.dense == nil {
		return []float64{}
	}
	return m.dense.RawRowView(i)
}

func (m *Matrix) set(i, j int, v float64) {
	m.dense.Set(i, j, v)
}
