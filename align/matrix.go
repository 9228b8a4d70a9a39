// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"
)

// Matrix is the dense (m+1)x(n+1) score table of one alignment, stored
// row-major in a flat slice. Row i corresponds to the prefix of length i of
// the first sequence, column j to the prefix of length j of the second.
type Matrix struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// newMatrix allocates a zeroed rows×cols table. Both are at least 1 here
// because the table always has the empty-prefix row and column.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]int, rows*cols)}
}

// Rows returns the number of rows (len(seq1)+1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns (len(seq2)+1).
func (m *Matrix) Cols() int { return m.c }

// At returns the score at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// get and set skip bounds checks; callers index inside the table only.
func (m *Matrix) get(row, col int) int { return m.data[row*m.c+col] }

func (m *Matrix) set(row, col, v int) { m.data[row*m.c+col] = v }

// String implements fmt.Stringer for debugging, one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
