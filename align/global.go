// SPDX-License-Identifier: MIT

package align

import "github.com/katalvlaran/seqmatch/sequence"

// GlobalAlign — Needleman–Wunsch global alignment
//
// Description:
//
//	Aligns a and b end to end, maximizing the total column score.
//	Unequal lengths are handled by the recurrence itself; nothing is
//	truncated beforehand.
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b). Allocate the (m+1)x(n+1) matrix S.
//  2. Seed the borders with cumulative gap cost:
//     S[i][0] = i·Gap, S[0][j] = j·Gap
//  3. For i = 1..m, j = 1..n:
//     diag = S[i-1][j-1] + (Match if a[i-1]==b[j-1] else Mismatch)
//     up   = S[i-1][j]   + Gap   (gap in b)
//     left = S[i][j-1]   + Gap   (gap in a)
//     S[i][j] = max(diag, up, left)
//  4. Traceback from (m,n). At each cell re-derive which candidate produced
//     the value, testing diag, then up, then left, and emit the column.
//     Stop when i or j reaches 0, then flush the rest of the other
//     sequence against gaps.
//  5. Derive Similarity from the rows (MatchCount) or from S[m][n]
//     (ScoreRatio), clamped to [0,100].
//
// Only scores are stored. Step 4 uses the same preference order as
// step 3, so ties always resolve to the same alignment.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Errors:
//   - ErrInvalidParameters — if opts fails validation.
//
// A nil opts means DefaultOptions().
func GlobalAlign(a, b sequence.Sequence, opts *Options) (*Result, error) {
	o := resolve(opts, DefaultOptions())
	if err := o.validate(); err != nil {
		return nil, alignErrorf("GlobalAlign", "%w", err)
	}

	m, n := a.Len(), b.Len()
	mat := fill(a, b, o.Scoring)
	row1, row2 := traceback(mat, a, b, o.Scoring)

	res := &Result{
		Seq1:    row1,
		Seq2:    row2,
		Score:   mat.get(m, n),
		Matches: countMatches(row1, row2),
	}
	res.Similarity = percent(o.Normalization, res.Matches, res.Score, m, n, o.Scoring.Match)
	if o.KeepMatrix {
		res.Matrix = mat
	}

	return res, nil
}

// fill builds the complete score matrix for a against b.
func fill(a, b sequence.Sequence, sc Scoring) *Matrix {
	m, n := a.Len(), b.Len()
	mat := newMatrix(m+1, n+1)

	// Borders: a prefix aligned entirely against gaps
	for i := 1; i <= m; i++ {
		mat.set(i, 0, i*sc.Gap)
	}
	for j := 1; j <= n; j++ {
		mat.set(0, j, j*sc.Gap)
	}

	for i := 1; i <= m; i++ {
		ai := a.At(i - 1)
		for j := 1; j <= n; j++ {
			diag := mat.get(i-1, j-1) + sc.pair(ai, b.At(j-1))
			up := mat.get(i-1, j) + sc.Gap
			left := mat.get(i, j-1) + sc.Gap
			mat.set(i, j, max3(diag, up, left))
		}
	}

	return mat
}

// traceback walks mat from the bottom-right corner back to the origin and
// returns the two aligned rows in forward order.
func traceback(mat *Matrix, a, b sequence.Sequence, sc Scoring) (sequence.Aligned, sequence.Aligned) {
	i, j := a.Len(), b.Len()
	// Upper bound on columns; rows are built backwards then reversed.
	row1 := make(sequence.Aligned, 0, i+j)
	row2 := make(sequence.Aligned, 0, i+j)

	for i > 0 && j > 0 {
		cur := mat.get(i, j)
		switch {
		case cur == mat.get(i-1, j-1)+sc.pair(a.At(i-1), b.At(j-1)):
			row1 = append(row1, a.At(i-1))
			row2 = append(row2, b.At(j-1))
			i--
			j--
		case cur == mat.get(i-1, j)+sc.Gap:
			row1 = append(row1, a.At(i-1))
			row2 = append(row2, sequence.Gap)
			i--
		default:
			row1 = append(row1, sequence.Gap)
			row2 = append(row2, b.At(j-1))
			j--
		}
	}
	// Flush whichever prefix is left
	for ; i > 0; i-- {
		row1 = append(row1, a.At(i-1))
		row2 = append(row2, sequence.Gap)
	}
	for ; j > 0; j-- {
		row1 = append(row1, sequence.Gap)
		row2 = append(row2, b.At(j-1))
	}

	reverse(row1)
	reverse(row2)

	return row1, row2
}

// countMatches counts columns holding the same non-gap base in both rows.
func countMatches(row1, row2 sequence.Aligned) int {
	n := 0
	for k := range row1 {
		if row1[k] != sequence.Gap && row1[k] == row2[k] {
			n++
		}
	}

	return n
}

// percent turns a finished alignment into a similarity in [0,100].
// An empty longer side (both inputs empty) yields 0.
func percent(mode Normalization, matches, score, m, n, match int) float64 {
	longest := max(m, n)
	if longest == 0 {
		return 0
	}

	var v float64
	switch mode {
	case ScoreRatio:
		v = float64(score) / float64(longest*match) * 100
	default:
		v = float64(matches) / float64(longest) * 100
	}

	return clamp(v, 0, 100)
}

// max3 returns the largest of three ints.
func max3(a, b, c int) int {
	if a >= b {
		if a >= c {
			return a
		}
		return c
	}
	if b >= c {
		return b
	}

	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func reverse(row sequence.Aligned) {
	for l, r := 0, len(row)-1; l < r; l, r = l+1, r-1 {
		row[l], row[r] = row[r], row[l]
	}
}
