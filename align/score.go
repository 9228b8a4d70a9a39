// SPDX-License-Identifier: MIT

package align

import "github.com/katalvlaran/seqmatch/sequence"

// Score returns the optimal global alignment score of a and b without
// building the full matrix. It keeps two rows over the shorter sequence,
// so memory is O(min(m,n)); the alignment itself cannot be recovered.
//
// The score is symmetric in its arguments, which is what allows swapping
// them to pick the shorter row length.
func Score(a, b sequence.Sequence, sc Scoring) (int, error) {
	if err := sc.Validate(); err != nil {
		return 0, alignErrorf("Score", "%w", err)
	}
	if b.Len() > a.Len() {
		a, b = b, a
	}

	m, n := a.Len(), b.Len()
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = j * sc.Gap
	}

	for i := 1; i <= m; i++ {
		ai := a.At(i - 1)
		curr[0] = i * sc.Gap
		for j := 1; j <= n; j++ {
			curr[j] = max3(
				prev[j-1]+sc.pair(ai, b.At(j-1)),
				prev[j]+sc.Gap,
				curr[j-1]+sc.Gap,
			)
		}
		prev, curr = curr, prev
	}

	return prev[n], nil
}

// Similarity returns only the similarity percentage of a and b.
// ScoreRatio runs the score-only pass; MatchCount needs the traceback and
// therefore the full matrix. A nil opts means DefaultOptions().
func Similarity(a, b sequence.Sequence, opts *Options) (float64, error) {
	o := resolve(opts, DefaultOptions())
	if err := o.validate(); err != nil {
		return 0, alignErrorf("Similarity", "%w", err)
	}

	return similarity(a, b, o)
}

// similarity assumes o is already validated.
func similarity(a, b sequence.Sequence, o Options) (float64, error) {
	if o.Normalization == ScoreRatio {
		score, err := Score(a, b, o.Scoring)
		if err != nil {
			return 0, err
		}

		return percent(ScoreRatio, 0, score, a.Len(), b.Len(), o.Scoring.Match), nil
	}

	o.KeepMatrix = false
	res, err := GlobalAlign(a, b, &o)
	if err != nil {
		return 0, err
	}

	return res.Similarity, nil
}

// PositionalSimilarity is the naive identity over the shared prefix:
// positions i < min(m,n) with a[i]==b[i], divided by min(m,n), × 100.
// No gaps are considered. Returns 0 when either sequence is empty.
func PositionalSimilarity(a, b sequence.Sequence) float64 {
	shared := min(a.Len(), b.Len())
	if shared == 0 {
		return 0
	}

	same := 0
	for i := 0; i < shared; i++ {
		if a.At(i) == b.At(i) {
			same++
		}
	}

	return float64(same) / float64(shared) * 100
}
