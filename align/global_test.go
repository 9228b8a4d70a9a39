package align_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmatch/align"
	"github.com/katalvlaran/seqmatch/sequence"
)

// randomSequence draws n bases from rng.
func randomSequence(rng *rand.Rand, n int) sequence.Sequence {
	bases := make([]sequence.Base, n)
	for i := range bases {
		bases[i] = sequence.Alphabet[rng.Intn(len(sequence.Alphabet))]
	}
	s, _ := sequence.FromBases(bases)

	return s
}

// TestGlobalAlign_Identical verifies a perfect alignment scores 100%.
func TestGlobalAlign_Identical(t *testing.T) {
	s := sequence.MustNew("ATCG")
	res, err := align.GlobalAlign(s, s, nil)
	require.NoError(t, err)
	assert.Equal(t, "ATCG", res.Seq1.String())
	assert.Equal(t, "ATCG", res.Seq2.String())
	assert.Equal(t, 100.0, res.Similarity)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 4, res.Matches)
	assert.Nil(t, res.Matrix, "matrix is dropped unless KeepMatrix")
}

// TestGlobalAlign_SingleMismatch checks the 75% example with one substitution.
func TestGlobalAlign_SingleMismatch(t *testing.T) {
	res, err := align.GlobalAlign(sequence.MustNew("ATCG"), sequence.MustNew("ATGG"), nil)
	require.NoError(t, err)
	assert.Equal(t, "ATCG", res.Seq1.String())
	assert.Equal(t, "ATGG", res.Seq2.String())
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 3, res.Matches)
	assert.InDelta(t, 75.0, res.Similarity, 1e-9)
}

// TestGlobalAlign_UnequalLengths checks a single deletion and both normalizations.
func TestGlobalAlign_UnequalLengths(t *testing.T) {
	a, b := sequence.MustNew("ACGT"), sequence.MustNew("AGT")

	res, err := align.GlobalAlign(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", res.Seq1.String())
	assert.Equal(t, "A-GT", res.Seq2.String())
	assert.Equal(t, 2, res.Score)
	assert.InDelta(t, 75.0, res.Similarity, 1e-9, "MatchCount: 3 identities over 4")

	opts := align.DefaultOptions()
	opts.Normalization = align.ScoreRatio
	res, err = align.GlobalAlign(a, b, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, res.Similarity, 1e-9, "ScoreRatio: score 2 over 4")
}

// TestGlobalAlign_TieBreak pins the diagonal > up > left preference.
// For AC vs CA the last cell is reachable from up and left with equal
// score; up must win.
func TestGlobalAlign_TieBreak(t *testing.T) {
	res, err := align.GlobalAlign(sequence.MustNew("AC"), sequence.MustNew("CA"), nil)
	require.NoError(t, err)
	assert.Equal(t, "-AC", res.Seq1.String())
	assert.Equal(t, "CA-", res.Seq2.String())
	assert.Equal(t, -1, res.Score)

	rev, err := align.GlobalAlign(sequence.MustNew("CA"), sequence.MustNew("AC"), nil)
	require.NoError(t, err)
	assert.Equal(t, "-CA", rev.Seq1.String())
	assert.Equal(t, "AC-", rev.Seq2.String())
	assert.Equal(t, res.Similarity, rev.Similarity)
}

// TestGlobalAlign_Empty covers the zero-result policy for empty inputs.
func TestGlobalAlign_Empty(t *testing.T) {
	var empty sequence.Sequence

	res, err := align.GlobalAlign(empty, empty, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Similarity)
	assert.Equal(t, 0, res.Len())

	res, err = align.GlobalAlign(empty, sequence.MustNew("ACG"), nil)
	require.NoError(t, err)
	assert.Equal(t, "---", res.Seq1.String())
	assert.Equal(t, "ACG", res.Seq2.String())
	assert.Equal(t, -3, res.Score)
	assert.Equal(t, 0.0, res.Similarity)

	opts := align.DefaultOptions()
	opts.Normalization = align.ScoreRatio
	res, err = align.GlobalAlign(sequence.MustNew("ACG"), empty, &opts)
	require.NoError(t, err)
	assert.Equal(t, "---", res.Seq2.String())
	assert.Equal(t, 0.0, res.Similarity, "negative ratio is clamped to 0")
}

// TestGlobalAlign_KeepMatrix exposes the filled table.
func TestGlobalAlign_KeepMatrix(t *testing.T) {
	opts := align.DefaultOptions()
	opts.KeepMatrix = true

	res, err := align.GlobalAlign(sequence.MustNew("ATCG"), sequence.MustNew("ATGG"), &opts)
	require.NoError(t, err)
	require.NotNil(t, res.Matrix)
	assert.Equal(t, 5, res.Matrix.Rows())
	assert.Equal(t, 5, res.Matrix.Cols())

	v, err := res.Matrix.At(4, 4)
	require.NoError(t, err)
	assert.Equal(t, res.Score, v)

	v, err = res.Matrix.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, -3, v, "border holds cumulative gap cost")

	_, err = res.Matrix.At(5, 0)
	assert.ErrorIs(t, err, align.ErrOutOfRange)
	_, err = res.Matrix.At(0, -1)
	assert.ErrorIs(t, err, align.ErrOutOfRange)

	assert.Contains(t, res.Matrix.String(), "[0, -1, -2, -3, -4]\n")
}

// TestGlobalAlign_InvalidParameters rejects degenerate scoring.
func TestGlobalAlign_InvalidParameters(t *testing.T) {
	s := sequence.MustNew("ACGT")
	cases := map[string]align.Options{
		"zero match":        {Scoring: align.Scoring{Match: 0, Mismatch: -1, Gap: -1}},
		"positive mismatch": {Scoring: align.Scoring{Match: 1, Mismatch: 1, Gap: -1}},
		"zero gap":          {Scoring: align.Scoring{Match: 1, Mismatch: -1, Gap: 0}},
		"bad normalization": {Scoring: align.DefaultScoring, Normalization: align.Normalization(7)},
	}
	for name, opts := range cases {
		opts := opts
		_, err := align.GlobalAlign(s, s, &opts)
		assert.ErrorIs(t, err, align.ErrInvalidParameters, name)
	}
}

// TestGlobalAlign_Properties checks the structural invariants on random input.
func TestGlobalAlign_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ratio := align.DefaultOptions()
	ratio.Normalization = align.ScoreRatio

	for k := 0; k < 200; k++ {
		a := randomSequence(rng, rng.Intn(30))
		b := randomSequence(rng, rng.Intn(30))

		res, err := align.GlobalAlign(a, b, nil)
		require.NoError(t, err)

		// equal-length rows that reproduce the inputs
		require.Equal(t, len(res.Seq1), len(res.Seq2))
		assert.True(t, res.Seq1.Ungapped().Equal(a), "row 1 must reproduce %s", a)
		assert.True(t, res.Seq2.Ungapped().Equal(b), "row 2 must reproduce %s", b)
		for c := range res.Seq1 {
			assert.False(t, res.Seq1[c].IsGap() && res.Seq2[c].IsGap(), "no gap/gap column")
		}

		// bounded similarity
		assert.GreaterOrEqual(t, res.Similarity, 0.0)
		assert.LessOrEqual(t, res.Similarity, 100.0)

		// score-only pass agrees with the matrix
		score, err := align.Score(a, b, align.DefaultScoring)
		require.NoError(t, err)
		assert.Equal(t, res.Score, score)

		// ScoreRatio is symmetric
		ab, err := align.Similarity(a, b, &ratio)
		require.NoError(t, err)
		ba, err := align.Similarity(b, a, &ratio)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)

		// self-alignment is perfect for non-empty input
		if a.Len() > 0 {
			self, err := align.GlobalAlign(a, a, nil)
			require.NoError(t, err)
			assert.Equal(t, 100.0, self.Similarity)
			selfRatio, err := align.Similarity(a, a, &ratio)
			require.NoError(t, err)
			assert.Equal(t, 100.0, selfRatio)
		}
	}
}
