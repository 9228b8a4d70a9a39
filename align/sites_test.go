package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmatch/align"
	"github.com/katalvlaran/seqmatch/sequence"
)

// TestFindDiagnosticSites covers the cap and the truncation flag.
func TestFindDiagnosticSites(t *testing.T) {
	a := sequence.MustNew("ATGCATGC")
	b := sequence.MustNew("ATCCATGA")
	both := []align.Site{
		{Pos: 2, Seq1: sequence.G, Seq2: sequence.C},
		{Pos: 7, Seq1: sequence.C, Seq2: sequence.A},
	}

	tests := []struct {
		name      string
		max       int
		want      []align.Site
		truncated bool
	}{
		{"under cap", 10, both, false},
		{"exactly cap", 2, both, false},
		{"over cap", 1, both[:1], true},
		{"unlimited", 0, both, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := align.FindDiagnosticSites(a, b, tc.max)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rep.Sites)
			assert.Equal(t, tc.truncated, rep.Truncated)
		})
	}
}

// TestFindDiagnosticSites_SharedPrefix ignores the tail of the longer input.
func TestFindDiagnosticSites_SharedPrefix(t *testing.T) {
	rep, err := align.FindDiagnosticSites(sequence.MustNew("ACG"), sequence.MustNew("ACGTTTT"), 5)
	require.NoError(t, err)
	assert.Empty(t, rep.Sites)
	assert.False(t, rep.Truncated)
}

func TestFindDiagnosticSites_NegativeCap(t *testing.T) {
	_, err := align.FindDiagnosticSites(sequence.MustNew("A"), sequence.MustNew("C"), -1)
	assert.ErrorIs(t, err, align.ErrInvalidParameters)
}
