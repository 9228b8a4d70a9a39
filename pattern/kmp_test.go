package pattern_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmatch/pattern"
	"github.com/katalvlaran/seqmatch/sequence"
)

// TestFailureTable checks known prefix-suffix tables.
func TestFailureTable(t *testing.T) {
	tests := map[string][]int{
		"":        {},
		"A":       {0},
		"AAAA":    {0, 1, 2, 3},
		"ACAGAC":  {0, 0, 1, 0, 1, 2},
		"ATGATGA": {0, 0, 0, 1, 2, 3, 4},
		"AACAAA":  {0, 1, 0, 1, 2, 2},
	}
	for in, want := range tests {
		assert.Equal(t, want, pattern.FailureTable(sequence.MustNew(in)), in)
	}
}

// TestIndex covers hits, misses and the fallback path.
func TestIndex(t *testing.T) {
	tests := []struct {
		ref, pat string
		want     int
	}{
		{"GATTACA", "TTA", 2},
		{"AAAAC", "AAAC", 1},
		{"ACACAG", "ACAG", 2},
		{"GATTACA", "TTT", -1},
		{"ACG", "ACGT", -1},
		{"ACG", "", 0},
		{"", "", 0},
		{"", "A", -1},
	}
	for _, tc := range tests {
		got := pattern.Index(sequence.MustNew(tc.ref), sequence.MustNew(tc.pat))
		assert.Equal(t, tc.want, got, "Index(%q, %q)", tc.ref, tc.pat)
		assert.Equal(t, tc.want >= 0, pattern.ExactSearch(sequence.MustNew(tc.ref), sequence.MustNew(tc.pat)))
	}
}

// randomText draws n symbols from a two-letter alphabet so hits are common.
func randomText(rng *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			sb.WriteByte('A')
		} else {
			sb.WriteByte('C')
		}
	}

	return sb.String()
}

// TestIndex_AgreesWithStrings cross-checks against strings.Index.
func TestIndex_AgreesWithStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 0; k < 500; k++ {
		ref := randomText(rng, rng.Intn(40))
		pat := randomText(rng, 1+rng.Intn(6))
		got := pattern.Index(sequence.MustNew(ref), sequence.MustNew(pat))
		require.Equal(t, strings.Index(ref, pat), got, "ref=%s pat=%s", ref, pat)
	}
}

// TestExactSearch_Inserted: inserting P anywhere into R makes it findable.
func TestExactSearch_Inserted(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 200; k++ {
		ref := randomText(rng, rng.Intn(30))
		pat := randomText(rng, rng.Intn(8)) + "GT"
		at := 0
		if len(ref) > 0 {
			at = rng.Intn(len(ref) + 1)
		}
		joined := ref[:at] + pat + ref[at:]
		require.True(t, pattern.ExactSearch(sequence.MustNew(joined), sequence.MustNew(pat)), "ref=%s pat=%s", joined, pat)
	}
}

func TestLocateStartCodon(t *testing.T) {
	pos, ok := pattern.LocateStartCodon(sequence.MustNew("CCATGATG"))
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = pattern.LocateStartCodon(sequence.MustNew("CCATTG"))
	assert.False(t, ok)
}
