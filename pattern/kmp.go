// SPDX-License-Identifier: MIT

package pattern

import "github.com/katalvlaran/seqmatch/sequence"

// FailureTable returns the longest-proper-prefix-suffix table of p:
// table[i] is the length of the longest proper prefix of p[0..i] that is
// also a suffix of it.
//
// Built left to right: each entry extends the previous match by one, or
// falls back along the table until the next symbol fits or the match is
// empty.
//
// Complexity: O(len(p)) time and memory.
func FailureTable(p sequence.Sequence) []int {
	n := p.Len()
	table := make([]int, n)
	for i := 1; i < n; i++ {
		k := table[i-1]
		for k > 0 && p.At(i) != p.At(k) {
			k = table[k-1]
		}
		if p.At(i) == p.At(k) {
			k++
		}
		table[i] = k
	}

	return table
}

// Index returns the offset of the first occurrence of p in ref, or -1.
// An empty p occurs at offset 0.
//
// The reference is scanned once. On a mismatch the pattern cursor falls
// back through the failure table instead of restarting from zero, which
// keeps the total work linear.
//
// Complexity: O(len(ref)+len(p)) time, O(len(p)) memory.
func Index(ref, p sequence.Sequence) int {
	pl := p.Len()
	if pl == 0 {
		return 0
	}
	if ref.Len() < pl {
		return -1
	}

	table := FailureTable(p)
	for i, j := 0, 0; i < ref.Len(); i++ {
		for j > 0 && ref.At(i) != p.At(j) {
			j = table[j-1]
		}
		if ref.At(i) == p.At(j) {
			j++
		}
		if j == pl {
			return i - pl + 1
		}
	}

	return -1
}

// ExactSearch reports whether p occurs contiguously in ref.
func ExactSearch(ref, p sequence.Sequence) bool {
	return Index(ref, p) >= 0
}
