// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"

	"github.com/katalvlaran/seqmatch/sequence"
)

// StartCodon is the frame anchor searched for by LocateStartCodon.
var StartCodon = sequence.MustNew("ATG")

// DefaultMaxMismatches caps the mismatch fallback when callers have no preference.
const DefaultMaxMismatches = 10

// LocateStartCodon returns the offset of the first ATG in s.
// ok is false when s has none.
func LocateStartCodon(s sequence.Sequence) (pos int, ok bool) {
	pos = Index(s, StartCodon)

	return pos, pos >= 0
}

// DiagnosticSearch anchors input and reference on their first start codon
// and looks for the anchored input inside the anchored reference.
//
// Stage 1 (Anchor): locate ATG in input and reference; either missing
// yields ErrMarkerNotFound.
// Stage 2 (Exact): pattern = input[startIn:], tail = reference[startRef:];
// if ExactSearch(tail, pattern) the result is Exact.
// Stage 3 (Fallback): compare pattern and tail position by position over
// min(len(pattern), len(tail)) symbols and collect the differences,
// at most maxMismatches of them (0 means no cap).
//
// The fallback is an in-register comparison, not an alignment.
// A negative maxMismatches yields ErrInvalidParameters.
//
// Complexity: O(len(input)+len(reference)).
func DiagnosticSearch(input, reference sequence.Sequence, maxMismatches int) (*Result, error) {
	if maxMismatches < 0 {
		return nil, fmt.Errorf("DiagnosticSearch: maxMismatches %d must be >= 0: %w", maxMismatches, ErrInvalidParameters)
	}

	startIn, ok := LocateStartCodon(input)
	if !ok {
		return nil, fmt.Errorf("DiagnosticSearch: input: %w", ErrMarkerNotFound)
	}
	startRef, ok := LocateStartCodon(reference)
	if !ok {
		return nil, fmt.Errorf("DiagnosticSearch: reference: %w", ErrMarkerNotFound)
	}

	pat := input.Slice(startIn, input.Len())
	tail := reference.Slice(startRef, reference.Len())
	res := &Result{PatternStart: startIn, ReferenceStart: startRef}

	if ExactSearch(tail, pat) {
		res.Kind = Exact

		return res, nil
	}

	res.Kind = Mismatched
	res.Mismatches = []Mismatch{}
	n := min(pat.Len(), tail.Len())
	for i := 0; i < n; i++ {
		if pat.At(i) == tail.At(i) {
			continue
		}
		if maxMismatches > 0 && len(res.Mismatches) == maxMismatches {
			res.Truncated = true
			break
		}
		res.Mismatches = append(res.Mismatches, Mismatch{Pos: i, Reference: tail.At(i), Pattern: pat.At(i)})
	}

	return res, nil
}
