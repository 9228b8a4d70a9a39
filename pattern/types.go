// SPDX-License-Identifier: MIT

package pattern

import "github.com/katalvlaran/seqmatch/sequence"

// Kind tags the two outcomes of DiagnosticSearch.
type Kind int

const (
	// Exact means the anchored input occurs verbatim in the anchored reference.
	Exact Kind = iota + 1

	// Mismatched means no exact occurrence; Result.Mismatches lists the
	// differing positions of the in-register comparison.
	Mismatched
)

// String returns a short label for k.
func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Mismatched:
		return "mismatched"
	}

	return "unknown"
}

// Mismatch is one differing position. Pos is relative to the start codon
// of both slices, so Pos 0 is the A of each ATG.
type Mismatch struct {
	Pos       int
	Reference sequence.Base
	Pattern   sequence.Base
}

// Result is the outcome of DiagnosticSearch.
type Result struct {
	Kind Kind

	// Mismatches is empty for Exact. For Mismatched it holds at most the
	// requested cap and may be empty when the compared range agrees but the
	// pattern runs past the end of the reference.
	Mismatches []Mismatch

	// Truncated is set when the cap was hit before the compared range ended.
	Truncated bool

	// PatternStart and ReferenceStart are the start codon offsets in the
	// original input and reference.
	PatternStart   int
	ReferenceStart int
}

// IsExact reports whether r is an exact match.
func (r *Result) IsExact() bool { return r.Kind == Exact }
