// SPDX-License-Identifier: MIT

// Package pattern locates a query inside a reference sequence, exactly or,
// failing that, as a list of positional mismatches.
//
// ✨ Key features:
//   - FailureTable / Index: Knuth–Morris–Pratt search, linear in
//     len(reference)+len(pattern), never re-reads the reference
//   - LocateStartCodon: first "ATG" frame anchor
//   - DiagnosticSearch: anchors both inputs on their start codon, reports an
//     exact hit or the capped list of differing positions
//
// ⚙️ Usage:
//
//	res, err := pattern.DiagnosticSearch(input, reference, 10)
//	switch {
//	case errors.Is(err, pattern.ErrMarkerNotFound):
//	  // input or reference has no ATG
//	case res.IsExact():
//	  // found verbatim
//	default:
//	  for _, mm := range res.Mismatches { ... }
//	}
//
// The mismatch fallback assumes both slices are already in register from
// their start codons. It compares position by position and does not
// tolerate insertions or deletions; a single indel makes every later
// position differ. Use package align when indels are expected.
package pattern
