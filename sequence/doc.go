// SPDX-License-Identifier: MIT

// Package sequence defines the nucleotide representation shared by the
// alignment engine and the pattern matcher.
//
// 🚀 What is a Sequence?
//
//	An ordered, immutable run of bases drawn from the fixed alphabet
//	{A, C, G, T}. Input is upper-cased before validation, so "atgc" and
//	"ATGC" build the same Sequence.
//
// ✨ Key features:
//   - Base enum with a distinguished Gap symbol for alignment rows
//   - strict construction (New) rejects any symbol outside the alphabet
//   - lenient construction (Clean) drops whitespace, digits and other noise
//   - cheap sub-slicing: Slice shares the backing array, never copies
//
// ⚙️ Usage:
//
//	s, err := sequence.New("atggtgcat")
//	if err != nil {
//	  // errors.Is(err, sequence.ErrInvalidSymbol)
//	}
//	fmt.Println(s.Len(), s) // 9 ATGGTGCAT
//
// A Sequence is never mutated after construction and may be shared freely
// between goroutines.
package sequence
