// SPDX-License-Identifier: MIT

package sequence

import "fmt"

// Sequence is an immutable ordered run of nucleotide bases.
// The zero value is the empty sequence.
type Sequence struct {
	bases []Base // never written after construction
}

// New builds a Sequence from s.
// Stage 1 (Normalize): upper-case each symbol.
// Stage 2 (Validate): reject anything outside {A,C,G,T}.
// Stage 3 (Finalize): return the Sequence or a wrapped ErrInvalidSymbol
// naming the first offending position.
// Complexity: O(len(s)).
func New(s string) (Sequence, error) {
	bases := make([]Base, len(s))
	for i := 0; i < len(s); i++ {
		b, ok := toBase(s[i])
		if !ok {
			return Sequence{}, fmt.Errorf("New: position %d (%q): %w", i, s[i], ErrInvalidSymbol)
		}
		bases[i] = b
	}

	return Sequence{bases: bases}, nil
}

// MustNew is like New but panics on error. Intended for literals in
// package-level variables and tests.
func MustNew(s string) Sequence {
	seq, err := New(s)
	if err != nil {
		panic(err)
	}

	return seq
}

// Clean upper-cases s and keeps only A, C, G and T, silently discarding
// whitespace, line breaks and any other symbol. It fails with ErrEmptyInput
// when nothing is left.
func Clean(s string) (Sequence, error) {
	bases := make([]Base, 0, len(s))
	for i := 0; i < len(s); i++ {
		if b, ok := toBase(s[i]); ok {
			bases = append(bases, b)
		}
	}
	if len(bases) == 0 {
		return Sequence{}, fmt.Errorf("Clean: %w", ErrEmptyInput)
	}

	return Sequence{bases: bases}, nil
}

// FromBases copies bases into a new Sequence, validating each element.
func FromBases(bases []Base) (Sequence, error) {
	out := make([]Base, len(bases))
	for i, b := range bases {
		if !b.IsNucleotide() {
			return Sequence{}, fmt.Errorf("FromBases: position %d (%q): %w", i, byte(b), ErrInvalidSymbol)
		}
		out[i] = b
	}

	return Sequence{bases: out}, nil
}

// Len returns the number of bases.
func (s Sequence) Len() int { return len(s.bases) }

// IsEmpty reports whether the sequence has no bases.
func (s Sequence) IsEmpty() bool { return len(s.bases) == 0 }

// At returns the base at position i. It panics when i is out of range,
// like indexing a slice.
func (s Sequence) At(i int) Base { return s.bases[i] }

// Slice returns the sub-sequence [i, j). The result shares storage with s,
// which is safe because neither can be mutated.
func (s Sequence) Slice(i, j int) Sequence {
	return Sequence{bases: s.bases[i:j:j]}
}

// Bases returns a copy of the underlying bases.
func (s Sequence) Bases() []Base {
	out := make([]Base, len(s.bases))
	copy(out, s.bases)

	return out
}

// Equal reports whether s and o hold the same bases in the same order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s.bases) != len(o.bases) {
		return false
	}
	for i := range s.bases {
		if s.bases[i] != o.bases[i] {
			return false
		}
	}

	return true
}

// String renders the sequence as upper-case letters.
func (s Sequence) String() string {
	buf := make([]byte, len(s.bases))
	for i, b := range s.bases {
		buf[i] = byte(b)
	}

	return string(buf)
}
