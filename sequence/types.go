// SPDX-License-Identifier: MIT

package sequence

// Base is one symbol of a nucleotide sequence or of an alignment row.
// The underlying value is the upper-case ASCII letter, which keeps
// String() allocation-free per symbol.
type Base byte

// Nucleotide alphabet plus the gap placeholder used in alignment rows.
const (
	A Base = 'A'
	C Base = 'C'
	G Base = 'G'
	T Base = 'T'

	// Gap marks a column where one sequence is aligned against nothing.
	// It is never part of a Sequence, only of an Aligned row.
	Gap Base = '-'
)

// Alphabet lists the valid nucleotide bases in canonical order.
var Alphabet = [4]Base{A, C, G, T}

// IsNucleotide reports whether b belongs to {A,C,G,T}.
func (b Base) IsNucleotide() bool {
	switch b {
	case A, C, G, T:
		return true
	}

	return false
}

// IsGap reports whether b is the gap placeholder.
func (b Base) IsGap() bool { return b == Gap }

// String returns the single-letter form of b.
func (b Base) String() string { return string(rune(b)) }

// toBase upper-cases r and maps it to a Base.
// ok is false for anything outside the alphabet.
func toBase(r byte) (b Base, ok bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	b = Base(r)

	return b, b.IsNucleotide()
}

// Aligned is one row of a pairwise alignment: bases interleaved with Gap.
type Aligned []Base

// String renders the row with '-' for gaps.
func (a Aligned) String() string {
	buf := make([]byte, len(a))
	for i, b := range a {
		buf[i] = byte(b)
	}

	return string(buf)
}

// Ungapped strips every Gap and returns the remaining bases as a Sequence.
// For a row produced by alignment this reproduces the original input.
func (a Aligned) Ungapped() Sequence {
	out := make([]Base, 0, len(a))
	for _, b := range a {
		if b != Gap {
			out = append(out, b)
		}
	}

	return Sequence{bases: out}
}

// Gaps counts the Gap symbols in the row.
func (a Aligned) Gaps() int {
	n := 0
	for _, b := range a {
		if b == Gap {
			n++
		}
	}

	return n
}
