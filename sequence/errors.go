// SPDX-License-Identifier: MIT

package sequence

import "errors"

var (
	// ErrInvalidSymbol is returned by New when a symbol outside {A,C,G,T}
	// remains after upper-casing.
	ErrInvalidSymbol = errors.New("sequence: symbol outside nucleotide alphabet")

	// ErrEmptyInput is returned by Clean when no valid base survives cleaning.
	ErrEmptyInput = errors.New("sequence: no valid nucleotide in input")
)
