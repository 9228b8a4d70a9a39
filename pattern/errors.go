// SPDX-License-Identifier: MIT

package pattern

import "errors"

var (
	// ErrMarkerNotFound is returned by DiagnosticSearch when the input or
	// the reference has no start codon to anchor on.
	ErrMarkerNotFound = errors.New("pattern: start codon not found")

	// ErrInvalidParameters indicates a negative mismatch cap.
	ErrInvalidParameters = errors.New("pattern: invalid parameters")
)
