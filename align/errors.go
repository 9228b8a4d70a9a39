// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters indicates a degenerate configuration: a
	// non-positive match reward, a positive mismatch score, a non-negative
	// gap score, an unknown normalization, a window size below one or a
	// negative site cap.
	ErrInvalidParameters = errors.New("align: invalid parameters")

	// ErrOutOfRange indicates a Matrix index outside the table.
	ErrOutOfRange = errors.New("align: index out of range")
)

// alignErrorf prefixes err with the public entry point that produced it.
// The sentinel stays reachable through errors.Is.
func alignErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
