// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No function in this package panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0 or
	// cols <= 0). Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDataLength is returned by NewFromData when the explicit data length
	// does not equal rows*cols.
	ErrDataLength = errors.New("matrix: data length does not match rows*cols")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
