// SPDX-License-Identifier: MIT
// Package gemm: sentinel error set.
// Both multiply entry points MUST return these sentinels (wrapped with an
// operation tag at the facade) and tests MUST check them via errors.Is.
// Propagation policy is fail-fast: a shape error is detected before any
// output allocation or task dispatch, and the caller receives no matrix.

package gemm

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when A's column count does not equal B's
	// row count, for either multiply entry point.
	ErrShapeMismatch = errors.New("gemm: operand shapes do not conform")

	// ErrNilMatrix indicates that a nil operand was passed to a multiply.
	ErrNilMatrix = errors.New("gemm: nil operand")
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMultiply         = "Multiply"
	opMultiplyParallel = "MultiplyParallel"
)

// gemmErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func gemmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
