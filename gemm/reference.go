package gemm

import "github.com/NeNish/parallel-matrix-engine/matrix"

// Multiply computes C = A×B with the serial triple-nested loop. It is the
// correctness oracle for the blocked path: C[i][j] = Σ_t A[i][t]·B[t][j],
// accumulated in strictly increasing t order, so its left-to-right rounding
// defines the reference floating-point behavior.
//
// Implementation:
//   - Stage 1 (Validate): operands non-nil and A.Cols() == B.Rows(),
//     otherwise ErrNilMatrix / ErrShapeMismatch before any allocation.
//   - Stage 2 (Prepare): allocate the m×n result.
//   - Stage 3 (Execute): fixed i→j→t loops over the flat stores; one scalar
//     accumulator per cell, no other temporaries.
//
// Determinism: single-threaded, fixed loop order; bit-stable across runs.
// Complexity: O(m·n·k) time, O(1) space beyond the result.
func Multiply(a, b *matrix.Dense) (*matrix.Dense, error) {
	if a == nil || b == nil {
		return nil, gemmErrorf(opMultiply, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, gemmErrorf(opMultiply, ErrShapeMismatch)
	}

	m, k, n := a.Rows(), a.Cols(), b.Cols()
	c, err := matrix.New(m, n)
	if err != nil {
		return nil, gemmErrorf(opMultiply, err)
	}

	ad, bd, cd := a.Data(), b.Data(), c.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for t := 0; t < k; t++ { // strictly increasing t: reference rounding
				sum += ad[i*k+t] * bd[t*n+j]
			}
			cd[i*n+j] = sum
		}
	}

	return c, nil
}
