// Package gemm computes the dense single-precision product C = A×B, either
// serially (the correctness oracle) or in parallel across cache-sized blocks.
//
// 🚀 What is gemm?
//
//	A cache-aware, blocked, parallel GEMM built from three pieces:
//	  • Multiply         — serial triple loop, strictly left-to-right
//	    accumulation; its rounding order is the reference behavior
//	  • MultiplyParallel — partitions C's rows into disjoint chunks, fans the
//	    chunks out to a worker pool, and walks column- and depth-tiles inside
//	    each chunk
//	  • microKernel      — the innermost scalar accumulate loop over one
//	    (row-chunk, column-tile, depth-tile) triple
//
// ✨ Key properties:
//   - Lock-free concurrent writes: each task owns a provably disjoint
//     sub-slice of C's flat store, established once at partition time;
//     no locks, atomics, or merge step anywhere.
//   - Deterministic: the result depends only on the fixed tile policy
//     ([MinBlock, MaxBlock] clamp per dimension), never on worker count or
//     scheduling — re-running with any pool size is bit-identical.
//   - Tolerant agreement with the oracle: tiling reassociates the depth
//     summation, so parallel and reference results agree within floating
//     tolerance, not bit-for-bit.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewRandom(1024, 1024, 42)
//	b, _ := matrix.NewRandom(1024, 1024, 43)
//	c, err := gemm.MultiplyParallel(a, b, gemm.WithWorkers(8))
//
// Shape mismatches (A.Cols() != B.Rows()) fail fast with ErrShapeMismatch
// before any allocation or dispatch; no partial product is ever returned.
// The scalar column loop in the micro-kernel is the designated extension
// point for SIMD widening, intentionally left scalar here.
package gemm
