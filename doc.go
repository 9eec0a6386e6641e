// Package parallelmatrix is a compact playground for cache-aware, parallel
// dense linear algebra: a blocked GEMM engine built around one idea —
// partition the output, never synchronize the writes.
//
// 🚀 What is parallel-matrix-engine?
//
//	A small, focused library that multiplies single-precision, row-major
//	matrices on all your cores:
//		• matrix/ — the Dense float32 container: zero / filled / explicit /
//		  seeded-random construction, bounds-checked accessors, flat-store
//		  access for kernels
//		• gemm/   — the engine: a serial reference multiply (the correctness
//		  oracle) and a blocked, parallel multiply built on disjoint
//		  row-chunk ownership and a scalar micro-kernel
//
// ✨ Why choose it?
//
//   - Lock-free by construction – output rows are partitioned into disjoint
//     chunks before any goroutine starts; no locks, atomics, or merge step
//   - Deterministic – the fixed tile policy pins the summation order, so the
//     result is bit-identical for any worker-pool width
//   - Beginner-friendly – the whole algorithm fits in a handful of short,
//     heavily documented functions
//   - Pure Go – no cgo, a single test-only dependency (testify)
//
// Quick sketch of the decomposition for C = A×B:
//
//	        C (m×n)
//	┌──────────────────┐
//	│ chunk 0          │ ← task 0 (exclusive view)
//	├──────────────────┤
//	│ chunk 1          │ ← task 1 (exclusive view)
//	├──────────────────┤
//	│ ...              │
//	└──────────────────┘
//
// Each task sweeps its chunk by column-tiles and depth-tiles, calling the
// scalar micro-kernel per tile; the kernel's inner column loop is the
// designated hook for future SIMD widening.
//
// Dive into gemm/doc.go for the algorithm contract and matrix/doc.go for the
// data model; examples/ holds a runnable wall-clock benchmark driver.
//
//	go get github.com/NeNish/parallel-matrix-engine
package parallelmatrix
