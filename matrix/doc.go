// Package matrix provides the dense, row-major, single-precision storage
// primitive used by the multiply engine.
//
// 🚀 What is matrix?
//
//	A minimal float32 container with a flat backing store and a strict
//	row-major layout: cell (r,c) lives at linear index r·cols+c.  It is
//	the data model shared by every multiply kernel in this repository:
//	  • zero / filled / explicit-data / seeded-random construction
//	  • bounds-checked cell accessors (At / Set)
//	  • exact and tolerance-based comparison (Equal / AllClose)
//	  • direct flat-store access for hot kernels (Data)
//
// ✨ Guarantees:
//   - Shape is immutable after construction; len(Data()) == Rows()·Cols() always.
//   - Seeded construction is bit-reproducible: same seed ⇒ same matrix,
//     across runs and platforms (SplitMix64 stream, no math/rand).
//   - Public indexers never panic on bad indices; they return ErrOutOfRange.
//     Kernels that have already validated shapes may walk Data() directly
//     and skip the per-cell check.
//
// ⚙️ Usage:
//
//	a, err := matrix.NewRandom(512, 512, 42)
//	if err != nil { ... }
//	v, err := a.At(3, 7)
//
// All errors are package-level sentinels (errors.go) matched via errors.Is.
package matrix
