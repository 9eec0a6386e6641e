package gemm_test

import (
	"testing"

	"github.com/NeNish/parallel-matrix-engine/gemm"
	"github.com/NeNish/parallel-matrix-engine/matrix"
)

// Fixed benchmark seeds so every run multiplies the same operands.
const (
	benchSeedA = 42
	benchSeedB = 43
)

// benchmarkMultiply builds two seeded n×n operands, then times fn.
// Setup cost is excluded via b.ResetTimer; unexpected errors abort the run.
func benchmarkMultiply(b *testing.B, n int, fn func(a, bm *matrix.Dense) (*matrix.Dense, error)) {
	a, err := matrix.NewRandom(n, n, benchSeedA)
	if err != nil {
		b.Fatalf("operand A: %v", err)
	}
	bm, err := matrix.NewRandom(n, n, benchSeedB)
	if err != nil {
		b.Fatalf("operand B: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = fn(a, bm); err != nil {
			b.Fatalf("multiply failed: %v", err)
		}
	}
}

// BenchmarkMultiply_Reference64 benchmarks the serial oracle at 64×64.
func BenchmarkMultiply_Reference64(b *testing.B) {
	benchmarkMultiply(b, 64, gemm.Multiply)
}

// BenchmarkMultiply_Parallel64 benchmarks the blocked path at 64×64
// (single chunk: measures blocking overhead without parallel speedup).
func BenchmarkMultiply_Parallel64(b *testing.B) {
	benchmarkMultiply(b, 64, func(a, bm *matrix.Dense) (*matrix.Dense, error) {
		return gemm.MultiplyParallel(a, bm)
	})
}

// BenchmarkMultiply_Reference256 benchmarks the serial oracle at 256×256.
func BenchmarkMultiply_Reference256(b *testing.B) {
	benchmarkMultiply(b, 256, gemm.Multiply)
}

// BenchmarkMultiply_Parallel256 benchmarks the blocked path at 256×256
// (four row-chunks: parallelism starts to pay).
func BenchmarkMultiply_Parallel256(b *testing.B) {
	benchmarkMultiply(b, 256, func(a, bm *matrix.Dense) (*matrix.Dense, error) {
		return gemm.MultiplyParallel(a, bm)
	})
}

// BenchmarkMultiply_Parallel512 benchmarks the blocked path at 512×512.
func BenchmarkMultiply_Parallel512(b *testing.B) {
	benchmarkMultiply(b, 512, func(a, bm *matrix.Dense) (*matrix.Dense, error) {
		return gemm.MultiplyParallel(a, bm)
	})
}

// BenchmarkMultiply_Parallel512_OneWorker pins the serial-blocked baseline at
// 512×512 for speedup comparison against the default pool.
func BenchmarkMultiply_Parallel512_OneWorker(b *testing.B) {
	benchmarkMultiply(b, 512, func(a, bm *matrix.Dense) (*matrix.Dense, error) {
		return gemm.MultiplyParallel(a, bm, gemm.WithWorkers(1))
	})
}
