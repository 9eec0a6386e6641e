package gemm

import (
	"sync"

	"github.com/NeNish/parallel-matrix-engine/matrix"
)

// MultiplyParallel computes C = A×B with the blocked, parallel algorithm.
// It produces the same mathematical product as Multiply within floating
// tolerance; tiling reassociates the depth summation, so bit-for-bit
// agreement with the oracle is not guaranteed — but the result IS
// bit-identical across pool widths, because the summation order is fixed by
// the tile policy alone.
//
// Implementation:
//   - Stage 1 (Validate): operands non-nil and A.Cols() == B.Rows(); fail
//     with ErrNilMatrix / ErrShapeMismatch before allocating the output or
//     dispatching any work.
//   - Stage 2 (Prepare): allocate C (m×n); clamp block sizes per dimension
//     (blockSize); partition C's rows into disjoint chunks (rowChunks).
//   - Stage 3 (Execute): fan the chunks out to a worker pool, one task per
//     chunk; each task walks its column- and depth-tiles serially and calls
//     microKernel against its exclusive view. No nested parallelism.
//   - Stage 4 (Finalize): wait for the pool; chunk views are disjoint and
//     cover C, so completion of all tasks implies C is complete — no merge.
//
// Shared state: A and B are read-only and safe for unsynchronized concurrent
// reads; C's writes need no locks or atomics because exclusivity was
// established at partition time. Tasks never block on or signal each other.
//
// Degenerate case: m ≤ MaxBlock yields a single chunk — still correct,
// simply non-parallel.
// Complexity: O(m·n·k) work; wall-clock shrinks with pool width while the
// row count spans multiple chunks.
func MultiplyParallel(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if a == nil || b == nil {
		return nil, gemmErrorf(opMultiplyParallel, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, gemmErrorf(opMultiplyParallel, ErrShapeMismatch)
	}

	o := gatherOptions(opts...)
	m, k, n := a.Rows(), a.Cols(), b.Cols()

	c, err := matrix.New(m, n)
	if err != nil {
		return nil, gemmErrorf(opMultiplyParallel, err)
	}

	blockM, blockN, blockK := blockSize(m), blockSize(n), blockSize(k)
	chunks := rowChunks(c.Data(), m, n, blockM)
	ad, bd := a.Data(), b.Data()

	// Never spin up more workers than there are chunks to run.
	workers := o.workers
	if workers > len(chunks) {
		workers = len(chunks)
	}

	if workers <= 1 {
		// Single chunk or single worker: run the tasks inline.
		for _, ch := range chunks {
			multiplyChunk(ad, bd, ch, n, k, blockN, blockK)
		}

		return c, nil
	}

	// Work queue fan-out: workers drain chunks until the queue closes.
	work := make(chan chunk, len(chunks))
	for _, ch := range chunks {
		work <- ch
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ch := range work {
				multiplyChunk(ad, bd, ch, n, k, blockN, blockK)
			}
		}()
	}
	wg.Wait()

	return c, nil
}

// multiplyChunk runs one task: the full column-tile × depth-tile sweep for a
// single row-chunk, writing only through the chunk's exclusive view. Column
// tiles outer, depth tiles inner, both in fixed increasing order — this
// ordering, not the scheduler, pins the summation order.
// Complexity: O((r1-r0)·n·k).
func multiplyChunk(ad, bd []float32, ch chunk, n, k, blockN, blockK int) {
	for c0 := 0; c0 < n; c0 += blockN {
		c1 := c0 + blockN
		if c1 > n {
			c1 = n
		}
		for k0 := 0; k0 < k; k0 += blockK {
			k1 := k0 + blockK
			if k1 > k {
				k1 = k
			}
			microKernel(ad, bd, ch.view, k, n, ch.r0, ch.r1, c0, c1, k0, k1)
		}
	}
}
