package gemm

// microKernel accumulates one (row-chunk, column-tile, depth-tile) triple:
// for each row i in [r0,r1), depth t in [k0,k1), column j in [c0,c1):
//
//	view[(i-r0)*n + j] += A[i][t] * B[t][j]
//
// Loop order is row outer, depth middle, column inner: the A scalar is loaded
// once per (i,t) and reused across the whole column sweep, while B's row and
// the output row are walked sequentially — the cache-friendly access pattern
// for row-major stores. The column loop is the extension point for vector
// widening; it stays scalar here.
//
// ad is A's flat store with row stride k (A's column count); bd is B's flat
// store with row stride n; view is the chunk's exclusive output sub-store
// with row stride n, indexed locally from r0. The kernel never reads or
// writes outside the stated ranges and has no side effects beyond the
// accumulation.
// Complexity: O((r1-r0)·(k1-k0)·(c1-c0)).
func microKernel(ad, bd, view []float32, k, n, r0, r1, c0, c1, k0, k1 int) {
	for i := r0; i < r1; i++ {
		cOff := (i - r0) * n // local row offset into the chunk view
		aOff := i * k
		for t := k0; t < k1; t++ {
			aik := ad[aOff+t] // hoisted: reused across the column sweep
			bOff := t * n
			for j := c0; j < c1; j++ {
				view[cOff+j] += aik * bd[bOff+j]
			}
		}
	}
}
