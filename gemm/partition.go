// Package gemm: row-chunk partitioning of the output matrix.
//
// The partition is the soundness argument for lock-free concurrent writes:
// every chunk's view is a sub-slice of C's flat store covering exactly rows
// [r0, r1), the chunks are constructed back-to-back, and each view is handed
// to exactly one task for its whole lifetime. Non-overlap is established here,
// once, before any task is spawned — never by runtime coordination.

package gemm

// chunk is one row-block of the output, owned exclusively by a single task.
// view aliases C's storage at [r0*n : r1*n), addressed locally as
// view[(i-r0)*n + j] for cell (i, j).
type chunk struct {
	r0, r1 int       // row range [r0, r1) of C
	view   []float32 // exclusive flat sub-store, length (r1-r0)*n
}

// rowChunks splits rows [0, m) of a flat m×n store into consecutive chunks of
// width blockM (the final chunk may be narrower). Consecutive sub-slicing
// makes the views pairwise disjoint and their union the whole store.
// Complexity: O(m/blockM) time, O(m/blockM) space for the chunk headers.
func rowChunks(data []float32, m, n, blockM int) []chunk {
	chunks := make([]chunk, 0, (m+blockM-1)/blockM)
	for r0 := 0; r0 < m; r0 += blockM {
		r1 := r0 + blockM
		if r1 > m {
			r1 = m
		}
		chunks = append(chunks, chunk{r0: r0, r1: r1, view: data[r0*n : r1*n]})
	}

	return chunks
}
