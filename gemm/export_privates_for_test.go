// Package gemm: narrow, test-only re-exports of private helpers.
// Kept in a dedicated file so the public surface of the package stays clean
// while black-box tests (package gemm_test) can pin the partition and tile
// policies directly.

package gemm

// BlockSizeForTest exposes blockSize to black-box tests.
func BlockSizeForTest(dim int) int { return blockSize(dim) }

// ChunkForTest mirrors chunk for black-box partition tests.
type ChunkForTest struct {
	R0, R1 int
	View   []float32
}

// RowChunksForTest exposes rowChunks to black-box tests.
func RowChunksForTest(data []float32, m, n, blockM int) []ChunkForTest {
	out := make([]ChunkForTest, 0)
	for _, ch := range rowChunks(data, m, n, blockM) {
		out = append(out, ChunkForTest{R0: ch.r0, R1: ch.r1, View: ch.view})
	}

	return out
}
