// Package matrix - deterministic value generation for seeded construction.
//
// This file centralizes pseudo-random generation for NewRandom.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix across runs and platforms.
//   - Portability: the stream is defined by the SplitMix64 recurrence alone,
//     so any implementation language reproduces it bit-for-bit.
//   - Encapsulation: a single generator type; no time-based sources hidden anywhere.
//
// Concurrency:
//   - splitMix64 is NOT goroutine-safe. Construction is single-threaded; the
//     multiply engine never generates values.
package matrix

// SplitMix64 constants; see Vigna 2014 for the multipliers and finalizer
// rationale. Small input changes produce large, well-distributed output changes.
const (
	splitMixGamma = 0x9e3779b97f4a7c15
	splitMixMulA  = 0xbf58476d1ce4e5b9
	splitMixMulB  = 0x94d049bb133111eb
)

// float32Denom converts the top 24 bits of a 64-bit word into [0,1).
// 1<<24 is the largest power of two whose reciprocal steps are exactly
// representable in float32 mantissa width.
const float32Denom = float32(1 << 24)

// splitMix64 is a minimal deterministic generator with 64 bits of state.
type splitMix64 struct {
	state uint64
}

// next advances the state and returns the next 64-bit word.
// Complexity: O(1).
func (g *splitMix64) next() uint64 {
	g.state += splitMixGamma
	z := g.state
	z = (z ^ (z >> 30)) * splitMixMulA
	z = (z ^ (z >> 27)) * splitMixMulB

	return z ^ (z >> 31)
}

// nextFloat32 returns a uniform value in [0,1) built from the word's top
// 24 bits, so the mapping to float32 is exact and platform-independent.
// Complexity: O(1).
func (g *splitMix64) nextFloat32() float32 {
	return float32(g.next()>>40) / float32Denom
}

// NewRandom creates a rows×cols Dense matrix filled with deterministic
// uniform values in [0,1) derived from seed.
// Stage 1 (Validate): shape must be positive (ErrBadShape otherwise).
// Stage 2 (Execute): fill the flat store in row-major order from a single
// SplitMix64 stream seeded verbatim — same seed ⇒ same matrix.
// Complexity: O(rows*cols) time and memory.
func NewRandom(rows, cols int, seed uint64) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	g := splitMix64{state: seed}
	for i := range m.data {
		m.data[i] = g.nextFloat32()
	}

	return m, nil
}
