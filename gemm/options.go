// SPDX-License-Identifier: MIT

// Package gemm: functional configuration for the parallel multiply.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no option may change the numeric result; the
//     pool width only changes wall-clock time (see package doc).
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package gemm

import "runtime"

// Tile policy (single source of truth). Block sizes are fixed constants, not
// options: the summation order — and therefore the floating-point result —
// is pinned by this clamp alone.
const (
	// MinBlock is the smallest tile width along any dimension. A dimension
	// below MinBlock degenerates to a single tile covering it entirely.
	MinBlock = 16

	// MaxBlock is the largest tile width along any dimension, sized so one
	// tile of A, B, and C each stays cache-resident.
	MaxBlock = 64
)

// DefaultWorkers selects the pool width when WithWorkers is not supplied:
// 0 means "resolve to runtime.GOMAXPROCS(0) at call time".
const DefaultWorkers = 0

// panicWorkersInvalid is the stable panic message for a bad WithWorkers value.
const panicWorkersInvalid = "gemm: WithWorkers: n must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only; entry points accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	workers int // pool width; 0 ⇒ GOMAXPROCS at resolution time
}

// WithWorkers sets the worker-pool width for MultiplyParallel.
// n == 0 restores the default (GOMAXPROCS); n < 0 is a programmer error and
// panics with a stable message. The numeric result is identical for every n.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins) and resolves derived values in exactly one place.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o)
	}
	// Resolve the ambient default once, here, so dispatch never re-reads it.
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// blockSize clamps dim to the tile policy: min(MaxBlock, dim), never below
// MinBlock unless dim itself is smaller — then the whole dimension forms a
// single degenerate tile.
// Complexity: O(1).
func blockSize(dim int) int {
	if dim < MinBlock {
		return dim // degenerate: one tile spans the dimension
	}
	if dim > MaxBlock {
		return MaxBlock
	}

	return dim
}
