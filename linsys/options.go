// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for TriangularForm.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Hooks and logger default to no-ops, so observing a reduction never changes it.

package linsys

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/hyperplane/vector"
)

// DefaultEpsilon is the near-zero tolerance used for pivot detection.
const DefaultEpsilon = vector.DefaultEpsilon

const panicEpsilonInvalid = "linsys: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration of a reduction.
type Options struct {
	// Epsilon is the absolute tolerance below which a coefficient is not a pivot.
	Epsilon float64

	// OnSwap is called after rows i and j were exchanged.
	OnSwap func(i, j int)

	// OnEliminate is called after row dst received alpha·row src.
	OnEliminate func(alpha float64, src, dst int)

	// Logger receives debug-level trace records of pivots, swaps and eliminations.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Epsilon = DefaultEpsilon
//   - no-op OnSwap / OnEliminate hooks
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Epsilon:     DefaultEpsilon,
		OnSwap:      func(int, int) {},
		OnEliminate: func(float64, int, int) {},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithEpsilon sets the pivot tolerance.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithOnSwap registers a callback run after every row swap. nil is ignored.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithOnEliminate registers a callback run after every elimination step. nil is ignored.
func WithOnEliminate(fn func(alpha float64, src, dst int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEliminate = fn
		}
	}
}

// WithLogger routes debug traces to l. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// gatherOptions resolves opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
