// SPDX-License-Identifier: MIT
// Package: generator
//
// config.go — Config (the caller-owned run description) and its validation.
//
// Contract:
//   • Config is passed by value; the package never mutates the caller's copy.
//   • Validate is called by Generate/Run before any random draw.
//   • Check order (first failure wins): Count, Columns, End≥Start, range
//     width, MaxRepeatFraction, universe ≥ Count.

package generator

import (
	"fmt"
	"math"
)

// Config fully determines a generation run, modulo the random source.
type Config struct {
	// Count is the number of values per column (≥1).
	Count int `json:"count"`
	// Start is the inclusive lower bound of drawn values.
	Start int `json:"start"`
	// End is the inclusive upper bound of drawn values (≥Start).
	End int `json:"end"`
	// Columns is the number of independent columns (≥1).
	Columns int `json:"columns"`
	// MaxRepeatFraction scales the repetition budget; must lie in [0,1].
	// 0 yields a budget of 0, which is valid but usually exhausts the
	// universe during replacement.
	MaxRepeatFraction float64 `json:"max_repeat_fraction"`
}

// Validate reports whether c describes a feasible run.
// Returns ErrInvalidConfig, or ErrSampling (which also matches
// ErrInvalidConfig) when the universe is smaller than Count.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%s: count=%d < 1: %w", MethodValidate, c.Count, ErrInvalidConfig)
	}
	if c.Columns < 1 {
		return fmt.Errorf("%s: columns=%d < 1: %w", MethodValidate, c.Columns, ErrInvalidConfig)
	}
	if c.End < c.Start {
		return fmt.Errorf("%s: end=%d < start=%d: %w", MethodValidate, c.End, c.Start, ErrInvalidConfig)
	}
	universe, ok := universeSize(c.Start, c.End)
	if !ok {
		return fmt.Errorf("%s: range [%d,%d] too wide: %w", MethodValidate, c.Start, c.End, ErrInvalidConfig)
	}
	f := c.MaxRepeatFraction
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("%s: max_repeat_fraction=%g not in [0,1]: %w", MethodValidate, f, ErrInvalidConfig)
	}
	if universe < c.Count {
		return fmt.Errorf("%s: universe [%d,%d] has %d values, count=%d: %w: %w",
			MethodValidate, c.Start, c.End, universe, c.Count, ErrSampling, ErrInvalidConfig)
	}

	return nil
}

// Universe returns the number of integers in [Start, End], or 0 when the
// range is empty or too wide to count in an int.
func (c Config) Universe() int {
	n, ok := universeSize(c.Start, c.End)
	if !ok {
		return 0
	}

	return n
}

// Total returns Count·Columns, the number of cells in the output table.
func (c Config) Total() int { return c.Count * c.Columns }

// Budget returns ⌊Count·Columns·MaxRepeatFraction⌋, the maximum number of
// occurrences a single value may keep after stage 2.
func (c Config) Budget() int {
	return int(math.Floor(float64(c.Total()) * c.MaxRepeatFraction))
}

// universeSize returns end-start+1 when it is positive and fits in an int.
func universeSize(start, end int) (int, bool) {
	if end < start {
		return 0, false
	}
	span := uint64(end) - uint64(start) // two's complement: exact for end ≥ start
	if span >= math.MaxInt {
		return 0, false
	}

	return int(span) + 1, true
}
