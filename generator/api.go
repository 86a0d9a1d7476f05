// SPDX-License-Identifier: MIT
// Package: generator
//
// api.go — public entry points: Generate and Run.
//
// Contract:
//   • cfg is validated before any draw; nil rng ⇒ ErrNeedRandSource.
//   • On success the returned Table has exactly cfg.Columns columns named
//     Nr1…NrC, each of exactly cfg.Count rows.
//   • On error no Table is returned.

package generator

import (
	"fmt"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

// Result is a finished run with the intermediate facts kept for reporting.
type Result struct {
	// Table is the final output of all three stages.
	Table *table.Table
	// Initial is the stage-1 snapshot: every column duplicate-free.
	Initial *table.Table
	// Budget is ⌊Count·Columns·MaxRepeatFraction⌋.
	Budget int
	// Replacements is the number of occurrences replaced by stage 2.
	Replacements int
	// Common lists the values sampled for stage 3, in injection order.
	Common []int
	// Injected is the number of cells overwritten by stage 3.
	Injected int
}

// Generate runs all three stages and returns the final table.
func Generate(cfg Config, rng Rand, opts ...Option) (*table.Table, error) {
	res, err := Run(cfg, rng, opts...)
	if err != nil {
		return nil, err
	}

	return res.Table, nil
}

// Run runs all three stages and returns the table with run statistics.
//
// Errors: ErrNeedRandSource, ErrInvalidConfig, ErrSampling,
// ErrReplacementExhausted (all wrapped; use errors.Is).
//
// Complexity: O(Columns·Count) for stage 1, O(passes·common·Columns) for
// stage 3, plus the stage-2 cost documented on applyBudget.
func Run(cfg Config, rng Rand, opts ...Option) (*Result, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, ErrNeedRandSource)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	s := newSettings(opts...)

	cols := sampleColumns(cfg, rng)
	initial, err := table.FromColumns(cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", MethodGenerate, MethodSample, err)
	}
	pool := NewPool(cfg.Total())
	for _, col := range cols {
		pool.Add(col...)
	}

	replaced, err := applyBudget(cols, pool, cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	var common []int
	injected := 0
	if k := s.commonCount(cfg.Count); k > 0 && s.injectionPasses > 0 {
		common = sampleDistinct(rng, cfg.Start, cfg.Universe(), k)
		injected = injectCommon(cols, common, s.injectionPasses, rng)
	}

	out, err := table.FromColumns(cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", MethodGenerate, MethodInject, err)
	}

	return &Result{
		Table:        out,
		Initial:      initial,
		Budget:       cfg.Budget(),
		Replacements: replaced,
		Common:       common,
		Injected:     injected,
	}, nil
}
