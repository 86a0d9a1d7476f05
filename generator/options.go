// SPDX-License-Identifier: MIT
// Package: generator
//
// options.go — functional options and the resolved run settings.
//
// Contract (strict):
//   • Options are functional (type Option func(*settings)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     generation algorithms themselves never panic.
//   • Options apply in order; the last one wins.
//
// Deterministic defaults:
//   • commonFraction  = DefaultCommonFraction (0.1)
//   • injectionPasses = DefaultInjectionPasses (2)

package generator

import (
	"fmt"
	"math"
)

// Option customizes a run by mutating the resolved settings.
type Option func(*settings)

// settings aggregates the knobs that are not part of Config.
// It is resolved once per run and passed by value.
type settings struct {
	commonFraction  float64 // share of Count injected into every column
	injectionPasses int     // how many times stage 3 runs
}

// newSettings applies opts over the deterministic defaults.
func newSettings(opts ...Option) settings {
	s := settings{
		commonFraction:  DefaultCommonFraction,
		injectionPasses: DefaultInjectionPasses,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// commonCount returns ⌊count·commonFraction⌋, never negative.
func (s settings) commonCount(count int) int {
	k := int(float64(count) * s.commonFraction)
	if k < 0 {
		return 0
	}

	return k
}

// WithCommonFraction sets the share of Count that stage 3 samples as
// common values. 0 disables injection. Panics unless 0 ≤ f ≤ 1.
func WithCommonFraction(f float64) Option {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic(fmt.Sprintf("generator: WithCommonFraction(%g) not in [0,1]", f))
	}
	return func(s *settings) {
		s.commonFraction = f
	}
}

// WithInjectionPasses sets how many times stage 3 runs (default 2). One
// pass already places every common value; 0 skips stage 3. Panics if n < 0.
func WithInjectionPasses(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("generator: WithInjectionPasses(%d) < 0", n))
	}
	return func(s *settings) {
		s.injectionPasses = n
	}
}
