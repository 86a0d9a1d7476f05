// SPDX-License-Identifier: MIT
// Package: cooccur
//
// options.go — functional options for EnumerateCombinations.
//
// Contract:
//   • Constructors panic on meaningless values (negative limits, nil ctx).
//   • Defaults: no row limit, context.Background().

package cooccur

import (
	"context"
	"fmt"
)

// Option configures EnumerateCombinations.
type Option func(*config)

type config struct {
	ctx     context.Context
	maxRows uint64 // 0 = unbounded
}

func newConfig(opts []Option) config {
	c := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithMaxRows refuses to enumerate when the report would hold more than n
// rows. 0 disables the limit. Panics if n < 0.
func WithMaxRows(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("cooccur: WithMaxRows(%d) < 0", n))
	}
	return func(c *config) { c.maxRows = uint64(n) }
}

// WithContext makes enumeration stop with ctx.Err() once ctx is done.
// Panics on a nil ctx.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("cooccur: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}
