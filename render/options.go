// SPDX-License-Identifier: MIT
// Package: render

package render

import (
	"fmt"
	"math/rand"
)

// defaultSeed seeds the cosmetic source when no WithRand is given.
const defaultSeed int64 = 1

// Rand is the random capability used for colours and polygon shapes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Option configures rendering.
type Option func(*config)

type config struct {
	rng   Rand
	title string
}

func newConfig(opts []Option) config {
	c := config{title: DefaultTitle}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return c
}

// DefaultTitle names DOT graphs and HTML pages.
const DefaultTitle = "Repeated Numbers"

// WithRand sets the cosmetic random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("render: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithTitle sets the graph comment / page title. Panics on "".
func WithTitle(title string) Option {
	if title == "" {
		panic(fmt.Sprintf("render: WithTitle(%q)", title))
	}
	return func(c *config) { c.title = title }
}
