// SPDX-License-Identifier: MIT
// Package: generator
//
// pool.go — Pool, the multiset of every value assigned during a run.
//
// The Pool is the explicit form of the "combined list of all numbers" that
// repetition budgeting consults: a replacement value must not be in it.
// It is append-only: when an occurrence is replaced, the replaced value is
// NOT removed, so a value that was ever assigned is never drawn again as a
// replacement.

package generator

// Pool is an append-only multiset of integers.
type Pool struct {
	counts map[int]int
	total  int
}

// NewPool returns an empty Pool sized for about n values.
func NewPool(n int) *Pool {
	if n < 0 {
		n = 0
	}

	return &Pool{counts: make(map[int]int, n)}
}

// Add records one occurrence of each v.
func (p *Pool) Add(vs ...int) {
	for _, v := range vs {
		p.counts[v]++
	}
	p.total += len(vs)
}

// Contains reports whether v was ever added.
func (p *Pool) Contains(v int) bool {
	_, ok := p.counts[v]
	return ok
}

// Count returns how many times v was added.
func (p *Pool) Count(v int) int { return p.counts[v] }

// Distinct returns the number of different values added.
func (p *Pool) Distinct() int { return len(p.counts) }

// Len returns the total number of additions.
func (p *Pool) Len() int { return p.total }
