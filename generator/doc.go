// Package generator produces tables of random integers under a global
// repetition budget, with a deliberate overlap step so that later
// co-occurrence analysis has something to find.
//
// A run is fully described by a Config (Count, Start, End, Columns,
// MaxRepeatFraction) plus the random source. Generation proceeds in three
// passes over one mutable working set (the per-column slices and a Pool of
// every value ever assigned):
//
//  1. Independent unique sampling: each column receives Count distinct
//     values drawn uniformly without replacement from [Start, End].
//  2. Repetition budgeting: budget = ⌊Count·Columns·MaxRepeatFraction⌋.
//     Occurrence counts are taken once; every value above the budget loses
//     occurrences (first column holding it, first position) until it is at
//     the budget, each removed occurrence being replaced by a value appended
//     to the same column and never seen before in the Pool.
//  3. Common-value injection: ⌊Count·0.1⌋ distinct values are sampled and
//     written over a random position of every column that lacks them. The
//     pass runs twice by default (see WithInjectionPasses).
//
// The budget is enforced approximately: the over-budget set is computed
// once, before any replacement, and stage 3 may push values back over it.
//
// Randomness is always injected through Rand; NewRand builds a seeded
// *rand.Rand. The package never reads a global random source, so equal
// Config, options and seed always produce equal tables.
//
// Errors:
//
//	ErrInvalidConfig        - non-positive Count/Columns, End < Start, bad fraction.
//	ErrSampling             - universe [Start,End] smaller than Count (also ErrInvalidConfig).
//	ErrReplacementExhausted - stage 2 found no value absent from the Pool.
//	ErrNeedRandSource       - nil Rand.
package generator
