// Package render turns tables and co-occurrence graphs into human-facing
// artefacts: Graphviz DOT with randomised cosmetic attributes, and an HTML
// table whose repeated values share a random background colour.
//
// Randomness here is cosmetic only. It goes through the Rand passed with
// WithRand; the default source is seeded, so output is reproducible unless
// the caller asks otherwise.
package render
