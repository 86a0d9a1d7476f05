// SPDX-License-Identifier: MIT
// Package: generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers MUST use errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Validation happens before any random draw; a failed run consumes no
//     randomness beyond what was already drawn when the error surfaced.
//   • Option constructors panic on meaningless values; algorithms never panic.

package generator

import "errors"

// ErrInvalidConfig indicates a Config that cannot describe a run:
// Count < 1, Columns < 1, End < Start, a range too wide for int, or a
// MaxRepeatFraction outside [0,1].
var ErrInvalidConfig = errors.New("generator: invalid configuration")

// ErrSampling indicates that unique sampling cannot draw Count distinct
// values because the universe [Start,End] is smaller than Count. Errors
// carrying it also match ErrInvalidConfig, since the check runs during
// validation.
var ErrSampling = errors.New("generator: universe smaller than count")

// ErrReplacementExhausted indicates that repetition budgeting needed a
// replacement value but every value of [Start,End] was already in the Pool.
var ErrReplacementExhausted = errors.New("generator: no unused replacement value")

// ErrNeedRandSource indicates a nil Rand was supplied.
var ErrNeedRandSource = errors.New("generator: rng is required")
