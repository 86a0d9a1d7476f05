// SPDX-License-Identifier: MIT
// Package: cooccur

package cooccur

import "errors"

var (
	// ErrNilTable is returned when a nil *table.Table is analysed.
	ErrNilTable = errors.New("cooccur: table is nil")

	// ErrNilIndex is returned when a nil *Index is enumerated or graphed.
	ErrNilIndex = errors.New("cooccur: index is nil")

	// ErrTooManyCombinations is returned when a report would exceed the
	// row limit set by WithMaxRows.
	ErrTooManyCombinations = errors.New("cooccur: too many combinations")

	// ErrNoPath is returned by Path when the two columns are not linked by
	// any chain of shared values.
	ErrNoPath = errors.New("cooccur: columns not linked")
)

const (
	methodFindRepeated = "FindRepeated"
	methodFindShared   = "FindShared"
	methodEnumerate    = "EnumerateCombinations"
	methodBuildGraph   = "BuildGraph"
	methodClusters     = "Clusters"
	methodPath         = "Path"
)
