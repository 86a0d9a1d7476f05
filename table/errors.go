// SPDX-License-Identifier: MIT
// Package: table
//
// errors.go — sentinel errors for the table package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: <detail>: %w").

package table

import "errors"

// ErrSchemaMismatch indicates a malformed table: columns of unequal length,
// a column count that differs from the name count, or (for readers layered on
// top of this package) a cell that is not an integer.
var ErrSchemaMismatch = errors.New("table: schema mismatch")

// ErrDuplicateColumn indicates two columns share the same name.
var ErrDuplicateColumn = errors.New("table: duplicate column name")

// ErrBadColumnName indicates an empty column name, or a name that does not
// follow the generated "Nr<k>" convention where that convention is required.
var ErrBadColumnName = errors.New("table: bad column name")

// ErrOutOfRange indicates a row or column index outside the table bounds.
var ErrOutOfRange = errors.New("table: index out of range")
