// Package table defines Table, the rectangular data model shared by the
// generator and the co-occurrence analyzer.
//
// A Table is an ordered sequence of named integer columns of equal length.
// Generated tables name their columns "Nr1", "Nr2", … (see ColumnName);
// tables re-materialized from files may carry any unique, non-empty names.
//
// Guarantees:
//
//   - Immutable: constructors deep-copy their input and accessors return
//     copies, so analysis can never mutate a table it was handed.
//   - Rectangular: every column has exactly Rows() entries; violations are
//     reported as ErrSchemaMismatch before a Table is ever built.
//   - Deterministic scan order: Each visits columns left→right and, within a
//     column, rows top→bottom. Every consumer that derives ordered output
//     (indices, reports, palettes) relies on this order.
//
// The package also offers small derived views used across the repository:
// the flat value pool (Values), occurrence counts (Counts), a frequency
// ranking (Frequencies) and a content fingerprint (Fingerprint) used to
// identify persisted runs.
package table
