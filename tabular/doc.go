// Package tabular reads and writes tables and co-occurrence reports as CSV.
//
// Table layout: a header row with the column names (Nr1..NrN as written by
// generator runs), then one CSV row per table row. Report layout: header
// "Number,Columns", then one row per report row with the column names
// joined by ", ".
//
// File helpers treat a ".gz" suffix as gzip (parallel pgzip streams) and
// anything else as plain text.
//
// Malformed input (ragged rows, non-integer cells, bad headers) is reported
// as table.ErrSchemaMismatch.
package tabular
