// Package cooccur finds values shared between the columns of a table and
// derives everything downstream from that: the per-value column index, the
// combination report, the column co-occurrence graph, its clusters and the
// shortest column paths through it.
//
// Two index builders exist because their consumers want different things:
//
//   - FindRepeated keeps every value with its raw column list, one entry per
//     occurrence (a value repeated inside one column lists that column
//     twice). EnumerateCombinations works on this form; lists shorter than
//     two produce no rows.
//   - FindShared keeps only values present in more than one distinct column
//     and lists each column once. BuildGraph works on this form, so the
//     graph never carries self-loops.
//
// Both preserve first-occurrence order over the scan (columns left→right,
// rows top→bottom) and never mutate the table.
//
// Report size grows as 2^L - L - 1 per value with a list of length L; use
// WithMaxRows to refuse oversized reports up front and WithContext to stop
// a long enumeration part-way through a value.
package cooccur
