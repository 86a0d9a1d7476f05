// Package analyzer generates tables of random integers under repetition
// constraints and analyses where values recur across columns.
//
// What is in here?
//
//	A generator with three stages, each column drawn without replacement,
//	a global budget on how often any value may occur, and a few common
//	values pushed into every column, followed by the analysis of the
//	result: which columns share which values, every column combination per
//	value, and the column co-occurrence graph.
//
// Packages:
//
//	generator/ — Config, the three generation stages, the replacement pool
//	table/     — immutable column-major table, Nr1..NrN names, fingerprint
//	cooccur/   — value→columns index, combination report, co-occurrence graph
//	core/      — thread-safe weighted multigraph used by cooccur
//	bfs/       — breadth-first walk and connected components (column clusters)
//	render/    — DOT export with random polygon nodes, coloured HTML table
//	tabular/   — CSV codecs for tables and reports, .gz via pgzip
//	store/     — SQLite persistence of runs, tables and reports (gorm)
//
// Commands (cmd/):
//
//	numgen    — generate a table → CSV, optional HTML colours and database
//	numgraph  — CSV → shared values, column clusters and a DOT graph
//	numreport — CSV → every value with its column combinations as CSV
//	numserve  — HTTP API over the run database
//
// Quick example:
//
//	cfg := generator.Config{Count: 5, Start: 1, End: 10, Columns: 3, MaxRepeatFraction: 1}
//	t, err := generator.Generate(cfg, generator.NewRand(42))
//	x, err := cooccur.FindShared(t)
//	g, err := cooccur.BuildGraph(x)
//	err = render.WriteDOT(os.Stdout, g)
package analyzer
