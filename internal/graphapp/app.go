// Package graphapp is the numgraph tool: find values shared between
// columns of a table and draw the column co-occurrence graph as DOT.
package graphapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/cli"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/pipeline"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/render"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/tabular"
)

const name = "numgraph"

var now = time.Now

// RunContext runs numgraph with argv and returns the exit status.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name, "[-in numbers.csv] [-out graph.dot] [-value V] [-path NrA,NrB] [options]")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseGraphArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return appshell.ExitOK
		}
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return appshell.ExitUsage
	}
	logger := cli.NewLogger(stderr, name, opts.Quiet)

	logger.Printf("start: load %s", opts.Input)
	t, err := tabular.LoadTable(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pipeline.ExitCode(err)
	}
	logger.Printf("end  : load: %d columns × %s rows", t.Columns(), humanize.Comma(int64(t.Rows())))
	if err = ctx.Err(); err != nil {
		return pipeline.ExitCode(err)
	}

	var value *int
	if opts.HasValue {
		value = &opts.Value
	}
	sh, err := pipeline.AnalyzeShared(t, value)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pipeline.ExitCode(err)
	}
	st := sh.Graph.Stats()
	logger.Printf("graph: %s shared values, %d columns, %s edges",
		humanize.Comma(int64(sh.Index.Len())), st.VertexCount, humanize.Comma(int64(st.EdgeCount)))

	if sh.Index.Len() == 0 {
		fmt.Fprintln(outw, "No repeated numbers found in multiple columns.")
		return flush(outw, stderr)
	}

	fmt.Fprintln(outw, "Repeated numbers and their locations:")
	if err = pipeline.WriteListing(outw, sh.Index); err != nil {
		return writeErr(err, stderr)
	}
	n := 0
	for _, c := range sh.Clusters {
		if len(c) < 2 {
			continue
		}
		n++
		fmt.Fprintf(outw, "Cluster %d: %s\n", n, strings.Join(c, ", "))
	}
	if opts.PathFrom != "" {
		if err = writePath(ctx, outw, sh, opts.PathFrom, opts.PathTo); err != nil {
			fmt.Fprintln(stderr, err)
			return pipeline.ExitCode(err)
		}
	}

	seed := pipeline.ResolveSeed(opts.Seed, now)
	rng := rand.New(rand.NewSource(seed))
	err = pipeline.WriteFile(opts.Output, func(w io.Writer) error {
		return render.WriteDOT(w, sh.Graph, render.WithRand(rng))
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}
	logger.Printf("wrote %s (colour seed %d)", opts.Output, seed)
	fmt.Fprintf(outw, "Graph saved as %s\n", opts.Output)

	return flush(outw, stderr)
}

// writePath prints the shortest chain of columns linking from to to, one
// hop per line with the values the pair shares.
func writePath(ctx context.Context, w io.Writer, sh *pipeline.Shared, from, to string) error {
	links, err := cooccur.Path(ctx, sh.Graph, from, to)
	if errors.Is(err, cooccur.ErrNoPath) {
		fmt.Fprintf(w, "No path between %s and %s.\n", from, to)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Path %s to %s (%s):\n", from, to, english.Plural(len(links), "hop", ""))
	for _, l := range links {
		vals := make([]string, len(l.Values))
		for i, v := range l.Values {
			vals[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "  %s -- %s via %s\n", l.From, l.To, strings.Join(vals, ", "))
	}

	return nil
}

func flush(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); err != nil {
		return writeErr(err, stderr)
	}

	return appshell.ExitOK
}

func writeErr(err error, stderr io.Writer) int {
	if appshell.IsBrokenPipe(err) {
		return appshell.ExitOK
	}
	fmt.Fprintln(stderr, err)

	return appshell.ExitIO
}
