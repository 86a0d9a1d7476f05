// Package reportapp is the numreport tool: list every value of a table with
// the columns it occurs in, and write every column combination per value
// as a CSV report.
package reportapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/cli"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/pipeline"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/tabular"
)

const name = "numreport"

// RunContext runs numreport with argv and returns the exit status.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name, "[-in numbers.csv] [-out repeated_numbers.csv] [-max-rows N] [options]")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseReportArgs(fs, argv)
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

	t, err := tabular.LoadTable(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pipeline.ExitCode(err)
	}

	logger.Printf("start: report %s (%d columns × %s rows)", opts.Input, t.Columns(), humanize.Comma(int64(t.Rows())))
	x, rep, err := pipeline.BuildReport(ctx, t, opts.MaxRows)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pipeline.ExitCode(err)
	}
	logger.Printf("end  : report: %s values, %s rows", humanize.Comma(int64(x.Len())), humanize.Comma(int64(len(rep))))

	if x.Len() == 0 {
		fmt.Fprintln(outw, "No repeated numbers found in multiple columns.")
		return flush(outw, stderr)
	}

	fmt.Fprintln(outw, "Repeated numbers and their locations:")
	if err = pipeline.WriteListing(outw, x); err != nil {
		return writeErr(err, stderr)
	}

	if err = tabular.SaveReport(opts.Output, rep); err != nil {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}
	if fi, err := os.Stat(opts.Output); err == nil {
		logger.Printf("wrote %s (%s)", opts.Output, humanize.Bytes(uint64(fi.Size())))
	}
	fmt.Fprintf(outw, "Repeated numbers saved to %s\n", opts.Output)

	return flush(outw, stderr)
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
