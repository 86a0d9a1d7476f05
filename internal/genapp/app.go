// Package genapp is the numgen tool: generate a table, write it as CSV and
// optionally as a coloured HTML page and into the run database.
package genapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/generator"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/cli"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/pipeline"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/render"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/store"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/tabular"
)

const name = "numgen"

// now is swapped in tests.
// previewLen is how many values of the first column are echoed.
const previewLen = 10

var now = time.Now

// RunContext runs numgen with argv and returns the exit status.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name,
		"-count N -start A -end B -columns C -max-repeat-fraction F [options]")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseGenArgs(fs, argv)
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
	params := pipeline.Params{
		Config:          opts.Config,
		Seed:            pipeline.ResolveSeed(opts.Seed, now),
		CommonFraction:  opts.CommonFraction,
		InjectionPasses: opts.InjectionPasses,
	}

	logger.Printf("start: generate %d×%d in [%d,%d] seed %d",
		params.Config.Count, params.Config.Columns, params.Config.Start, params.Config.End, params.Seed)
	res, err := pipeline.Generate(params)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pipeline.ExitCode(err)
	}
	logger.Printf("end  : generate: budget %s, %s replacements, %s cells injected",
		humanize.Comma(int64(res.Budget)), humanize.Comma(int64(res.Replacements)), humanize.Comma(int64(res.Injected)))
	if first, err := res.Table.Column(0); err == nil {
		fmt.Fprintf(outw, "Generated numbers (first column): %v ...\n", first[:min(previewLen, len(first))])
	}

	if err = tabular.SaveTable(opts.Output, res.Table); err != nil {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}
	logFileSize(logger.Printf, opts.Output)

	if opts.HTML != "" {
		if err = writeHTML(opts.HTML, res, params.Seed); err != nil {
			fmt.Fprintln(stderr, err)
			return appshell.ExitIO
		}
		logFileSize(logger.Printf, opts.HTML)
	}

	if opts.DB != "" {
		run, err := saveRun(ctx, opts.DB, params, res)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return pipeline.ExitCode(err)
		}
		logger.Printf("saved run %d (fingerprint %s) to %s", run.ID, run.Fingerprint, opts.DB)
	}

	fmt.Fprintf(outw, "Numbers saved to %s (%d columns × %d rows, seed %d)\n",
		opts.Output, res.Table.Columns(), res.Table.Rows(), params.Seed)
	if err = outw.Flush(); err != nil && !appshell.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}

	return appshell.ExitOK
}

// writeHTML colours repeated values with a source seeded from the run seed,
// so the same run always gets the same colours.
func writeHTML(path string, res *generator.Result, seed int64) error {
	p := render.NewPalette(res.Table, render.WithRand(rand.New(rand.NewSource(seed))))

	return pipeline.WriteFile(path, func(w io.Writer) error {
		return render.WriteHTMLTable(w, res.Table, p)
	})
}

func saveRun(ctx context.Context, path string, params pipeline.Params, res *generator.Result) (store.Run, error) {
	s, err := store.Open(ctx, store.FileDSN(path))
	if err != nil {
		return store.Run{}, err
	}
	defer s.Close()

	return s.SaveRun(ctx, pipeline.Record(params, res), res.Table)
}

func logFileSize(logf func(string, ...interface{}), path string) {
	if fi, err := os.Stat(path); err == nil {
		logf("wrote %s (%s)", path, humanize.Bytes(uint64(fi.Size())))
	}
}
