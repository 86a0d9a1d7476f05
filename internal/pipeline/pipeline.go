// Package pipeline wires the library packages into the steps the tools and
// the HTTP server share: generate a run, analyse a table, map errors to
// exit codes.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/core"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/generator"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/cli"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/store"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

// Params is everything needed to reproduce a run.
type Params struct {
	Config          generator.Config
	Seed            int64
	CommonFraction  float64
	InjectionPasses int
}

// DefaultParams returns cfg with the default injection settings.
func DefaultParams(cfg generator.Config, seed int64) Params {
	return Params{
		Config:          cfg,
		Seed:            seed,
		CommonFraction:  generator.DefaultCommonFraction,
		InjectionPasses: generator.DefaultInjectionPasses,
	}
}

// Options validates the injection settings and returns them as generator
// options. Invalid values yield generator.ErrInvalidConfig instead of the
// option constructors' panic.
func (p Params) Options() ([]generator.Option, error) {
	f := p.CommonFraction
	if math.IsNaN(f) || f < 0 || f > 1 {
		return nil, fmt.Errorf("common fraction %g not in [0,1]: %w", f, generator.ErrInvalidConfig)
	}
	if p.InjectionPasses < 0 {
		return nil, fmt.Errorf("injection passes %d < 0: %w", p.InjectionPasses, generator.ErrInvalidConfig)
	}

	return []generator.Option{
		generator.WithCommonFraction(f),
		generator.WithInjectionPasses(p.InjectionPasses),
	}, nil
}

// ResolveSeed returns seed, or a clock-derived non-zero seed when seed is 0.
func ResolveSeed(seed int64, now func() time.Time) int64 {
	if seed != 0 {
		return seed
	}
	if s := now().UnixNano(); s != 0 {
		return s
	}

	return 1
}

// Generate runs the generator for p.
func Generate(p Params) (*generator.Result, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}

	return generator.Run(p.Config, generator.NewRand(p.Seed), opts...)
}

// Record describes res as a store.Run ready for store.SaveRun.
func Record(p Params, res *generator.Result) store.Run {
	return store.Run{
		Count:             p.Config.Count,
		RangeStart:        p.Config.Start,
		RangeEnd:          p.Config.End,
		Columns:           p.Config.Columns,
		MaxRepeatFraction: p.Config.MaxRepeatFraction,
		Seed:              p.Seed,
		Budget:            res.Budget,
		Replacements:      res.Replacements,
	}
}

// Shared is the graph-side analysis of a table.
type Shared struct {
	Index    *cooccur.Index
	Graph    *core.Graph
	Clusters [][]string
}

// AnalyzeShared indexes the values shared between columns of t, builds the
// co-occurrence graph and its clusters. With value non-nil the graph keeps
// only that value's edges.
func AnalyzeShared(t *table.Table, value *int) (*Shared, error) {
	x, err := cooccur.FindShared(t)
	if err != nil {
		return nil, err
	}
	g, err := cooccur.BuildGraph(x)
	if err != nil {
		return nil, err
	}
	if value != nil {
		g = cooccur.ValueGraph(g, *value)
	}
	clusters, err := cooccur.Clusters(g)
	if err != nil {
		return nil, err
	}

	return &Shared{Index: x, Graph: g, Clusters: clusters}, nil
}

// BuildReport indexes t with raw column lists and enumerates the report.
func BuildReport(ctx context.Context, t *table.Table, maxRows int) (*cooccur.Index, cooccur.Report, error) {
	x, err := cooccur.FindRepeated(t)
	if err != nil {
		return nil, nil, err
	}
	rep, err := cooccur.EnumerateCombinations(x, cooccur.WithContext(ctx), cooccur.WithMaxRows(maxRows))
	if err != nil {
		return nil, nil, err
	}

	return x, rep, nil
}

// WriteListing prints one "Number V found in columns: A, B" line per entry.
func WriteListing(w io.Writer, x *cooccur.Index) error {
	for _, e := range x.Entries() {
		if _, err := fmt.Fprintf(w, "Number %d found in columns: %s\n", e.Value, strings.Join(e.Columns, cooccur.LabelSeparator)); err != nil {
			return err
		}
	}

	return nil
}

// WriteFile creates path and hands fn a buffered writer on it. The file is
// flushed and closed even when fn fails; the first error wins.
func WriteFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err = fn(bw); err != nil {
		return err
	}

	return bw.Flush()
}

// ExitCode maps an error to the tool exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return appshell.ExitOK
	case errors.Is(err, context.Canceled):
		return appshell.ExitCanceled
	case errors.Is(err, cli.ErrUsage),
		errors.Is(err, generator.ErrInvalidConfig),
		errors.Is(err, generator.ErrSampling),
		errors.Is(err, generator.ErrReplacementExhausted),
		errors.Is(err, table.ErrSchemaMismatch),
		errors.Is(err, cooccur.ErrTooManyCombinations):
		return appshell.ExitUsage
	default:
		return appshell.ExitIO
	}
}
