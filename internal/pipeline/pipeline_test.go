package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/generator"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/cli"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/pipeline"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

func TestParams_Options(t *testing.T) {
	p := pipeline.DefaultParams(generator.Config{Count: 5, Start: 1, End: 10, Columns: 3, MaxRepeatFraction: 1}, 4)
	opts, err := p.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	p.CommonFraction = 2
	_, err = p.Options()
	assert.ErrorIs(t, err, generator.ErrInvalidConfig)

	p.CommonFraction = 0.1
	p.InjectionPasses = -1
	_, err = pipeline.Generate(p)
	assert.ErrorIs(t, err, generator.ErrInvalidConfig)
}

func TestGenerateAndRecord(t *testing.T) {
	p := pipeline.DefaultParams(generator.Config{Count: 5, Start: 1, End: 10, Columns: 3, MaxRepeatFraction: 1}, 4)
	res, err := pipeline.Generate(p)
	require.NoError(t, err)

	again, err := pipeline.Generate(p)
	require.NoError(t, err)
	assert.True(t, res.Table.Equal(again.Table))

	rec := pipeline.Record(p, res)
	assert.Equal(t, 5, rec.Count)
	assert.Equal(t, 10, rec.RangeEnd)
	assert.Equal(t, int64(4), rec.Seed)
	assert.Equal(t, 15, rec.Budget)
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(9), pipeline.ResolveSeed(9, time.Now))
	fixed := func() time.Time { return time.Unix(0, 1234) }
	assert.Equal(t, int64(1234), pipeline.ResolveSeed(0, fixed))
	zero := func() time.Time { return time.Unix(0, 0) }
	assert.Equal(t, int64(1), pipeline.ResolveSeed(0, zero))
}

func TestAnalyzeSharedAndReport(t *testing.T) {
	tb, err := table.FromColumns([][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 1}})
	require.NoError(t, err)

	sh, err := pipeline.AnalyzeShared(tb, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, sh.Index.Len())
	assert.Equal(t, 3, sh.Graph.EdgeCount())
	assert.Len(t, sh.Clusters, 1)

	v := 3
	only, err := pipeline.AnalyzeShared(tb, &v)
	require.NoError(t, err)
	assert.Equal(t, 1, only.Graph.EdgeCount())
	assert.Len(t, only.Clusters, 2)

	x, rep, err := pipeline.BuildReport(context.Background(), tb, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, x.Len())
	assert.Len(t, rep, 3)

	_, _, err = pipeline.BuildReport(context.Background(), tb, 2)
	assert.ErrorIs(t, err, cooccur.ErrTooManyCombinations)

	var buf bytes.Buffer
	require.NoError(t, pipeline.WriteListing(&buf, sh.Index))
	assert.Equal(t, "Number 1 found in columns: Nr1, Nr3\n"+
		"Number 3 found in columns: Nr1, Nr2\n"+
		"Number 5 found in columns: Nr2, Nr3\n", buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, appshell.ExitOK, pipeline.ExitCode(nil))
	assert.Equal(t, appshell.ExitUsage, pipeline.ExitCode(fmt.Errorf("x: %w", cli.ErrUsage)))
	assert.Equal(t, appshell.ExitUsage, pipeline.ExitCode(fmt.Errorf("x: %w", generator.ErrSampling)))
	assert.Equal(t, appshell.ExitUsage, pipeline.ExitCode(generator.ErrReplacementExhausted))
	assert.Equal(t, appshell.ExitUsage, pipeline.ExitCode(table.ErrSchemaMismatch))
	assert.Equal(t, appshell.ExitCanceled, pipeline.ExitCode(context.Canceled))
	assert.Equal(t, appshell.ExitIO, pipeline.ExitCode(errors.New("disk full")))
}
