package cooccur_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

func triangle(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.FromColumns([][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 1}})
	require.NoError(t, err)

	return tb
}

func TestFindShared_Triangle(t *testing.T) {
	x, err := cooccur.FindShared(triangle(t))
	require.NoError(t, err)

	assert.Equal(t, []cooccur.Entry{
		{Value: 1, Columns: []string{"Nr1", "Nr3"}},
		{Value: 3, Columns: []string{"Nr1", "Nr2"}},
		{Value: 5, Columns: []string{"Nr2", "Nr3"}},
	}, x.Entries())

	rep, err := cooccur.EnumerateCombinations(x)
	require.NoError(t, err)
	require.Len(t, rep, 3)
	assert.Equal(t, "Nr1, Nr3", rep[0].Label())
	assert.Equal(t, 3, rep[1].Value)
}

func TestFindRepeated_RawLists(t *testing.T) {
	tb, err := table.FromColumns([][]int{{7, 7, 1}, {2, 7, 3}})
	require.NoError(t, err)

	x, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 1, 2, 3}, x.Values())

	cols, ok := x.Columns(7)
	require.True(t, ok)
	assert.Equal(t, []string{"Nr1", "Nr1", "Nr2"}, cols)
	_, ok = x.Columns(99)
	assert.False(t, ok)

	rep, err := cooccur.EnumerateCombinations(x)
	require.NoError(t, err)
	labels := make([]string, len(rep))
	for i, r := range rep {
		labels[i] = r.Label()
	}
	assert.Equal(t, []string{"Nr1, Nr1", "Nr1, Nr2", "Nr1, Nr2", "Nr1, Nr1, Nr2"}, labels)

	shared, err := cooccur.FindShared(tb)
	require.NoError(t, err)
	assert.Equal(t, []cooccur.Entry{{Value: 7, Columns: []string{"Nr1", "Nr2"}}}, shared.Entries())
}

func TestFindRepeated_IdempotentAndReadOnly(t *testing.T) {
	tb := triangle(t)
	before := tb.Fingerprint()

	a, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)
	b, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)

	assert.Equal(t, a.Entries(), b.Entries())
	assert.Equal(t, before, tb.Fingerprint())

	entries := a.Entries()
	entries[0].Columns[0] = "changed"
	again, _ := a.Columns(entries[0].Value)
	assert.Equal(t, "Nr1", again[0])
}

func TestNilInputs(t *testing.T) {
	_, err := cooccur.FindRepeated(nil)
	assert.ErrorIs(t, err, cooccur.ErrNilTable)
	_, err = cooccur.FindShared(nil)
	assert.ErrorIs(t, err, cooccur.ErrNilTable)
	_, err = cooccur.EnumerateCombinations(nil)
	assert.ErrorIs(t, err, cooccur.ErrNilIndex)
	_, err = cooccur.BuildGraph(nil)
	assert.ErrorIs(t, err, cooccur.ErrNilIndex)
}

func TestEmptyTable(t *testing.T) {
	tb, err := table.FromColumns(nil)
	require.NoError(t, err)
	x, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)
	assert.Zero(t, x.Len())
	rep, err := cooccur.EnumerateCombinations(x)
	require.NoError(t, err)
	assert.Empty(t, rep)
}

func TestCombinationCount(t *testing.T) {
	for l := 0; l <= 12; l++ {
		names := make([]string, l)
		cols := make([][]int, l)
		for i := range cols {
			names[i] = table.ColumnName(i)
			cols[i] = []int{42}
		}
		tb, err := table.NewNamed(names, cols)
		require.NoError(t, err)

		x, err := cooccur.FindRepeated(tb)
		require.NoError(t, err)
		rep, err := cooccur.EnumerateCombinations(x)
		require.NoError(t, err)

		want := 0
		if l >= 2 {
			want = (1 << l) - l - 1
		}
		assert.Len(t, rep, want, "L=%d", l)
		assert.Equal(t, uint64(want), cooccur.CombinationCount(l))
		assert.Equal(t, uint64(want), cooccur.ReportSize(x))
	}
	assert.Equal(t, uint64(math.MaxUint64), cooccur.CombinationCount(64))
}

func TestEnumerate_Lexicographic(t *testing.T) {
	tb, err := table.FromColumns([][]int{{9}, {9}, {9}, {9}})
	require.NoError(t, err)
	x, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)

	rep, err := cooccur.EnumerateCombinations(x)
	require.NoError(t, err)
	got := make([]string, len(rep))
	for i, r := range rep {
		got[i] = r.Label()
	}
	assert.Equal(t, []string{
		"Nr1, Nr2", "Nr1, Nr3", "Nr1, Nr4", "Nr2, Nr3", "Nr2, Nr4", "Nr3, Nr4",
		"Nr1, Nr2, Nr3", "Nr1, Nr2, Nr4", "Nr1, Nr3, Nr4", "Nr2, Nr3, Nr4",
		"Nr1, Nr2, Nr3, Nr4",
	}, got)
}

func TestEnumerate_Guards(t *testing.T) {
	tb, err := table.FromColumns([][]int{{9}, {9}, {9}, {9}})
	require.NoError(t, err)
	x, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)

	_, err = cooccur.EnumerateCombinations(x, cooccur.WithMaxRows(10))
	assert.ErrorIs(t, err, cooccur.ErrTooManyCombinations)
	rep, err := cooccur.EnumerateCombinations(x, cooccur.WithMaxRows(11))
	require.NoError(t, err)
	assert.Len(t, rep, 11)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cooccur.EnumerateCombinations(x, cooccur.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { cooccur.WithMaxRows(-1) })
	assert.Panics(t, func() { cooccur.WithContext(nil) }) //nolint:staticcheck
}

// countdownCtx reports cancellation once Err has been called left times.
type countdownCtx struct {
	context.Context
	left int
}

func (c *countdownCtx) Err() error {
	if c.left > 0 {
		c.left--
		return nil
	}
	return context.Canceled
}

func TestEnumerate_CanceledWithinOneValue(t *testing.T) {
	cols := make([][]int, 16)
	for i := range cols {
		cols[i] = []int{9}
	}
	tb, err := table.FromColumns(cols)
	require.NoError(t, err)
	x, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)
	require.Equal(t, 1, x.Len())

	rep, err := cooccur.EnumerateCombinations(x, cooccur.WithContext(&countdownCtx{Context: context.Background(), left: 2}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rep)

	rep, err = cooccur.EnumerateCombinations(x, cooccur.WithContext(&countdownCtx{Context: context.Background(), left: 100}))
	require.NoError(t, err)
	assert.Len(t, rep, 65519)
}

func TestBuildGraphAndClusters(t *testing.T) {
	tb, err := table.FromColumns([][]int{{1, 2, 3}, {3, 4, 5}, {5, 6, 1}, {7, 8, 9}, {9, 10, 11}})
	require.NoError(t, err)
	x, err := cooccur.FindShared(tb)
	require.NoError(t, err)

	g, err := cooccur.BuildGraph(x)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nr1", "Nr3", "Nr2", "Nr4", "Nr5"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())

	between := g.EdgesBetween("Nr1", "Nr3")
	require.Len(t, between, 1)
	assert.Equal(t, int64(1), between[0].Weight)

	md, err := g.VertexMetadata("Nr1")
	require.NoError(t, err)
	assert.Equal(t, 2, md[cooccur.MetaShared])

	clusters, err := cooccur.Clusters(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Nr1", "Nr3", "Nr2"}, {"Nr4", "Nr5"}}, clusters)

	only5 := cooccur.ValueGraph(g, 5)
	assert.Equal(t, 1, only5.EdgeCount())
	assert.Len(t, only5.EdgesBetween("Nr3", "Nr2"), 1)
}

func TestBuildGraph_RawIndexHasNoLoops(t *testing.T) {
	tb, err := table.FromColumns([][]int{{4, 4}, {4, 1}})
	require.NoError(t, err)
	x, err := cooccur.FindRepeated(tb)
	require.NoError(t, err)

	g, err := cooccur.BuildGraph(x)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Empty(t, g.EdgesBetween("Nr1", "Nr1"))
}

func TestPath(t *testing.T) {
	tb, err := table.FromColumns([][]int{{1, 2, 9}, {1, 2, 3}, {3, 4, 5}, {7, 8, 6}, {6, 10, 11}})
	require.NoError(t, err)
	x, err := cooccur.FindShared(tb)
	require.NoError(t, err)
	g, err := cooccur.BuildGraph(x)
	require.NoError(t, err)
	ctx := context.Background()

	links, err := cooccur.Path(ctx, g, "Nr1", "Nr3")
	require.NoError(t, err)
	assert.Equal(t, []cooccur.Link{
		{From: "Nr1", To: "Nr2", Values: []int{1, 2}},
		{From: "Nr2", To: "Nr3", Values: []int{3}},
	}, links)

	links, err = cooccur.Path(ctx, g, "Nr3", "Nr1")
	require.NoError(t, err)
	assert.Equal(t, "Nr3", links[0].From)
	assert.Equal(t, []int{1, 2}, links[1].Values)

	links, err = cooccur.Path(ctx, g, "Nr2", "Nr2")
	require.NoError(t, err)
	assert.Empty(t, links)

	_, err = cooccur.Path(ctx, g, "Nr1", "Nr5")
	assert.ErrorIs(t, err, cooccur.ErrNoPath)
	_, err = cooccur.Path(ctx, g, "Nr9", "Nr1")
	assert.ErrorIs(t, err, cooccur.ErrNoPath)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = cooccur.Path(canceled, g, "Nr1", "Nr3")
	assert.ErrorIs(t, err, context.Canceled)
}
