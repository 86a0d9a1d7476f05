package graphapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
)

const triangleCSV = "Nr1,Nr2,Nr3\n1,3,5\n2,4,6\n3,5,1\n"

func writeInput(t *testing.T, body string) (dir, in string) {
	t.Helper()
	dir = t.TempDir()
	in = filepath.Join(dir, "numbers.csv")
	require.NoError(t, os.WriteFile(in, []byte(body), 0o644))

	return dir, in
}

func TestRunContext_SharedValues(t *testing.T) {
	dir, in := writeInput(t, triangleCSV)
	out := filepath.Join(dir, "graph.dot")

	var stdout, stderr bytes.Buffer
	code := RunContext(context.Background(), []string{"-in", in, "-out", out, "-seed", "3", "-quiet"}, &stdout, &stderr)
	require.Equal(t, appshell.ExitOK, code, stderr.String())

	assert.Equal(t, "Repeated numbers and their locations:\n"+
		"Number 1 found in columns: Nr1, Nr3\n"+
		"Number 3 found in columns: Nr1, Nr2\n"+
		"Number 5 found in columns: Nr2, Nr3\n"+
		"Cluster 1: Nr1, Nr3, Nr2\n"+
		"Graph saved as "+out+"\n", stdout.String())

	dot, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "graph {")
	assert.Contains(t, string(dot), `"Nr1" -- "Nr3" [label="1"`)
	assert.Contains(t, string(dot), `"Nr2" -- "Nr3" [label="5"`)

	// Same seed, same colours.
	out2 := filepath.Join(dir, "again.dot")
	stdout.Reset()
	require.Equal(t, appshell.ExitOK,
		RunContext(context.Background(), []string{"-in", in, "-out", out2, "-seed", "3", "-quiet"}, &stdout, &stderr))
	dot2, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.Equal(t, string(dot), string(dot2))
}

func TestRunContext_ValueFilter(t *testing.T) {
	dir, in := writeInput(t, triangleCSV)
	out := filepath.Join(dir, "graph.dot")

	var stdout, stderr bytes.Buffer
	code := RunContext(context.Background(), []string{"-in", in, "-out", out, "-value", "5", "-quiet"}, &stdout, &stderr)
	require.Equal(t, appshell.ExitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Cluster 1: Nr3, Nr2\n")
	assert.NotContains(t, stdout.String(), "Cluster 2")

	dot, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(dot), `label="1"`)
	assert.Contains(t, string(dot), `[label="5"`)
}

func TestRunContext_Path(t *testing.T) {
	dir, in := writeInput(t, triangleCSV)
	out := filepath.Join(dir, "graph.dot")

	var stdout, stderr bytes.Buffer
	code := RunContext(context.Background(), []string{"-in", in, "-out", out, "-path", "Nr1,Nr2", "-quiet"}, &stdout, &stderr)
	require.Equal(t, appshell.ExitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Cluster 1: Nr1, Nr3, Nr2\n"+
		"Path Nr1 to Nr2 (1 hop):\n"+
		"  Nr1 -- Nr2 via 3\n"+
		"Graph saved as ")

	stdout.Reset()
	code = RunContext(context.Background(), []string{"-in", in, "-out", out, "-value", "5", "-path", "Nr1,Nr2", "-quiet"}, &stdout, &stderr)
	require.Equal(t, appshell.ExitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "No path between Nr1 and Nr2.\n")

	assert.Equal(t, appshell.ExitUsage,
		RunContext(context.Background(), []string{"-in", in, "-out", out, "-path", "Nr1"}, &stdout, &stderr))
}

func TestRunContext_NothingShared(t *testing.T) {
	dir, in := writeInput(t, "Nr1,Nr2\n1,3\n2,4\n")
	out := filepath.Join(dir, "graph.dot")

	var stdout, stderr bytes.Buffer
	require.Equal(t, appshell.ExitOK, RunContext(context.Background(), []string{"-in", in, "-out", out, "-quiet"}, &stdout, &stderr))
	assert.Equal(t, "No repeated numbers found in multiple columns.\n", stdout.String())
	assert.NoFileExists(t, out)
}

func TestRunContext_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dir := t.TempDir()

	assert.Equal(t, appshell.ExitUsage, RunContext(context.Background(), []string{"extra"}, &stdout, &stderr))
	assert.Equal(t, appshell.ExitIO,
		RunContext(context.Background(), []string{"-in", filepath.Join(dir, "missing.csv"), "-quiet"}, &stdout, &stderr))

	_, in := writeInput(t, "Nr1,Nr2\n1,x\n")
	assert.Equal(t, appshell.ExitUsage,
		RunContext(context.Background(), []string{"-in", in, "-out", filepath.Join(dir, "g.dot"), "-quiet"}, &stdout, &stderr))
}
