package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/generator"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/pipeline"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/store"
)

const origin = "http://localhost:3000"

func newServer(t *testing.T, maxRows int) http.Handler {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(context.Background(), store.MemoryDSN(name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return NewRouter(NewHandler(s, log.New(io.Discard, "", 0), maxRows), []string{origin})
}

func do(t *testing.T, h http.Handler, method, target, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

// sharedCfg injects one common value into every column, so the table
// always has a shared value.
var sharedCfg = generator.Config{Count: 10, Start: 1, End: 30, Columns: 3, MaxRepeatFraction: 1}

const sharedBody = `{"count":10,"start":1,"end":30,"columns":3,"max_repeat_fraction":1,"seed":11}`

func createRun(t *testing.T, h http.Handler, body string) store.Run {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/runs", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var run store.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, "/api/runs/"+strconv.FormatInt(run.ID, 10), rec.Header().Get("Location"))

	return run
}

func TestHealth(t *testing.T) {
	rec := do(t, newServer(t, 0), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestCreateRun_MatchesPipeline(t *testing.T) {
	h := newServer(t, 0)
	run := createRun(t, h, sharedBody)

	res, err := pipeline.Generate(pipeline.DefaultParams(sharedCfg, 11))
	require.NoError(t, err)
	assert.Equal(t, int64(1), run.ID)
	assert.Equal(t, int64(11), run.Seed)
	assert.Equal(t, strconv.FormatUint(res.Table.Fingerprint(), 16), run.Fingerprint)
	assert.Equal(t, res.Budget, run.Budget)
	assert.False(t, run.HasReport())

	rec := do(t, h, http.MethodGet, "/api/runs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []store.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, run.Fingerprint, runs[0].Fingerprint)
}

func TestCreateRun_Errors(t *testing.T) {
	h := newServer(t, 0)
	cases := []struct {
		name string
		body string
		code int
	}{
		{"malformed", `{"count":`, http.StatusBadRequest},
		{"unknown field", `{"count":5,"start":1,"end":10,"columns":3,"max_repeat_fraction":1,"colour":1}`, http.StatusBadRequest},
		{"universe too small", `{"count":11,"start":1,"end":10,"columns":3,"max_repeat_fraction":1}`, http.StatusBadRequest},
		{"fraction", `{"count":5,"start":1,"end":10,"columns":3,"max_repeat_fraction":2}`, http.StatusBadRequest},
		{"common fraction", `{"count":5,"start":1,"end":10,"columns":3,"max_repeat_fraction":1,"common_fraction":1.5}`, http.StatusBadRequest},
		{"too many cells", `{"count":5000,"start":1,"end":10000,"columns":5000,"max_repeat_fraction":1}`, http.StatusBadRequest},
		{"exhausted", `{"count":5,"start":1,"end":5,"columns":2,"max_repeat_fraction":0,"seed":1}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/runs", tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodGet, "/api/runs", "")
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetTable_ETag(t *testing.T) {
	h := newServer(t, 0)
	run := createRun(t, h, sharedBody)

	rec := do(t, h, http.MethodGet, "/api/runs/1/table", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Nr1,Nr2,Nr3", lines[0])

	etag := rec.Header().Get("ETag")
	assert.Equal(t, strconv.Quote(run.Fingerprint), etag)
	rec = do(t, h, http.MethodGet, "/api/runs/1/table", "", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/runs/1/table", "", "If-None-Match", `"stale", W/`+etag)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/runs/1/table", "", "If-None-Match", `"stale"`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEtagMatch(t *testing.T) {
	const etag = `"abc"`
	cases := []struct {
		header string
		want   bool
	}{
		{"", false},
		{`"abc"`, true},
		{`W/"abc"`, true},
		{`"x", "abc"`, true},
		{`"x",W/"abc" , "y"`, true},
		{`*`, true},
		{`"abcd"`, false},
		{`abc`, false},
		{`"x", "y"`, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, etagMatch(tc.header, etag), tc.header)
	}
	assert.True(t, etagMatch(`"abc"`, `W/"abc"`))
}

func TestGetRepeated(t *testing.T) {
	h := newServer(t, 0)
	createRun(t, h, sharedBody)
	res, err := pipeline.Generate(pipeline.DefaultParams(sharedCfg, 11))
	require.NoError(t, err)
	shared, err := cooccur.FindShared(res.Table)
	require.NoError(t, err)
	require.NotZero(t, shared.Len())

	rec := do(t, h, http.MethodGet, "/api/runs/1/repeated", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []cooccur.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, shared.Entries(), got)

	rec = do(t, h, http.MethodGet, "/api/runs/1/repeated?all=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	total := 0
	for _, e := range got {
		total += len(e.Columns)
	}
	assert.Equal(t, 30, total)
}

func TestGetReport_ComputedOnce(t *testing.T) {
	h := newServer(t, 0)
	createRun(t, h, sharedBody)

	first := do(t, h, http.MethodGet, "/api/runs/1/report", "")
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.True(t, strings.HasPrefix(first.Body.String(), "Number,Columns\n"))

	rec := do(t, h, http.MethodGet, "/api/runs/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var run store.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.True(t, run.HasReport())
	assert.Equal(t, strings.Count(first.Body.String(), "\n")-1, run.ReportRows)

	second := do(t, h, http.MethodGet, "/api/runs/1/report", "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetReport_TooLarge(t *testing.T) {
	h := newServer(t, 1)
	createRun(t, h, sharedBody)

	rec := do(t, h, http.MethodGet, "/api/runs/1/report", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many combinations")
}

func TestGetGraphAndColors(t *testing.T) {
	h := newServer(t, 0)
	createRun(t, h, sharedBody)

	rec := do(t, h, http.MethodGet, "/api/runs/1/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "// Repeated Numbers, run 1\ngraph {")
	again := do(t, h, http.MethodGet, "/api/runs/1/graph", "")
	assert.Equal(t, rec.Body.String(), again.Body.String())

	rec = do(t, h, http.MethodGet, "/api/runs/1/graph?value=9999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), " -- ")

	rec = do(t, h, http.MethodGet, "/api/runs/1/graph?value=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/runs/1/colors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<th>Nr3</th>")
	assert.Contains(t, rec.Body.String(), "background-color: #")
}

func TestGetPath(t *testing.T) {
	h := newServer(t, 0)
	createRun(t, h, sharedBody)
	res, err := pipeline.Generate(pipeline.DefaultParams(sharedCfg, 11))
	require.NoError(t, err)
	sh, err := pipeline.AnalyzeShared(res.Table, nil)
	require.NoError(t, err)
	var cluster []string
	for _, c := range sh.Clusters {
		if len(c) >= 2 {
			cluster = c
			break
		}
	}
	require.NotEmpty(t, cluster)
	from, to := cluster[0], cluster[len(cluster)-1]
	want, err := cooccur.Path(context.Background(), sh.Graph, from, to)
	require.NoError(t, err)

	rec := do(t, h, http.MethodGet, "/api/runs/1/path?from="+from+"&to="+to, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got PathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, PathResponse{From: from, To: to, Links: want}, got)

	rec = do(t, h, http.MethodGet, "/api/runs/1/path?from="+from+"&to="+from, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"links":[]`)

	for target, code := range map[string]int{
		"/api/runs/1/path?from=Nr1":                  http.StatusBadRequest,
		"/api/runs/1/path?from=Nr1&to=Nr2&value=x":   http.StatusBadRequest,
		"/api/runs/1/path?from=Nr1&to=Nr99":          http.StatusNotFound,
		"/api/runs/1/path?from=Nr1&to=Nr2&value=-42": http.StatusNotFound,
		"/api/runs/7/path?from=Nr1&to=Nr2":           http.StatusNotFound,
	} {
		assert.Equal(t, code, do(t, h, http.MethodGet, target, "").Code, target)
	}
}

func TestDeleteRun(t *testing.T) {
	h := newServer(t, 0)
	createRun(t, h, sharedBody)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/runs/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/runs/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/runs/1/table", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/runs/1", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/runs/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/runs/0/report", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newServer(t, 0)
	rec := do(t, h, http.MethodOptions, "/api/runs", "",
		"Origin", origin, "Access-Control-Request-Method", http.MethodPost)
	assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, h, http.MethodGet, "/health", "", "Origin", "http://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreateRun_BodyLimit(t *testing.T) {
	h := newServer(t, 0)
	body := `{"count":5,"start":1,"end":10,"columns":3,"max_repeat_fraction":1,"seed":` +
		string(bytes.Repeat([]byte("1"), MaxBodySize)) + `}`
	rec := do(t, h, http.MethodPost, "/api/runs", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
