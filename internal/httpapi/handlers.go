package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/generator"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/pipeline"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/render"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/store"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/tabular"
)

const (
	// MaxBodySize bounds a POST /api/runs request body.
	MaxBodySize = 1 << 20
	// MaxCells bounds Count·Columns of a run created over HTTP.
	MaxCells = 5_000_000
)

var errBadRequest = errors.New("bad request")

// Handler serves the run API on top of a store.
type Handler struct {
	Store   *store.Store
	Logger  *log.Logger
	MaxRows int // report size limit, 0 = unlimited

	now func() time.Time
}

// NewHandler returns a Handler over s. logger receives one line per run
// created or report computed.
func NewHandler(s *store.Store, logger *log.Logger, maxRows int) *Handler {
	return &Handler{Store: s, Logger: logger, MaxRows: maxRows, now: time.Now}
}

// RegisterRoutes mounts the API on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Post("/api/runs", h.CreateRun)
	r.Get("/api/runs", h.ListRuns)
	r.Get("/api/runs/{id}", h.GetRun)
	r.Delete("/api/runs/{id}", h.DeleteRun)
	r.Get("/api/runs/{id}/table", h.GetTable)
	r.Get("/api/runs/{id}/repeated", h.GetRepeated)
	r.Get("/api/runs/{id}/report", h.GetReport)
	r.Get("/api/runs/{id}/graph", h.GetGraph)
	r.Get("/api/runs/{id}/path", h.GetPath)
	r.Get("/api/runs/{id}/colors", h.GetColors)
}

// ============================================================================
// Health
// ============================================================================

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// ============================================================================
// Runs
// ============================================================================

// CreateRunRequest is the body of POST /api/runs. Seed 0 derives a seed from
// the clock; the injection fields default to the generator defaults.
type CreateRunRequest struct {
	generator.Config
	Seed            int64    `json:"seed"`
	CommonFraction  *float64 `json:"common_fraction,omitempty"`
	InjectionPasses *int     `json:"injection_passes,omitempty"`
}

// CreateRun generates a table and stores it as a new run.
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req CreateRunRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.fail(w, fmt.Errorf("%w: invalid JSON: %w", errBadRequest, err))
		return
	}
	if err := req.Config.Validate(); err != nil {
		h.fail(w, err)
		return
	}
	if req.Columns > MaxCells/req.Count {
		h.fail(w, fmt.Errorf("%w: %d×%d cells exceed the limit of %s",
			errBadRequest, req.Count, req.Columns, humanize.Comma(MaxCells)))
		return
	}

	params := pipeline.DefaultParams(req.Config, pipeline.ResolveSeed(req.Seed, h.now))
	if req.CommonFraction != nil {
		params.CommonFraction = *req.CommonFraction
	}
	if req.InjectionPasses != nil {
		params.InjectionPasses = *req.InjectionPasses
	}

	res, err := pipeline.Generate(params)
	if err != nil {
		h.fail(w, err)
		return
	}
	run, err := h.Store.SaveRun(r.Context(), pipeline.Record(params, res), res.Table)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.logf("run %d: %s cells, %s replacements, seed %d",
		run.ID, humanize.Comma(int64(res.Table.Len())), humanize.Comma(int64(res.Replacements)), run.Seed)

	w.Header().Set("Location", fmt.Sprintf("/api/runs/%d", run.ID))
	writeJSON(w, http.StatusCreated, run)
}

// ListRuns returns every stored run, oldest first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// GetRun returns one run.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// DeleteRun removes a run with its table and report.
func (h *Handler) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id, err := runID(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	if err := h.Store.DeleteRun(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Tables and analysis
// ============================================================================

// GetTable returns the table of a run as CSV. The ETag is the table
// fingerprint; a matching If-None-Match yields 304.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	etag := strconv.Quote(run.Fingerprint)
	w.Header().Set("ETag", etag)
	if etagMatch(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	t, ok := h.table(w, r, run)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	if err := tabular.WriteTable(w, t); err != nil {
		h.logf("run %d: write table: %v", run.ID, err)
	}
}

// GetRepeated returns the values shared between columns as JSON. With
// ?all=true every value is listed with one column per occurrence.
func (h *Handler) GetRepeated(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	t, ok := h.table(w, r, run)
	if !ok {
		return
	}

	find := cooccur.FindShared
	if all, _ := strconv.ParseBool(r.URL.Query().Get("all")); all {
		find = cooccur.FindRepeated
	}
	x, err := find(t)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, x.Entries())
}

// GetReport returns the combination report as CSV, computing and storing
// it on first request.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}

	rep, err := h.Store.LoadReport(r.Context(), run.ID)
	if errors.Is(err, store.ErrReportNotFound) {
		t, ok := h.table(w, r, run)
		if !ok {
			return
		}
		if _, rep, err = pipeline.BuildReport(r.Context(), t, h.MaxRows); err != nil {
			h.fail(w, err)
			return
		}
		if err = h.Store.SaveReport(r.Context(), run.ID, rep); err != nil {
			h.fail(w, err)
			return
		}
		h.logf("run %d: report of %s rows saved", run.ID, humanize.Comma(int64(len(rep))))
	} else if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	if err := tabular.WriteReport(w, rep); err != nil {
		h.logf("run %d: write report: %v", run.ID, err)
	}
}

// GetGraph returns the co-occurrence graph as DOT, restricted to one value
// with ?value=V. Colours are drawn from the run seed.
func (h *Handler) GetGraph(w http.ResponseWriter, r *http.Request) {
	value, err := valueParam(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	t, ok := h.table(w, r, run)
	if !ok {
		return
	}
	sh, err := pipeline.AnalyzeShared(t, value)
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	opts := []render.Option{
		render.WithRand(rand.New(rand.NewSource(run.Seed))),
		render.WithTitle(fmt.Sprintf("%s, run %d", render.DefaultTitle, run.ID)),
	}
	if err := render.WriteDOT(w, sh.Graph, opts...); err != nil {
		h.logf("run %d: write graph: %v", run.ID, err)
	}
}

// PathResponse is the body of GET /api/runs/{id}/path.
type PathResponse struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Links []cooccur.Link `json:"links"`
}

// GetPath returns the shortest chain of columns linking ?from to ?to through
// shared values; ?value=V restricts the chain to one value. Unlinked
// columns yield 404.
func (h *Handler) GetPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		h.fail(w, fmt.Errorf("%w: from and to are required", errBadRequest))
		return
	}
	value, err := valueParam(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	t, ok := h.table(w, r, run)
	if !ok {
		return
	}
	sh, err := pipeline.AnalyzeShared(t, value)
	if err != nil {
		h.fail(w, err)
		return
	}
	links, err := cooccur.Path(r.Context(), sh.Graph, from, to)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PathResponse{From: from, To: to, Links: links})
}

// GetColors returns the table as an HTML page with repeated values coloured,
// the same colours numgen writes for the same seed.
func (h *Handler) GetColors(w http.ResponseWriter, r *http.Request) {
	run, ok := h.run(w, r)
	if !ok {
		return
	}
	t, ok := h.table(w, r, run)
	if !ok {
		return
	}
	p := render.NewPalette(t, render.WithRand(rand.New(rand.NewSource(run.Seed))))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteHTMLTable(w, t, p); err != nil {
		h.logf("run %d: write colors: %v", run.ID, err)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (store.Run, bool) {
	id, err := runID(r)
	if err != nil {
		h.fail(w, err)
		return store.Run{}, false
	}
	run, err := h.Store.GetRun(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return store.Run{}, false
	}

	return run, true
}

func (h *Handler) table(w http.ResponseWriter, r *http.Request, run store.Run) (*table.Table, bool) {
	t, err := h.Store.LoadTable(r.Context(), run.ID)
	if err != nil {
		h.fail(w, err)
		return nil, false
	}

	return t, true
}

func valueParam(r *http.Request) (*int, error) {
	s := r.URL.Query().Get("value")
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: value %q is not an integer", errBadRequest, s)
	}

	return &v, nil
}

// etagMatch reports whether an If-None-Match header lists etag. The header
// is a comma-separated list of entity tags or "*"; comparison is weak, so a
// W/ prefix on either side is ignored.
func etagMatch(header, etag string) bool {
	etag = strings.TrimPrefix(etag, "W/")
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}

	return false
}

func runID(r *http.Request) (int64, error) {
	s := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: run id %q", errBadRequest, s)
	}

	return id, nil
}

// fail writes err with the status statusOf picks; server errors are logged.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logf("error: %v", err)
	}
	http.Error(w, err.Error(), status)
}

func statusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest),
		errors.Is(err, generator.ErrInvalidConfig),
		errors.Is(err, generator.ErrSampling):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrRunNotFound),
		errors.Is(err, cooccur.ErrNoPath):
		return http.StatusNotFound
	case errors.Is(err, generator.ErrReplacementExhausted),
		errors.Is(err, cooccur.ErrTooManyCombinations):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) logf(format string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Printf(format, args...)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
