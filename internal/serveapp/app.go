// Package serveapp is the numserve tool: the HTTP API over a run database.
package serveapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/cli"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/httpapi"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/store"
)

const name = "numserve"

// shutdownGrace bounds how long in-flight requests may finish after the
// context is canceled.
const shutdownGrace = 10 * time.Second

// getenv is swapped in tests.
var getenv = os.Getenv

// RunContext runs numserve with argv until ctx is canceled.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name, "[-addr :8001] [-db runs.sqlite] [-origins URL,...] [-max-rows N]")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseServeArgs(fs, argv, getenv)
	if err != nil {
		outw := bufio.NewWriter(stdout)
		defer func() { _ = outw.Flush() }()
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

	s, err := store.Open(ctx, store.FileDSN(opts.DB))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}
	defer s.Close()

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}

	h := httpapi.NewHandler(s, logger, opts.MaxRows)
	srv := &http.Server{
		Handler:           httpapi.NewRouter(h, opts.Origins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Printf("listening on http://%s (db %s)", ln.Addr(), opts.DB)
	logger.Printf("CORS enabled for: %s", strings.Join(opts.Origins, ", "))

	return serve(ctx, srv, ln, logger.Printf, stderr)
}

// serve runs srv on ln until it fails or ctx is canceled, then shuts it
// down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logf func(string, ...interface{}), stderr io.Writer) int {
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	case <-ctx.Done():
	}

	logf("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintln(stderr, err)
		return appshell.ExitIO
	}

	return appshell.ExitOK
}
