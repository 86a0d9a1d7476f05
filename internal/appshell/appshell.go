// Package appshell runs a tool body under a signal-aware context and turns
// its result into the process exit status.
package appshell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes shared by every tool.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, invalid configuration or malformed input
	ExitIO       = 3 // file, database or network failure
	ExitCanceled = 130
)

// RunFunc is the shape of every tool body.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with os.Args and exits. SIGINT/SIGTERM cancel the context;
// a canceled run that still reports success exits with ExitCanceled.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == ExitOK {
		code = ExitCanceled
	}

	stop()
	os.Exit(code)
}

// IsBrokenPipe reports whether err means the reader of stdout went away.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
