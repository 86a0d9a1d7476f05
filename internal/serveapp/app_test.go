package serveapp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	return addr
}

func TestRunContext_ServesUntilCanceled(t *testing.T) {
	addr := freeAddr(t)
	db := filepath.Join(t.TempDir(), "runs.sqlite")
	ctx, cancel := context.WithCancel(context.Background())

	var stdout, stderr bytes.Buffer
	done := make(chan int, 1)
	go func() {
		done <- RunContext(ctx, []string{"-addr", addr, "-db", db, "-quiet"}, &stdout, &stderr)
	}()

	url := fmt.Sprintf("http://%s/health", addr)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "OK"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, appshell.ExitOK, code, stderr.String())
	case <-time.After(15 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunContext_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, appshell.ExitUsage,
		RunContext(context.Background(), []string{"-max-rows", "-1"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Usage:")

	stdout.Reset()
	assert.Equal(t, appshell.ExitOK, RunContext(context.Background(), []string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "-origins")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	db := filepath.Join(t.TempDir(), "runs.sqlite")
	assert.Equal(t, appshell.ExitIO,
		RunContext(context.Background(), []string{"-addr", ln.Addr().String(), "-db", db, "-quiet"}, &stdout, &stderr))
}

func TestRunContext_PortFromEnv(t *testing.T) {
	old := getenv
	t.Cleanup(func() { getenv = old })
	getenv = func(k string) string {
		if k == "PORT" {
			return "not-a-port"
		}
		return ""
	}

	var stdout, stderr bytes.Buffer
	db := filepath.Join(t.TempDir(), "runs.sqlite")
	assert.Equal(t, appshell.ExitIO,
		RunContext(context.Background(), []string{"-db", db, "-quiet"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "not-a-port")
}
