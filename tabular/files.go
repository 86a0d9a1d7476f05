// SPDX-License-Identifier: MIT
// Package: tabular
//
// files.go — path-based helpers with transparent gzip.

package tabular

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	gzip "github.com/klauspost/pgzip"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

// IsGzip reports whether name carries the .gz suffix.
func IsGzip(name string) bool { return strings.HasSuffix(name, ".gz") }

// Create opens name for writing, truncating it. Writes go through gzip when
// name ends in ".gz". Close flushes every layer.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	if !IsGzip(name) {
		return &fileWriter{w: bw, buf: bw, file: f}, nil
	}
	zw := gzip.NewWriter(bw)

	return &fileWriter{w: zw, zip: zw, buf: bw, file: f}, nil
}

// Open opens name for reading, decompressing when it ends in ".gz".
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if !IsGzip(name) {
		return f, nil
	}
	zr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &fileReader{Reader: zr, zip: zr, file: f}, nil
}

type fileWriter struct {
	w    io.Writer
	zip  *gzip.Writer
	buf  *bufio.Writer
	file *os.File
}

func (fw *fileWriter) Write(p []byte) (int, error) { return fw.w.Write(p) }

func (fw *fileWriter) Close() error {
	var first error
	keep := func(err error) {
		if first == nil && err != nil {
			first = err
		}
	}
	if fw.zip != nil {
		keep(fw.zip.Close())
	}
	keep(fw.buf.Flush())
	keep(fw.file.Close())

	return first
}

type fileReader struct {
	io.Reader
	zip  *gzip.Reader
	file *os.File
}

func (fr *fileReader) Close() error {
	zerr := fr.zip.Close()
	ferr := fr.file.Close()
	if zerr != nil {
		return zerr
	}

	return ferr
}

// SaveTable writes t to name (see Create).
func SaveTable(name string, t *table.Table) (err error) {
	w, err := Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteTable(w, t)
}

// LoadTable reads a table from name (see Open).
func LoadTable(name string) (*table.Table, error) {
	r, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadTable(r)
}

// SaveReport writes rep to name (see Create).
func SaveReport(name string, rep cooccur.Report) (err error) {
	w, err := Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteReport(w, rep)
}

// LoadReport reads a report from name (see Open).
func LoadReport(name string) (cooccur.Report, error) {
	r, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadReport(r)
}
