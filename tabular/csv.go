// SPDX-License-Identifier: MIT
// Package: tabular
//
// csv.go — stream codecs for tables and reports.

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

// Report header fields.
const (
	HeaderNumber  = "Number"
	HeaderColumns = "Columns"
)

// WriteTable writes t as CSV: header, then rows.
func WriteTable(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("WriteTable: header: %w", err)
	}
	record := make([]string, t.Columns())
	for r := 0; r < t.Rows(); r++ {
		row, err := t.Row(r)
		if err != nil {
			return fmt.Errorf("WriteTable: %w", err)
		}
		for c, v := range row {
			record[c] = strconv.Itoa(v)
		}
		if err = cw.Write(record); err != nil {
			return fmt.Errorf("WriteTable: row %d: %w", r, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadTable parses a CSV table. Empty input yields a table with no columns.
func ReadTable(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return table.FromColumns(nil)
	}
	if err != nil {
		return nil, schemaError("ReadTable: header", err)
	}

	cols := make([][]int, len(header))
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, schemaError("ReadTable", err)
		}
		for c, cell := range record {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("ReadTable: line %d column %q: %q is not an integer: %w",
					line, header[c], cell, table.ErrSchemaMismatch)
			}
			cols[c] = append(cols[c], v)
		}
	}

	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}
	t, err := table.NewNamed(names, cols)
	if err != nil {
		return nil, fmt.Errorf("ReadTable: %w: %w", table.ErrSchemaMismatch, err)
	}

	return t, nil
}

// WriteReport writes rep as CSV with the Number,Columns header.
func WriteReport(w io.Writer, rep cooccur.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{HeaderNumber, HeaderColumns}); err != nil {
		return fmt.Errorf("WriteReport: header: %w", err)
	}
	for i, row := range rep {
		if err := cw.Write([]string{strconv.Itoa(row.Value), row.Label()}); err != nil {
			return fmt.Errorf("WriteReport: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadReport parses a report written by WriteReport.
func ReadReport(r io.Reader) (cooccur.Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return cooccur.Report{}, nil
	}
	if err != nil {
		return nil, schemaError("ReadReport: header", err)
	}
	if header[0] != HeaderNumber || header[1] != HeaderColumns {
		return nil, fmt.Errorf("ReadReport: header %q: %w", header, table.ErrSchemaMismatch)
	}

	rep := cooccur.Report{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rep, nil
		}
		if err != nil {
			return nil, schemaError("ReadReport", err)
		}
		v, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("ReadReport: line %d: %q is not an integer: %w", line, record[0], table.ErrSchemaMismatch)
		}
		rep = append(rep, cooccur.Row{Value: v, Columns: strings.Split(record[1], cooccur.LabelSeparator)})
	}
}

// schemaError wraps a csv parse failure (ragged row, bad quoting) so that it
// matches table.ErrSchemaMismatch while keeping the csv detail.
func schemaError(method string, err error) error {
	return fmt.Errorf("%s: %w: %w", method, table.ErrSchemaMismatch, err)
}
