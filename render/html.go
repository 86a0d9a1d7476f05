// SPDX-License-Identifier: MIT
// Package: render
//
// html.go — the table as an HTML page, repeated values highlighted.

package render

import (
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

// ErrNilTable is returned by WriteHTMLTable for a nil table.
var ErrNilTable = errors.New("render: table is nil")

type htmlCell struct {
	Value int
	Color string
}

type htmlLegend struct {
	Value int
	Count int
	Color string
}

type htmlPage struct {
	Title  string
	Names  []string
	Rows   [][]htmlCell
	Legend []htmlLegend
}

var pageTmpl = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<table border="1">
<tr>{{range .Names}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td{{if .Color}} style="background-color: {{.Color}}"{{end}}>{{.Value}}</td>{{end}}</tr>
{{end}}</table>
{{if .Legend}}<table border="1">
<tr><th>Number</th><th>Count</th></tr>
{{range .Legend}}<tr><td style="background-color: {{.Color}}">{{.Value}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}</body>
</html>
`))

// WriteHTMLTable writes t row-major with the Nr1..NrN header, colouring
// each cell whose value is in p. A nil p colours nothing.
func WriteHTMLTable(w io.Writer, t *table.Table, p *Palette, opts ...Option) error {
	if t == nil {
		return ErrNilTable
	}
	cfg := newConfig(opts)
	if p == nil {
		p = &Palette{colors: map[int]string{}}
	}

	page := htmlPage{Title: cfg.title, Names: t.Names(), Rows: make([][]htmlCell, t.Rows())}
	for r := range page.Rows {
		row, err := t.Row(r)
		if err != nil {
			return fmt.Errorf("WriteHTMLTable: %w", err)
		}
		cells := make([]htmlCell, len(row))
		for c, v := range row {
			color, _ := p.Color(v)
			cells[c] = htmlCell{Value: v, Color: color}
		}
		page.Rows[r] = cells
	}
	for _, f := range p.Legend() {
		color, _ := p.Color(f.Value)
		page.Legend = append(page.Legend, htmlLegend{Value: f.Value, Count: f.Count, Color: color})
	}

	return pageTmpl.Execute(w, page)
}
