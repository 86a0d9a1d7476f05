// Command numreport: see package reportapp.
package main

import (
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/reportapp"
)

func main() { appshell.Main(reportapp.RunContext) }
