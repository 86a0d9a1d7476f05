// Command numgraph: see package graphapp.
package main

import (
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/graphapp"
)

func main() { appshell.Main(graphapp.RunContext) }
