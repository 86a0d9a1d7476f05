// Command numserve: see package serveapp.
package main

import (
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/serveapp"
)

func main() { appshell.Main(serveapp.RunContext) }
