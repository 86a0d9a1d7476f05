// Command numgen: see package genapp.
package main

import (
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/appshell"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/internal/genapp"
)

func main() { appshell.Main(genapp.RunContext) }
