// Package cli holds the flag sets of the tools. Every ParseXxx returns
// flag.ErrHelp for -h and ErrUsage (wrapped) for anything else the user
// must fix.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
)

// ErrUsage marks argument errors.
var ErrUsage = errors.New("usage error")

// Common flags shared by every tool.
type Common struct {
	Quiet bool
	Seed  int64
}

func registerCommon(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress progress logging on stderr")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed (0 = derive from the clock)")
}

// NewFlagSet returns a ContinueOnError flag set whose usage text starts
// with the given synopsis lines.
func NewFlagSet(name string, synopsis ...string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage:")
		for _, s := range synopsis {
			fmt.Fprintf(out, "  %s %s\n", name, s)
		}
		fmt.Fprintln(out, "\nOptions:")
		fs.PrintDefaults()
	}

	return fs
}

// NewLogger returns the stderr logger of tool name, or a discarding one
// when quiet is set.
func NewLogger(stderr io.Writer, name string, quiet bool) *log.Logger {
	if quiet {
		stderr = io.Discard
	}

	return log.New(stderr, name+": ", log.LstdFlags)
}

// parse runs fs.Parse and rejects positional arguments.
func parse(fs *flag.FlagSet, argv []string, help *bool) error {
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *help {
		return flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(fs.Args(), " "))
	}

	return nil
}

// requireSet fails unless every named flag was given explicitly.
func requireSet(fs *flag.FlagSet, names ...string) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	var missing []string
	for _, n := range names {
		if !set[n] {
			missing = append(missing, "-"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required flags: %s", ErrUsage, strings.Join(missing, ", "))
	}

	return nil
}
