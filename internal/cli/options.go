package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/generator"
)

// Default file names, matching what the tools read back from each other.
const (
	DefaultTableFile  = "numbers.csv"
	DefaultGraphFile  = "repeated_numbers_graph.dot"
	DefaultReportFile = "repeated_numbers.csv"
	DefaultAddr       = ":8001"
)

// GenOptions configures numgen.
type GenOptions struct {
	Common
	Config          generator.Config
	CommonFraction  float64
	InjectionPasses int
	Output          string
	HTML            string
	DB              string
}

// ParseGenArgs parses numgen flags. All five generation parameters are
// required.
func ParseGenArgs(fs *flag.FlagSet, argv []string) (GenOptions, error) {
	var o GenOptions
	var help bool
	registerCommon(fs, &o.Common)
	fs.IntVar(&o.Config.Count, "count", 0, "numbers per column [required]")
	fs.IntVar(&o.Config.Start, "start", 0, "smallest value, inclusive [required]")
	fs.IntVar(&o.Config.End, "end", 0, "largest value, inclusive [required]")
	fs.IntVar(&o.Config.Columns, "columns", 0, "number of columns [required]")
	fs.Float64Var(&o.Config.MaxRepeatFraction, "max-repeat-fraction", 0, "repetition budget as a share of all cells, 0..1 [required]")
	fs.Float64Var(&o.CommonFraction, "common-fraction", generator.DefaultCommonFraction, "share of count injected into every column, 0..1")
	fs.IntVar(&o.InjectionPasses, "passes", generator.DefaultInjectionPasses, "injection passes (0 disables injection)")
	fs.StringVar(&o.Output, "out", DefaultTableFile, "output CSV (.gz compresses)")
	fs.StringVar(&o.HTML, "html", "", "also write an HTML table with repeated values coloured")
	fs.StringVar(&o.DB, "db", "", "also save the run to this SQLite file")
	fs.BoolVar(&help, "h", false, "show this help")

	if err := parse(fs, argv, &help); err != nil {
		return o, err
	}
	if err := requireSet(fs, "count", "start", "end", "columns", "max-repeat-fraction"); err != nil {
		return o, err
	}
	if o.Output == "" {
		return o, fmt.Errorf("%w: -out must not be empty", ErrUsage)
	}

	return o, nil
}

// GraphOptions configures numgraph.
type GraphOptions struct {
	Common
	Input    string
	Output   string
	Value    int
	HasValue bool
	// PathFrom and PathTo are set by -path NrA,NrB.
	PathFrom string
	PathTo   string
}

// ParseGraphArgs parses numgraph flags.
func ParseGraphArgs(fs *flag.FlagSet, argv []string) (GraphOptions, error) {
	var o GraphOptions
	var help bool
	var path string
	registerCommon(fs, &o.Common)
	fs.StringVar(&o.Input, "in", DefaultTableFile, "input table CSV (.gz accepted)")
	fs.StringVar(&o.Output, "out", DefaultGraphFile, "output DOT file")
	fs.IntVar(&o.Value, "value", 0, "only draw edges of this shared value")
	fs.StringVar(&path, "path", "", "print the shortest column chain NrA,NrB")
	fs.BoolVar(&help, "h", false, "show this help")

	if err := parse(fs, argv, &help); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "value" {
			o.HasValue = true
		}
	})
	if path != "" {
		from, to, ok := strings.Cut(path, ",")
		o.PathFrom, o.PathTo = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || o.PathFrom == "" || o.PathTo == "" || strings.Contains(o.PathTo, ",") {
			return o, fmt.Errorf("%w: -path wants two column names, got %q", ErrUsage, path)
		}
	}
	if strings.TrimSpace(o.Input) == "" || strings.TrimSpace(o.Output) == "" {
		return o, fmt.Errorf("%w: -in and -out must not be empty", ErrUsage)
	}

	return o, nil
}

// ReportOptions configures numreport.
type ReportOptions struct {
	Common
	Input   string
	Output  string
	MaxRows int
}

// ParseReportArgs parses numreport flags.
func ParseReportArgs(fs *flag.FlagSet, argv []string) (ReportOptions, error) {
	var o ReportOptions
	var help bool
	registerCommon(fs, &o.Common)
	fs.StringVar(&o.Input, "in", DefaultTableFile, "input table CSV (.gz accepted)")
	fs.StringVar(&o.Output, "out", DefaultReportFile, "output report CSV (.gz compresses)")
	fs.IntVar(&o.MaxRows, "max-rows", 0, "refuse reports larger than this (0 = unlimited)")
	fs.BoolVar(&help, "h", false, "show this help")

	if err := parse(fs, argv, &help); err != nil {
		return o, err
	}
	if o.MaxRows < 0 {
		return o, fmt.Errorf("%w: -max-rows=%d < 0", ErrUsage, o.MaxRows)
	}
	if strings.TrimSpace(o.Input) == "" || strings.TrimSpace(o.Output) == "" {
		return o, fmt.Errorf("%w: -in and -out must not be empty", ErrUsage)
	}

	return o, nil
}

// ServeOptions configures numserve.
type ServeOptions struct {
	Common
	Addr    string
	DB      string
	Origins []string
	MaxRows int
}

// ParseServeArgs parses numserve flags. Without -addr the PORT variable
// (looked up through getenv) picks the port; DefaultAddr otherwise.
func ParseServeArgs(fs *flag.FlagSet, argv []string, getenv func(string) string) (ServeOptions, error) {
	var o ServeOptions
	var help bool
	var origins string
	registerCommon(fs, &o.Common)
	fs.StringVar(&o.Addr, "addr", "", "listen address (default $PORT or "+DefaultAddr+")")
	fs.StringVar(&o.DB, "db", "runs.sqlite", "SQLite database file")
	fs.StringVar(&origins, "origins", "http://localhost:3000", "comma-separated CORS origins")
	fs.IntVar(&o.MaxRows, "max-rows", 1_000_000, "largest report the server computes (0 = unlimited)")
	fs.BoolVar(&help, "h", false, "show this help")

	if err := parse(fs, argv, &help); err != nil {
		return o, err
	}
	if o.Addr == "" {
		if port := getenv("PORT"); port != "" {
			o.Addr = ":" + port
		} else {
			o.Addr = DefaultAddr
		}
	}
	for _, s := range strings.Split(origins, ",") {
		if s = strings.TrimSpace(s); s != "" {
			o.Origins = append(o.Origins, s)
		}
	}
	if o.DB == "" {
		return o, fmt.Errorf("%w: -db must not be empty", ErrUsage)
	}
	if o.MaxRows < 0 {
		return o, fmt.Errorf("%w: -max-rows=%d < 0", ErrUsage, o.MaxRows)
	}

	return o, nil
}
