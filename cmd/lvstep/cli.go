package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/lvstep/internal/config"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// options are the flags that are not part of config.Config.
type options struct {
	save      string
	export    string
	show      bool
	list      bool
	libraryLs bool
}

// parse layers defaults, the -config file and explicitly set flags, then
// validates. shouldExit is true after -h.
func parse(args []string, out io.Writer) (cfg config.Config, opts options, shouldExit bool, err error) {
	fs := flag.NewFlagSet("lvstep", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
lvstep - step through graph and geometry algorithms one snapshot at a time.

Usage:
  lvstep [options]

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	configPath := fs.String("config", "", "Path to a YAML config file.")
	algo := fs.String("algorithm", def.Algorithm, "Algorithm name (see -list).")
	start := fs.String("start", "", "Start node ID; empty means the first node.")
	target := fs.String("target", "", "Target node ID for AStar; empty means a random node.")
	seed := fs.Int64("seed", 0, "Random seed for target selection; 0 means time-based.")
	graphPath := fs.String("graph", "", "Graph file (.json, .yaml, .yml); empty means the sample graph.")
	saved := fs.String("saved", "", "Name of a graph in the library to run on.")
	undirected := fs.Bool("undirected", false, "Use the undirected sample graph.")
	logLevel := fs.String("log-level", def.Log.Level, "Log level: debug, info, warn, error.")
	logFormat := fs.String("log-format", def.Log.Format, "Log format: json or console.")
	limit := fs.Int("limit", def.Run.StepLimit, "Maximum engine steps; 0 is unbounded.")
	interactive := fs.Bool("tui", false, "Open the interactive stepping console.")
	libPath := fs.String("library", def.Library.Path, "Saved-graph library file.")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090.")
	fs.StringVar(&opts.save, "save", "", "Save the input graph into the library under this name.")
	fs.StringVar(&opts.export, "export", "", "Write the input graph to this file (.json, .yaml, .yml).")
	fs.BoolVar(&opts.show, "show", false, "Print node and edge marks for every step.")
	fs.BoolVar(&opts.list, "list", false, "List algorithm names and exit.")
	fs.BoolVar(&opts.libraryLs, "library-list", false, "List saved graph names and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, opts, true, nil
		}
		return cfg, opts, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return cfg, opts, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	cfg, err = config.Load(*configPath)
	if err != nil {
		return cfg, opts, false, &ExitError{Code: 2, Message: err.Error()}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithm":
			cfg.Algorithm = *algo
		case "start":
			cfg.Start = *start
		case "target":
			cfg.Target = *target
		case "seed":
			cfg.Seed = *seed
		case "graph":
			cfg.Graph.Path = *graphPath
		case "saved":
			cfg.Graph.Saved = *saved
		case "undirected":
			cfg.Graph.Directed = !*undirected
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "limit":
			cfg.Run.StepLimit = *limit
		case "tui":
			cfg.Run.Interactive = *interactive
		case "library":
			cfg.Library.Path = *libPath
		case "metrics-addr":
			cfg.Metrics.Addr = *metricsAddr
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, opts, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, opts, false, nil
}
