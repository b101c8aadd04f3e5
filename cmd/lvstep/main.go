// Command lvstep runs one stepping engine over a graph and prints, or lets
// the user browse, every recorded snapshot.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/history"
	"github.com/katalvlaran/lvstep/internal/config"
	"github.com/katalvlaran/lvstep/internal/logging"
	"github.com/katalvlaran/lvstep/internal/tui"
	"github.com/katalvlaran/lvstep/library"
	"github.com/katalvlaran/lvstep/registry"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	cfg, opts, shouldExit, err := parse(args, out)
	if err != nil || shouldExit {
		return err
	}

	reg := registry.Default()
	if opts.list {
		fmt.Fprintln(out, strings.Join(reg.Names(), "\n"))
		return nil
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, err := library.Open(cfg.Library.Path, library.WithLogger(log.Named("library")))
	if err != nil {
		return err
	}
	if opts.libraryLs {
		for _, name := range store.List() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	g, source, err := loadGraph(cfg, store)
	if err != nil {
		return err
	}
	log.Info("graph loaded",
		zap.String("source", source),
		zap.Bool("directed", g.Directed()),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))

	if opts.save != "" {
		if err := store.Save(opts.save, g); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved graph %q to %s.\n", opts.save, store.Path())
	}
	if opts.export != "" {
		if err := exportGraph(opts.export, g); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported graph to %s.\n", opts.export)
	}

	alg, err := reg.New(cfg.Algorithm, engineOptions(cfg)...)
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("%v (known: %s)", err, strings.Join(reg.Names(), ", "))}
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	metrics := history.NewMetrics(promReg)
	if cfg.Metrics.Addr != "" {
		stop := serveMetrics(cfg.Metrics.Addr, promReg, log)
		defer stop()
	}

	rec, err := history.New(alg, g,
		history.WithLogger(log.Named("history")),
		history.WithMetrics(metrics))
	if err != nil {
		return err
	}

	if cfg.Run.Interactive {
		return tui.Run(rec, g, cfg.Run.StepLimit)
	}

	return printRun(out, rec, g, cfg.Run.StepLimit, opts.show)
}

// loadGraph resolves the configured graph source and names it for logging.
func loadGraph(cfg config.Config, store *library.Store) (*core.Graph, string, error) {
	switch {
	case cfg.Graph.Saved != "":
		g, err := store.Load(cfg.Graph.Saved)
		return g, "library:" + cfg.Graph.Saved, err
	case cfg.Graph.Path != "":
		format, err := core.FormatFromPath(cfg.Graph.Path)
		if err != nil {
			return nil, "", err
		}
		f, err := os.Open(cfg.Graph.Path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		g, err := core.Decode(f, format)
		if err != nil {
			return nil, "", fmt.Errorf("load %s: %w", cfg.Graph.Path, err)
		}
		return g, cfg.Graph.Path, nil
	default:
		return builder.SampleGraph(cfg.Graph.Directed), "sample", nil
	}
}

// exportGraph writes g to path in the format named by its extension.
func exportGraph(path string, g *core.Graph) error {
	format, err := core.FormatFromPath(path)
	if err != nil {
		return &ExitError{Code: 2, Message: fmt.Sprintf("export: %v", err)}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := core.Encode(f, g, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}

	return f.Close()
}

func engineOptions(cfg config.Config) []algorithm.Option {
	var opts []algorithm.Option
	if cfg.Start != "" {
		opts = append(opts, algorithm.WithStart(cfg.Start))
	}
	if cfg.Target != "" {
		opts = append(opts, algorithm.WithTarget(cfg.Target))
	}
	if cfg.Seed != 0 {
		opts = append(opts, algorithm.WithSeed(cfg.Seed))
	}

	return opts
}

// printRun executes the engine to completion and prints every record.
func printRun(out io.Writer, rec *history.Recorder, g *core.Graph, limit int, show bool) error {
	runErr := rec.RunToEnd(limit)
	for i, r := range rec.Records() {
		if show {
			fmt.Fprintf(out, "--- step %d ---\n%s\n", i, tui.Snapshot(g, r))
			continue
		}
		fmt.Fprintf(out, "[%d] %s\n", i, strings.ReplaceAll(r.Description, "\n", "\n    "))
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(out, "%s finished after %d steps.\n", rec.Algorithm(), rec.StepCount())

	return nil
}

// serveMetrics exposes reg on addr until the returned stop func is called.
func serveMetrics(addr string, reg *prometheus.Registry, log *zap.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("metrics listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
