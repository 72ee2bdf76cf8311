package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kavinraj-m/codefreq/internal/counter"
	"github.com/kavinraj-m/codefreq/pkg/config"
	pkgerrors "github.com/kavinraj-m/codefreq/pkg/errors"
	"github.com/kavinraj-m/codefreq/pkg/logger"
	"github.com/kavinraj-m/codefreq/pkg/metrics"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config file (optional)")
	workers := flag.Int("n", 0, "number of workers (0 = one per CPU)")
	useMmap := flag.Bool("m", true, "use memory-mapped file I/O")
	parallelMerge := flag.Bool("p", true, "merge worker tables in parallel")
	silent := flag.Bool("s", false, "suppress progress and summary output")
	top := flag.Int("t", 0, "show only the top N words (0 = all)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: codefreq [flags] <directory>")
		flag.PrintDefaults()
		return 2
	}
	root := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 2
	}

	// Explicitly set flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Counter.Workers = *workers
		case "m":
			if *useMmap {
				cfg.Counter.IOStrategy = "mapped"
			} else {
				cfg.Counter.IOStrategy = "buffered"
			}
		case "p":
			if *parallelMerge {
				cfg.Counter.MergeStrategy = "parallel"
			} else {
				cfg.Counter.MergeStrategy = "sequential"
			}
		case "s":
			cfg.Counter.Quiet = *silent
		}
	})

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	engCfg := counter.DefaultConfig()
	if cfg.Counter.Workers > 0 {
		engCfg.Workers = cfg.Counter.Workers
	}
	engCfg.Quiet = cfg.Counter.Quiet
	if engCfg.IOStrategy, err = counter.ParseIOStrategy(cfg.Counter.IOStrategy); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return pkgerrors.ExitCode(err)
	}
	if engCfg.MergeStrategy, err = counter.ParseMergeStrategy(cfg.Counter.MergeStrategy); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return pkgerrors.ExitCode(err)
	}

	eng, err := counter.New(engCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return pkgerrors.ExitCode(err)
	}

	if cfg.Metrics.Enabled {
		eng.SetMetrics(metrics.New())
		shutdown := metrics.StartServer(cfg.Metrics.Port)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			shutdown(ctx)
		}()
	}

	if !engCfg.Quiet {
		fmt.Printf("codefreq: %d workers, io: %s, merge: %s\n",
			engCfg.Workers, engCfg.IOStrategy, engCfg.MergeStrategy)
	}

	start := time.Now()
	results, err := eng.Count(root)
	if err != nil {
		slog.Error("count failed", "root", root, "error", err)
		return pkgerrors.ExitCode(err)
	}
	elapsed := time.Since(start)

	if !engCfg.Quiet {
		files, bytes := eng.Stats()
		fmt.Printf("Processed %d files, %s in %s\n",
			files, humanize.Bytes(bytes), elapsed.Round(time.Millisecond))
		fmt.Printf("Found %d unique words\n\n", len(results))
	}

	if *top > 0 && *top < len(results) {
		results = results[:*top]
	}
	for _, wc := range results {
		fmt.Printf("%32s | %8d\n", wc.Word, wc.Count)
	}
	return 0
}
