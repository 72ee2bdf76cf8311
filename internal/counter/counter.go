// Package counter implements a parallel word-frequency counter over a
// tree of C source files. An Engine discovers files, fans them out to a
// pool of workers that tokenize each file into a private frequency table,
// merges the per-worker tables, and returns a deterministically ordered
// result: descending count, ties broken by ascending byte-wise word order.
package counter

import (
	"log/slog"
	"sort"
	"time"

	"github.com/kavinraj-m/codefreq/internal/counter/discover"
	"github.com/kavinraj-m/codefreq/internal/counter/merge"
	"github.com/kavinraj-m/codefreq/internal/counter/reader"
	pkgerrors "github.com/kavinraj-m/codefreq/pkg/errors"
	"github.com/kavinraj-m/codefreq/pkg/logger"
	"github.com/kavinraj-m/codefreq/pkg/metrics"
)

// WordCount is one entry of the ordered result sequence.
type WordCount struct {
	Word  string
	Count uint64
}

// Engine counts word occurrences across a directory tree. Each Count call
// is independent; only the files/bytes counters carry over (see Stats).
type Engine struct {
	cfg      Config
	strategy reader.Strategy
	stats    stats
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New validates cfg and builds an Engine. It performs no I/O.
func New(cfg Config) (*Engine, error) {
	if cfg.Workers < 1 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidConfiguration,
			"worker count %d, must be at least 1", cfg.Workers)
	}

	var strategy reader.Strategy
	switch cfg.IOStrategy {
	case IOMapped:
		strategy = reader.Mapped{}
	case IOBuffered:
		strategy = reader.Buffered{}
	default:
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidConfiguration,
			"unknown io strategy %d", cfg.IOStrategy)
	}

	switch cfg.MergeStrategy {
	case MergeSequential, MergeParallel:
	default:
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidConfiguration,
			"unknown merge strategy %d", cfg.MergeStrategy)
	}

	return &Engine{
		cfg:      cfg,
		strategy: strategy,
		logger:   logger.WithComponent("counter-engine"),
	}, nil
}

// SetMetrics mirrors the engine's counters onto Prometheus collectors.
// Optional; a nil receiver argument disables mirroring.
func (e *Engine) SetMetrics(m *metrics.Metrics) {
	e.metrics = m
}

// Count walks root, processes every matching file in parallel, and returns
// the merged frequency table sorted by descending count and ascending word.
// Files that fail to open or read are logged and skipped; only
// configuration or pipeline failures are fatal.
func (e *Engine) Count(root string) ([]WordCount, error) {
	start := time.Now()

	files := discover.Files(root)
	if !e.cfg.Quiet {
		e.logger.Info("discovery complete", "root", root, "files", len(files))
	}

	tables, err := e.runPipeline(files)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrPipeline, "counting %s: %v", root, err)
	}

	combined := e.mergeTables(tables)
	results := sortTable(combined)

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.CountDuration.Observe(elapsed.Seconds())
		e.metrics.UniqueWords.Set(float64(len(results)))
	}
	if !e.cfg.Quiet {
		e.logger.Info("count complete",
			"root", root,
			"unique_words", len(results),
			"elapsed", elapsed,
		)
	}
	return results, nil
}

// Stats returns the cumulative number of files and bytes processed by this
// engine across all Count calls so far.
func (e *Engine) Stats() (files, bytes uint64) {
	return e.stats.filesProcessed.Load(), e.stats.bytesProcessed.Load()
}

func (e *Engine) mergeTables(tables []map[string]uint64) map[string]uint64 {
	if e.cfg.MergeStrategy == MergeParallel && len(tables) > 2 {
		return merge.Parallel(tables)
	}
	return merge.Sequential(tables)
}

// sortTable orders the combined table by descending count, then ascending
// byte-wise word order. The secondary key makes count ties deterministic
// regardless of worker count or merge strategy.
func sortTable(combined map[string]uint64) []WordCount {
	results := make([]WordCount, 0, len(combined))
	for word, count := range combined {
		results = append(results, WordCount{Word: word, Count: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Word < results[j].Word
	})
	return results
}
