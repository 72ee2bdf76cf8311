package counter

import (
	"golang.org/x/sync/errgroup"
)

// Work-queue capacity as a multiple of the worker count. Bounds how far
// the producer can run ahead of the workers on a very large tree.
const queueFactor = 2

// runPipeline fans files out to the worker pool and returns every
// worker's local frequency table. One producer goroutine feeds a bounded
// path channel; each worker drains it into a table only it ever touches,
// then hands the table over on the results channel. The results channel
// holds one slot per worker, so no worker blocks after finishing.
func (e *Engine) runPipeline(files []string) ([]map[string]uint64, error) {
	paths := make(chan string, e.cfg.Workers*queueFactor)
	results := make(chan map[string]uint64, e.cfg.Workers)

	go func() {
		defer close(paths)
		for _, f := range files {
			paths <- f
		}
	}()

	var g errgroup.Group
	for i := 0; i < e.cfg.Workers; i++ {
		g.Go(func() error {
			local := make(map[string]uint64, 1024)
			for path := range paths {
				n, err := e.strategy.Process(path, local)
				if err != nil {
					e.logger.Warn("skipping file", "path", path, "error", err)
					continue
				}
				e.stats.record(n)
				if e.metrics != nil {
					e.metrics.FilesProcessedTotal.Inc()
					e.metrics.BytesProcessedTotal.Add(float64(n))
				}
			}
			results <- local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	tables := make([]map[string]uint64, 0, e.cfg.Workers)
	for t := range results {
		tables = append(tables, t)
	}
	return tables, nil
}
