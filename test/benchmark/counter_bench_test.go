package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kavinraj-m/codefreq/internal/counter"
)

func buildTree(b *testing.B, fileCount, repeats int) string {
	b.Helper()
	dir := b.TempDir()
	body := ""
	for i := 0; i < repeats; i++ {
		body += fmt.Sprintf("static int value_%d = %d;\nint get_%d(void) { return value_%d; }\n", i, i, i, i)
	}
	for i := 0; i < fileCount; i++ {
		path := filepath.Join(dir, fmt.Sprintf("gen_%d.c", i))
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			b.Fatal(err)
		}
	}
	return dir
}

func benchCount(b *testing.B, cfg counter.Config, dir string) {
	b.Helper()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		eng, err := counter.New(cfg)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := eng.Count(dir); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountStrategies(b *testing.B) {
	dir := buildTree(b, 64, 50)
	for _, io := range []counter.IOStrategy{counter.IOMapped, counter.IOBuffered} {
		b.Run(io.String(), func(b *testing.B) {
			cfg := counter.DefaultConfig()
			cfg.IOStrategy = io
			cfg.Quiet = true
			benchCount(b, cfg, dir)
		})
	}
}

func BenchmarkCountMergeStrategies(b *testing.B) {
	dir := buildTree(b, 64, 50)
	for _, ms := range []counter.MergeStrategy{counter.MergeSequential, counter.MergeParallel} {
		b.Run(ms.String(), func(b *testing.B) {
			cfg := counter.DefaultConfig()
			cfg.MergeStrategy = ms
			cfg.Quiet = true
			benchCount(b, cfg, dir)
		})
	}
}

func BenchmarkCountWorkerScaling(b *testing.B) {
	dir := buildTree(b, 128, 40)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			cfg := counter.DefaultConfig()
			cfg.Workers = workers
			cfg.Quiet = true
			benchCount(b, cfg, dir)
		})
	}
}
