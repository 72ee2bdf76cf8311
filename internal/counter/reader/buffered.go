package reader

import (
	"os"

	"github.com/kavinraj-m/codefreq/internal/counter/tokenizer"
)

// Buffered reads files fully into an owned buffer before tokenizing.
// Preferred over Mapped for trees of many tiny files, where per-file
// mapping overhead dominates.
type Buffered struct{}

func (Buffered) Name() string { return "buffered" }

func (Buffered) Process(path string, counts map[string]uint64) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, accessErr("reading", path, err)
	}
	tokenizer.CountWords(data, counts)
	return int64(len(data)), nil
}
