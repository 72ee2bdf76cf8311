package counter

import (
	"runtime"

	pkgerrors "github.com/kavinraj-m/codefreq/pkg/errors"
)

// IOStrategy selects how a worker reads file contents.
type IOStrategy int

const (
	// IOMapped tokenizes a read-only memory mapping of the file.
	IOMapped IOStrategy = iota
	// IOBuffered reads the file fully into memory before tokenizing.
	IOBuffered
)

func (s IOStrategy) String() string {
	switch s {
	case IOMapped:
		return "mapped"
	case IOBuffered:
		return "buffered"
	default:
		return "unknown"
	}
}

// ParseIOStrategy converts a configuration string into an IOStrategy.
func ParseIOStrategy(s string) (IOStrategy, error) {
	switch s {
	case "mapped":
		return IOMapped, nil
	case "buffered":
		return IOBuffered, nil
	default:
		return 0, pkgerrors.Newf(pkgerrors.ErrInvalidConfiguration, "unknown io strategy %q", s)
	}
}

// MergeStrategy selects how per-worker tables are combined.
type MergeStrategy int

const (
	// MergeSequential folds tables one after another.
	MergeSequential MergeStrategy = iota
	// MergeParallel reduces tables pairwise across goroutines. It only
	// takes effect with more than two tables; below that the sequential
	// fold is used regardless.
	MergeParallel
)

func (s MergeStrategy) String() string {
	switch s {
	case MergeSequential:
		return "sequential"
	case MergeParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// ParseMergeStrategy converts a configuration string into a MergeStrategy.
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	switch s {
	case "sequential":
		return MergeSequential, nil
	case "parallel":
		return MergeParallel, nil
	default:
		return 0, pkgerrors.Newf(pkgerrors.ErrInvalidConfiguration, "unknown merge strategy %q", s)
	}
}

// Config controls one engine. It is read-only once the engine is built.
type Config struct {
	Workers       int
	IOStrategy    IOStrategy
	MergeStrategy MergeStrategy
	Quiet         bool
}

// DefaultConfig returns a Config using every CPU, memory-mapped I/O, and
// parallel merging.
func DefaultConfig() Config {
	return Config{
		Workers:       runtime.NumCPU(),
		IOStrategy:    IOMapped,
		MergeStrategy: MergeParallel,
	}
}
