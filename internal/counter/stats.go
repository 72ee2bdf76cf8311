package counter

import "sync/atomic"

// stats tracks how many files and bytes the workers have processed. The
// counters are purely observational: nothing reads them for control
// decisions, so relaxed atomic increments are sufficient. They accumulate
// across repeated Count calls on one engine; callers wanting per-run
// figures should snapshot before and after.
type stats struct {
	filesProcessed atomic.Uint64
	bytesProcessed atomic.Uint64
}

func (s *stats) record(bytes int64) {
	s.filesProcessed.Add(1)
	s.bytesProcessed.Add(uint64(bytes))
}
