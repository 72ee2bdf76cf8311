// Package merge combines per-worker frequency tables into one global
// table. Combining is summation per word, which is associative and
// commutative, so both strategies yield the same table regardless of
// input order or grouping.
package merge

import "golang.org/x/sync/errgroup"

// Sequential folds the tables into a single accumulator in collection
// order. Always correct; preferred when there are few tables.
func Sequential(tables []map[string]uint64) map[string]uint64 {
	acc := make(map[string]uint64, 4096)
	for _, t := range tables {
		fold(acc, t)
	}
	return acc
}

// Parallel combines the tables with a balanced pairwise tree reduction,
// halving the table count each round. Input tables are consumed. With two
// or fewer tables the reduction overhead dominates, so callers should use
// Sequential there; Parallel still handles those sizes correctly.
func Parallel(tables []map[string]uint64) map[string]uint64 {
	if len(tables) == 0 {
		return make(map[string]uint64)
	}
	round := tables
	for len(round) > 1 {
		next := make([]map[string]uint64, 0, (len(round)+1)/2)
		var g errgroup.Group
		for i := 0; i+1 < len(round); i += 2 {
			dst, src := round[i], round[i+1]
			next = append(next, dst)
			g.Go(func() error {
				fold(dst, src)
				return nil
			})
		}
		if len(round)%2 == 1 {
			next = append(next, round[len(round)-1])
		}
		g.Wait()
		round = next
	}
	return round[0]
}

// fold adds every count in src to dst. Absent words count as zero.
func fold(dst, src map[string]uint64) {
	for word, n := range src {
		dst[word] += n
	}
}
