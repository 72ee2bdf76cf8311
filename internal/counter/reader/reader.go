// Package reader provides the file-processing strategies used by the
// counting workers. Both strategies read one file's full contents,
// tokenize them into the caller's local frequency table, and report the
// number of bytes consumed. The choice of strategy is a performance knob
// only: for identical content both must produce identical tables.
package reader

import (
	pkgerrors "github.com/kavinraj-m/codefreq/pkg/errors"
)

// Strategy processes one file into counts and returns the file's size in
// bytes. A returned error means the file was skipped entirely: counts is
// untouched and no bytes were consumed.
type Strategy interface {
	Name() string
	Process(path string, counts map[string]uint64) (int64, error)
}

func accessErr(op, path string, err error) error {
	return pkgerrors.Newf(pkgerrors.ErrFileAccess, "%s %s: %v", op, path, err)
}
