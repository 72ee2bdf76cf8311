package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestRunErrorUnwrap(t *testing.T) {
	err := Newf(ErrFileAccess, "opening %s: permission denied", "/etc/shadow.c")
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("errors.Is(err, ErrFileAccess) = false for %v", err)
	}
	wrapped := fmt.Errorf("worker 3: %w", err)
	if !errors.Is(wrapped, ErrFileAccess) {
		t.Errorf("sentinel lost through fmt.Errorf wrapping: %v", wrapped)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{New(ErrInvalidConfiguration, "worker count 0"), 2},
		{New(ErrPipeline, "worker crashed"), 3},
		{New(ErrDiscovery, "root unreadable"), 1},
		{errors.New("unrelated"), 1},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
