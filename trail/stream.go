package trail

import (
	"context"
	"fmt"
)

// StreamFrom runs SolveFrom in a background goroutine and delivers each
// completed trail on the returned channel. The channel is closed when
// the search finishes or ctx is canceled; the caller should drain it.
func (s *Session) StreamFrom(ctx context.Context, start string) (<-chan Trail, error) {
	if _, ok := s.g.NodeIDOf(start); !ok {
		return nil, fmt.Errorf("start %q: %w", start, ErrStartNotFound)
	}

	out := make(chan Trail)
	go func() {
		defer close(out)
		_ = s.SolveFrom(start, func(t Trail) bool {
			select {
			case out <- t:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()

	return out, nil
}

// StreamAll is StreamFrom over every node of the graph.
func (s *Session) StreamAll(ctx context.Context) <-chan Trail {
	out := make(chan Trail)
	go func() {
		defer close(out)
		_ = s.SolveAll(func(t Trail) bool {
			select {
			case out <- t:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()

	return out
}
