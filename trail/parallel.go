package trail

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/koenig/graph"
)

// SolveAllParallel runs the per-start searches of SolveAll concurrently,
// at most workers at a time (workers < 1 means one goroutine per start).
// Each worker owns its step buffer; the session's solution set, counter
// and exhausted sets are shared, so the combined result is identical to
// a sequential SolveAll up to emit order. emit, when non-nil, is called
// serially.
func (s *Session) SolveAllParallel(ctx context.Context, workers int, emit func(Trail) bool) error {
	grp, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		grp.SetLimit(workers)
	}

	var (
		emitMu  sync.Mutex
		stopped atomic.Bool
	)
	// The errgroup context is canceled once Wait returns, so this
	// watcher never outlives the call.
	go func() {
		<-ctx.Done()
		stopped.Store(true)
	}()
	serial := func(t Trail) bool {
		if emit == nil {
			return true
		}
		emitMu.Lock()
		defer emitMu.Unlock()

		return emit(t)
	}

	for id := graph.NodeID(1); int(id) <= s.g.NumNodes(); id++ {
		if stopped.Load() || ctx.Err() != nil {
			break
		}
		start := id
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w := &walker{
				s:       s,
				steps:   make([]graph.EdgeID, s.g.NumEdges()),
				key:     make([]byte, 0, s.g.NumEdges()),
				emit:    serial,
				stopped: &stopped,
			}
			w.run(start)

			return nil
		})
	}

	return grp.Wait()
}
