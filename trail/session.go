// Session: the single state object for one resumable search — solution
// set, exhausted-prefix sets, dead-end counter, virtual start time, and
// the shared step buffer.
package trail

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/koenig/graph"
)

// Session owns all mutable state of a search over one immutable Graph.
// Construct it fresh with NewSession, or restored via WithSnapshot.
// Methods are safe for concurrent use; the sequential drivers pay one
// uncontended lock per shared-state touch.
type Session struct {
	mu sync.Mutex

	g    *graph.Graph
	opts Options

	// steps is the shared scratch buffer reused by the sequential
	// drivers: written on descent, zeroed on backtrack, all-zero between
	// runs. Parallel workers allocate their own.
	steps []graph.EdgeID

	solutions    map[string]struct{} // distinct completed trails, keyed by their bytes
	memo         *memo               // nil when memoization is disabled
	numExhausted uint64
	started      time.Time // virtual start: shifted into the past on restore
	cp           Checkpointer
}

// NewSession builds a Session over g. Returns ErrGraphNil for a nil
// graph and ErrBadInterval for a non-positive report interval.
func NewSession(g *graph.Graph, opts ...Option) (*Session, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.ReportInterval < 1 {
		return nil, fmt.Errorf("report interval %d: %w", o.ReportInterval, ErrBadInterval)
	}

	// 3. Fresh state.
	s := &Session{
		g:         g,
		opts:      o,
		steps:     make([]graph.EdgeID, g.NumEdges()),
		solutions: make(map[string]struct{}),
		started:   time.Now(),
		cp:        o.Checkpointer,
	}
	if o.Memoize {
		s.memo = newMemo(o.PruneInterval)
	}

	// 4. Restore prior-run state, when given.
	if snap := o.Snapshot; snap != nil {
		for _, sol := range snap.Solutions {
			s.solutions[string(sol)] = struct{}{}
		}
		if s.memo != nil {
			s.memo.restore(snap.Exhausted)
		}
		s.numExhausted = snap.NumExhausted
		s.started = time.Now().Add(-time.Duration(snap.TotalTime * float64(time.Second)))
	}

	return s, nil
}

// Graph returns the immutable graph this session searches.
func (s *Session) Graph() *graph.Graph { return s.g }

// DeadEnds returns the number of abandoned trails so far, including any
// carried over from a restored snapshot.
func (s *Session) DeadEnds() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.numExhausted
}

// NumSolutions returns the number of distinct completed trails found.
func (s *Session) NumSolutions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.solutions)
}

// Solutions returns every distinct completed trail found so far, sorted
// lexicographically. Each Trail is a fresh copy.
func (s *Session) Solutions() []Trail {
	s.mu.Lock()
	keys := make([]string, 0, len(s.solutions))
	for k := range s.solutions {
		keys = append(keys, k)
	}
	s.mu.Unlock()

	sort.Strings(keys)
	out := make([]Trail, len(keys))
	for i, k := range keys {
		t := make(Trail, len(k))
		for j := 0; j < len(k); j++ {
			t[j] = graph.EdgeID(k[j])
		}
		out[i] = t
	}

	return out
}

// Elapsed returns the cumulative wall-clock time of this search across
// all runs (restored time plus time since this session started).
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.started)
}

// Snapshot captures the full resumable state. The exhausted set is
// compacted first unless WithSavePruning(false) was given.
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// snapshotLocked builds a Snapshot; callers must hold s.mu.
func (s *Session) snapshotLocked() *Snapshot {
	if s.memo != nil && s.opts.SavePruning {
		s.memo.prune()
	}

	keys := make([]string, 0, len(s.solutions))
	for k := range s.solutions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sols := make([][]byte, len(keys))
	for i, k := range keys {
		sols[i] = []byte(k)
	}

	exhausted := make(map[graph.NodeID][][]byte)
	if s.memo != nil {
		exhausted = s.memo.export()
	}

	return &Snapshot{
		Solutions:    sols,
		Exhausted:    exhausted,
		NumExhausted: s.numExhausted,
		TotalTime:    s.Elapsed().Seconds(),
	}
}

// recordSolution stores a completed trail, reporting whether it was new.
func (s *Session) recordSolution(t Trail) bool {
	key := string(seqBytes(t))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.solutions[key]; dup {
		return false
	}
	s.solutions[key] = struct{}{}

	return true
}

// pruned reports whether any non-empty prefix of key was recorded as
// exhausted under start. Key is the tentative buffer: the steps taken so
// far plus the candidate pathway.
func (s *Session) pruned(start graph.NodeID, key []byte) bool {
	if s.memo == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.memo.hasDeadPrefix(start, key)
}

// deadEnd accounts for an abandoned trail: bump the counter (always),
// record the trimmed prefix (when memoizing), report it at the right
// verbosity tier, and trigger a checkpoint when one is due.
func (s *Session) deadEnd(start graph.NodeID, steps []graph.EdgeID, depth int) {
	s.mu.Lock()
	s.numExhausted++
	if s.memo != nil && depth > 0 {
		s.memo.insert(start, seqBytes(steps[:depth]))
		s.memo.maybePrune()
	}
	var snap *Snapshot
	if s.cp != nil && s.cp.ShouldSave(depth) {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	// Reporting tier: every ReportInterval-th depth at Debug, the rest at
	// Trace. The Enabled check keeps label decoding off the hot path.
	level := LevelTrace
	if depth%s.opts.ReportInterval == 0 {
		level = slog.LevelDebug
	}
	if s.opts.Logger.Enabled(background, level) {
		s.opts.Logger.Log(background, level, "abandoned trail",
			slog.String("start", s.g.NodeLabel(start)),
			slog.Int("depth", depth),
			slog.Any("steps", s.g.Labels(steps[:depth])),
		)
	}

	// A failed save loses one checkpoint generation, never the search.
	if snap != nil {
		if err := s.cp.Save(snap); err != nil {
			s.opts.Logger.Error("checkpoint save failed; search continues",
				slog.Any("error", err))
		}
	}
}

// seqBytes copies a step sequence into plain bytes.
func seqBytes(steps []graph.EdgeID) []byte {
	out := make([]byte, len(steps))
	for i, e := range steps {
		out[i] = byte(e)
	}

	return out
}
