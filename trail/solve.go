// The recursive backtracking core and the three sequential driving
// modes: one start, an explicit start list, and every node.
package trail

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/koenig/graph"
)

// walker encapsulates one search's per-goroutine state: the step buffer,
// the current start node, the emission callback, and the shared stop
// flag. The sequential drivers reuse a single walker (and the session's
// buffer) across starts.
type walker struct {
	s       *Session
	steps   []graph.EdgeID // the step-sequence buffer this walker owns
	key     []byte         // scratch for tentative-prefix queries
	start   graph.NodeID   // start node of the run in progress
	emit    func(Trail) bool
	stopped *atomic.Bool
}

func (s *Session) newWalker(emit func(Trail) bool) *walker {
	return &walker{
		s:       s,
		steps:   s.steps,
		key:     make([]byte, 0, len(s.steps)),
		emit:    emit,
		stopped: new(atomic.Bool),
	}
}

// run performs one complete search rooted at start.
func (w *walker) run(start graph.NodeID) {
	w.start = start
	w.solve(start, 0)
}

// solve is the recursive core. At each node it considers the incident
// pathways not yet in the buffer, in ascending ID order; fills the
// buffer once it is full; and books a dead end when no candidate could
// be descended into.
func (w *walker) solve(at graph.NodeID, depth int) {
	if w.stopped.Load() {
		return
	}

	// Accepting condition: the buffer is full — every pathway was taken.
	if depth == len(w.steps) {
		t := make(Trail, depth)
		copy(t, w.steps)
		w.s.recordSolution(t)
		if w.emit != nil && !w.emit(t) {
			w.stopped.Store(true)
		}

		return
	}

	descended := false
	for _, e := range w.s.g.IncidentEdges(at) {
		if w.stopped.Load() {
			return
		}
		if w.taken(e, depth) {
			continue
		}
		if w.s.pruned(w.start, w.tentative(e, depth)) {
			continue
		}
		descended = true
		w.descend(e, at, depth)
	}

	if !descended && !w.stopped.Load() {
		w.s.deadEnd(w.start, w.steps, depth)
	}
}

// descend writes e into the buffer, recurses into its other endpoint,
// and frees the slot again on every exit path.
func (w *walker) descend(e graph.EdgeID, at graph.NodeID, depth int) {
	w.steps[depth] = e
	defer func() { w.steps[depth] = 0 }()

	w.solve(w.s.g.OtherEnd(e, at), depth+1)
}

// taken reports whether e already occurs among the first depth steps.
func (w *walker) taken(e graph.EdgeID, depth int) bool {
	for _, step := range w.steps[:depth] {
		if step == e {
			return true
		}
	}

	return false
}

// tentative builds the buffer-so-far with e appended, as bytes, for the
// exhausted-prefix query.
func (w *walker) tentative(e graph.EdgeID, depth int) []byte {
	w.key = w.key[:0]
	for _, step := range w.steps[:depth] {
		w.key = append(w.key, byte(step))
	}
	w.key = append(w.key, byte(e))

	return w.key
}

// SolveFrom searches exhaustively from the node labeled start, calling
// emit for every completed trail (duplicates included — the session's
// solution set deduplicates). emit may be nil; returning false from it
// stops the search. Returns ErrStartNotFound for an unknown label.
func (s *Session) SolveFrom(start string, emit func(Trail) bool) error {
	id, ok := s.g.NodeIDOf(start)
	if !ok {
		return fmt.Errorf("start %q: %w", start, ErrStartNotFound)
	}

	s.newWalker(emit).run(id)

	return nil
}

// SolveFromMany searches from each named start in order, reusing one
// step buffer across starts. All labels are resolved up front, so an
// unknown label fails before any search work.
func (s *Session) SolveFromMany(starts []string, emit func(Trail) bool) error {
	ids := make([]graph.NodeID, len(starts))
	for i, label := range starts {
		id, ok := s.g.NodeIDOf(label)
		if !ok {
			return fmt.Errorf("start %q: %w", label, ErrStartNotFound)
		}
		ids[i] = id
	}

	w := s.newWalker(emit)
	for _, id := range ids {
		if w.stopped.Load() {
			break
		}
		w.run(id)
	}

	return nil
}

// SolveAll searches from every node of the graph in ascending node-ID
// order (the sorted order of the original labels).
func (s *Session) SolveAll(emit func(Trail) bool) error {
	w := s.newWalker(emit)
	for id := graph.NodeID(1); int(id) <= s.g.NumNodes(); id++ {
		if w.stopped.Load() {
			break
		}
		w.run(id)
	}

	return nil
}
