// Exhausted-prefix memoization: dead-end prefixes recorded per start
// node in red-black trees ordered by (length, lexicographic), so both
// compaction and export are single in-order sweeps.
package trail

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/koenig/graph"
)

// byLenLex orders prefix keys by ascending length, then bytewise. With
// this order an in-order walk visits every proper prefix of a member
// before the member itself.
func byLenLex(a, b interface{}) int {
	x, y := a.(string), b.(string)
	if len(x) != len(y) {
		return len(x) - len(y)
	}

	return strings.Compare(x, y)
}

// memo holds the exhausted-prefix sets, one tree per start node. A
// literal pathway sequence pins down a walk only together with its start
// node, so entries recorded under one start are never consulted for
// another.
type memo struct {
	trees       map[graph.NodeID]*redblacktree.Tree // start → set of dead prefixes
	size        int                                 // total members across all trees
	sizeAtPrune int                                 // total size right after the last compaction
	pruneEvery  int                                 // growth that triggers compaction; <=0 disables
}

func newMemo(pruneEvery int) *memo {
	return &memo{
		trees:      make(map[graph.NodeID]*redblacktree.Tree),
		pruneEvery: pruneEvery,
	}
}

// insert records seq (a trimmed dead-end prefix) under start.
func (m *memo) insert(start graph.NodeID, seq []byte) {
	t, ok := m.trees[start]
	if !ok {
		t = redblacktree.NewWith(byLenLex)
		m.trees[start] = t
	}
	key := string(seq)
	if _, found := t.Get(key); !found {
		t.Put(key, nil)
		m.size++
	}
}

// hasDeadPrefix reports whether any non-empty prefix of key, from length
// 1 up to len(key), was recorded as exhausted under start.
func (m *memo) hasDeadPrefix(start graph.NodeID, key []byte) bool {
	t, ok := m.trees[start]
	if !ok {
		return false
	}
	for l := 1; l <= len(key); l++ {
		if _, found := t.Get(string(key[:l])); found {
			return true
		}
	}

	return false
}

// maybePrune compacts once the set has grown past the configured
// threshold since the last compaction.
func (m *memo) maybePrune() {
	if m.pruneEvery > 0 && m.size-m.sizeAtPrune > m.pruneEvery {
		m.prune()
	}
}

// prune reduces every tree to its minimal generating set: a member is
// kept only if no already-kept member is one of its proper prefixes.
// In-order iteration visits members in ascending length, so every
// potential generator is kept (or rejected) before the members it
// implies. Complexity ≈ O(total·L·log total) for max prefix length L.
func (m *memo) prune() {
	total := 0
	for start, t := range m.trees {
		kept := redblacktree.NewWith(byLenLex)
		it := t.Iterator()
		for it.Next() {
			key := it.Key().(string)
			implied := false
			for l := 1; l < len(key); l++ {
				if _, found := kept.Get(key[:l]); found {
					implied = true
					break
				}
			}
			if !implied {
				kept.Put(key, nil)
			}
		}
		m.trees[start] = kept
		total += kept.Size()
	}
	m.size = total
	m.sizeAtPrune = total
}

// export copies every tree out as byte sequences in (length, lex) order.
func (m *memo) export() map[graph.NodeID][][]byte {
	out := make(map[graph.NodeID][][]byte, len(m.trees))
	for start, t := range m.trees {
		seqs := make([][]byte, 0, t.Size())
		it := t.Iterator()
		for it.Next() {
			seqs = append(seqs, []byte(it.Key().(string)))
		}
		out[start] = seqs
	}

	return out
}

// restore loads persisted prefixes, replacing current contents.
func (m *memo) restore(exhausted map[graph.NodeID][][]byte) {
	m.trees = make(map[graph.NodeID]*redblacktree.Tree, len(exhausted))
	m.size = 0
	for start, seqs := range exhausted {
		t := redblacktree.NewWith(byLenLex)
		for _, seq := range seqs {
			t.Put(string(seq), nil)
		}
		m.trees[start] = t
		m.size += t.Size()
	}
	m.sizeAtPrune = m.size
}
