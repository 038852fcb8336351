package builder

import (
	"fmt"

	"github.com/katalvlaran/koenig/graph"
)

const (
	minRingNodes     = 3
	minCompleteNodes = 2
)

// Ring returns the adjacency of the n-node cycle, nodes labeled "1"
// through "n", each connected to its two ring neighbors.
func Ring(n int) (map[string][]string, error) {
	if n < minRingNodes {
		return nil, fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingNodes, ErrTooFewNodes)
	}

	adj := make(map[string][]string, n)
	for i := 1; i <= n; i++ {
		prev := i - 1
		if prev == 0 {
			prev = n
		}
		next := i%n + 1
		adj[label(i)] = []string{label(prev), label(next)}
	}

	return adj, nil
}

// Complete returns the adjacency of the complete simple graph K_n.
func Complete(n int) (map[string][]string, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}

	adj := make(map[string][]string, n)
	for i := 1; i <= n; i++ {
		peers := make([]string, 0, n-1)
		for j := 1; j <= n; j++ {
			if j != i {
				peers = append(peers, label(j))
			}
		}
		adj[label(i)] = peers
	}

	return adj, nil
}

// Square returns the four-node ring.
func Square() map[string][]string {
	adj, _ := Ring(4)

	return adj
}

// Konigsberg returns the classic seven-bridge problem: region A in the
// middle, B to the south, C to the north, D to the east. Bridges 2 and
// 3 (A-C) and bridges 4 and 5 (A-B) are parallel pairs, so the topology
// needs the named-pathway form.
func Konigsberg() graph.Map {
	return graph.Map{
		NodesToPaths: map[string][]string{
			"A": {"2", "3", "4", "5", "6"},
			"B": {"4", "5", "7"},
			"C": {"1", "2", "3"},
			"D": {"1", "6", "7"},
		},
		PathsToNodes: map[string][]string{
			"1": {"C", "D"},
			"2": {"A", "C"},
			"3": {"A", "C"},
			"4": {"A", "B"},
			"5": {"A", "B"},
			"6": {"A", "D"},
			"7": {"B", "D"},
		},
	}
}

func label(i int) string { return fmt.Sprintf("%d", i) }
