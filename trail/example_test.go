package trail_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/koenig/builder"
	"github.com/katalvlaran/koenig/graph"
	"github.com/katalvlaran/koenig/trail"
)

// ExampleSession_SolveFrom enumerates every walk over the four-node ring
// that uses each connection exactly once, starting at node "1".
// Graph structure:
//
//	1 — 2
//	|   |
//	4 — 3
//
// Exactly two such walks exist: clockwise and counterclockwise.
func ExampleSession_SolveFrom() {
	// Build the ring and normalize it into the dense integer form.
	adj, _ := builder.Ring(4)
	g, err := graph.NormalizeAdjacency(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := trail.NewSession(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := s.SolveFrom("1", nil); err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print each trail as its sequence of pathway labels.
	for _, sol := range s.Solutions() {
		fmt.Println(strings.Join(g.Labels(sol), " "))
	}

	// Output:
	// (1, 2) (2, 3) (3, 4) (1, 4)
	// (1, 4) (3, 4) (2, 3) (1, 2)
}

// ExampleSession_SolveAll shows the classic seven-bridge problem: no
// walk can cross every bridge exactly once, from any starting region.
func ExampleSession_SolveAll() {
	g, err := graph.Normalize(builder.Konigsberg())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := trail.NewSession(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := s.SolveAll(nil); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("solutions:", s.NumSolutions())

	// Output:
	// solutions: 0
}
