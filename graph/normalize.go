// Validation and normalization: arbitrary-label inputs in, dense
// integer-indexed Graph out.
//
// Validation walks keys in sorted label order, so the "first violated
// rule" reported for a given input is the same on every run.
package graph

import (
	"fmt"
	"sort"
)

// ValidateMap checks the structural rules for the two-dictionary form and
// returns the first violation, or nil.
//
// Rules, in the order they are checked:
//  1. at most MaxEdges pathways (ErrCapacity);
//  2. every pathway is claimed by at least one node (ErrOrphanPath);
//  3. every node is reached by at least one pathway (ErrOrphanNode);
//  4. every pathway connects exactly two distinct nodes (ErrEdgeEndpoints),
//     both of which exist (ErrUnknownNode) and list the pathway back
//     (ErrUnlistedEdge);
//  5. every pathway a node lists exists (ErrUnknownEdge).
//
// Complexity: O((M+N) log(M+N) + Σ degree).
func ValidateMap(m Map) error {
	// 1. Capacity ceiling.
	if len(m.PathsToNodes) > MaxEdges {
		return fmt.Errorf("map has %d pathways: %w", len(m.PathsToNodes), ErrCapacity)
	}

	paths := sortedKeys(m.PathsToNodes)
	nodes := sortedKeys(m.NodesToPaths)

	// 2. No pathway may dangle unclaimed by every node.
	claimed := make(map[string]bool, len(m.PathsToNodes))
	for _, n := range nodes {
		for _, p := range m.NodesToPaths[n] {
			claimed[p] = true
		}
	}
	for _, p := range paths {
		if !claimed[p] {
			return fmt.Errorf("pathway %q: %w", p, ErrOrphanPath)
		}
	}

	// 3. No node may dangle unreached by every pathway.
	reached := make(map[string]bool, len(m.NodesToPaths))
	for _, p := range paths {
		for _, n := range m.PathsToNodes[p] {
			reached[n] = true
		}
	}
	for _, n := range nodes {
		if !reached[n] {
			return fmt.Errorf("node %q: %w", n, ErrOrphanNode)
		}
	}

	// 4. Per-pathway endpoint rules.
	for _, p := range paths {
		ends := m.PathsToNodes[p]
		if len(ends) != 2 || ends[0] == ends[1] {
			return fmt.Errorf("pathway %q connects %v: %w", p, ends, ErrEdgeEndpoints)
		}
		for _, n := range ends {
			incident, ok := m.NodesToPaths[n]
			if !ok {
				return fmt.Errorf("pathway %q endpoint %q: %w", p, n, ErrUnknownNode)
			}
			if !containsLabel(incident, p) {
				return fmt.Errorf("pathway %q endpoint %q: %w", p, n, ErrUnlistedEdge)
			}
		}
	}

	// 5. Per-node pathway references.
	for _, n := range nodes {
		for _, p := range m.NodesToPaths[n] {
			if _, ok := m.PathsToNodes[p]; !ok {
				return fmt.Errorf("node %q lists pathway %q: %w", n, p, ErrUnknownEdge)
			}
		}
	}

	return nil
}

// ValidateAdjacency checks the bare adjacency form: every neighbor must be
// a node key (ErrUnknownNeighbor), no node may neighbor itself
// (ErrLoopNotAllowed), and a→b requires b→a (ErrAsymmetric).
// Complexity: O(N log N + Σ degree²) for membership scans.
func ValidateAdjacency(adj map[string][]string) error {
	for _, n := range sortedKeys(adj) {
		for _, d := range adj[n] {
			if d == n {
				return fmt.Errorf("node %q: %w", n, ErrLoopNotAllowed)
			}
			back, ok := adj[d]
			if !ok {
				return fmt.Errorf("node %q neighbor %q: %w", n, d, ErrUnknownNeighbor)
			}
			if !containsLabel(back, n) {
				return fmt.Errorf("%q→%q has no return connection: %w", n, d, ErrAsymmetric)
			}
		}
	}

	return nil
}

// ExpandAdjacency validates adj and expands it into the two-dictionary
// form, synthesizing one pathway per distinct node pair with the label
// "(a, b)" (endpoints in sorted order). Duplicate neighbor mentions
// collapse into the single pathway for that pair.
func ExpandAdjacency(adj map[string][]string) (Map, error) {
	if err := ValidateAdjacency(adj); err != nil {
		return Map{}, err
	}

	// Collect the distinct unordered pairs.
	type pair struct{ a, b string }
	pairs := make(map[pair]bool)
	for n, dests := range adj {
		for _, d := range dests {
			a, b := n, d
			if a > b {
				a, b = b, a
			}
			pairs[pair{a, b}] = true
		}
	}

	m := Map{
		PathsToNodes: make(map[string][]string, len(pairs)),
		NodesToPaths: make(map[string][]string, len(adj)),
	}
	for p := range pairs {
		label := pairLabel(p.a, p.b)
		m.PathsToNodes[label] = []string{p.a, p.b}
		m.NodesToPaths[p.a] = append(m.NodesToPaths[p.a], label)
		m.NodesToPaths[p.b] = append(m.NodesToPaths[p.b], label)
	}

	return m, nil
}

// Normalize validates m and assigns dense integer IDs: pathways 1..M and
// nodes 1..N in the sorted order of their original labels. The sorted
// assignment makes IDs — and therefore persisted search state — stable
// across runs over the same input.
func Normalize(m Map) (*Graph, error) {
	if err := ValidateMap(m); err != nil {
		return nil, err
	}

	paths := sortedKeys(m.PathsToNodes)
	nodes := sortedKeys(m.NodesToPaths)

	g := &Graph{
		edgeEnds:   make([][2]NodeID, len(paths)+1),
		nodeEdges:  make([][]EdgeID, len(nodes)+1),
		edgeLabels: make([]string, len(paths)+1),
		nodeLabels: make([]string, len(nodes)+1),
		edgeIDs:    make(map[string]EdgeID, len(paths)),
		nodeIDs:    make(map[string]NodeID, len(nodes)),
	}

	// Translation tables first, so endpoint lookups below can resolve.
	for i, p := range paths {
		id := EdgeID(i + 1)
		g.edgeLabels[id] = p
		g.edgeIDs[p] = id
	}
	for i, n := range nodes {
		id := NodeID(i + 1)
		g.nodeLabels[id] = n
		g.nodeIDs[n] = id
	}

	// Pathway endpoints, lesser node ID first.
	for _, p := range paths {
		ends := m.PathsToNodes[p]
		a, b := g.nodeIDs[ends[0]], g.nodeIDs[ends[1]]
		if a > b {
			a, b = b, a
		}
		g.edgeEnds[g.edgeIDs[p]] = [2]NodeID{a, b}
	}

	// Incident pathway lists, deduplicated and ascending. Ascending order
	// fixes the enumerator's candidate order, which persisted dead-end
	// prefixes depend on.
	for _, n := range nodes {
		id := g.nodeIDs[n]
		seen := make(map[EdgeID]bool, len(m.NodesToPaths[n]))
		incident := make([]EdgeID, 0, len(m.NodesToPaths[n]))
		for _, p := range m.NodesToPaths[n] {
			eid := g.edgeIDs[p]
			if !seen[eid] {
				seen[eid] = true
				incident = append(incident, eid)
			}
		}
		sort.Slice(incident, func(i, j int) bool { return incident[i] < incident[j] })
		g.nodeEdges[id] = incident
	}

	return g, nil
}

// NormalizeAdjacency is the one-call convenience for the bare adjacency
// form: ExpandAdjacency followed by Normalize.
func NormalizeAdjacency(adj map[string][]string) (*Graph, error) {
	m, err := ExpandAdjacency(adj)
	if err != nil {
		return nil, err
	}

	return Normalize(m)
}

// pairLabel names the synthesized pathway between a and b (a ≤ b).
func pairLabel(a, b string) string {
	return fmt.Sprintf("(%s, %s)", a, b)
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// containsLabel reports whether val occurs in s.
func containsLabel(s []string, val string) bool {
	for _, x := range s {
		if x == val {
			return true
		}
	}

	return false
}
