// Read-only accessors over the normalized Graph. The Graph is immutable
// after Normalize, so everything here is safe for concurrent use.
package graph

// NumEdges returns M, the number of pathways.
func (g *Graph) NumEdges() int { return len(g.edgeEnds) - 1 }

// NumNodes returns N, the number of nodes.
func (g *Graph) NumNodes() int { return len(g.nodeEdges) - 1 }

// IncidentEdges returns the pathways incident to n in ascending ID order.
// The returned slice is shared with the Graph and must not be modified.
// Returns nil for an out-of-range node.
func (g *Graph) IncidentEdges(n NodeID) []EdgeID {
	if n < 1 || int(n) >= len(g.nodeEdges) {
		return nil
	}

	return g.nodeEdges[n]
}

// EdgeEnds returns the two endpoints of e, lesser node ID first.
// Both are zero for an out-of-range pathway.
func (g *Graph) EdgeEnds(e EdgeID) (NodeID, NodeID) {
	if e < 1 || int(e) >= len(g.edgeEnds) {
		return 0, 0
	}
	ends := g.edgeEnds[e]

	return ends[0], ends[1]
}

// OtherEnd returns the endpoint of e that is not at, or zero when at is
// not an endpoint of e.
func (g *Graph) OtherEnd(e EdgeID, at NodeID) NodeID {
	a, b := g.EdgeEnds(e)
	switch at {
	case a:
		return b
	case b:
		return a
	default:
		return 0
	}
}

// EdgeIDOf translates an original pathway label to its dense ID.
func (g *Graph) EdgeIDOf(label string) (EdgeID, bool) {
	id, ok := g.edgeIDs[label]

	return id, ok
}

// NodeIDOf translates an original node label to its dense ID.
func (g *Graph) NodeIDOf(label string) (NodeID, bool) {
	id, ok := g.nodeIDs[label]

	return id, ok
}

// EdgeLabel translates a pathway ID back to its original label;
// "" for an out-of-range ID.
func (g *Graph) EdgeLabel(e EdgeID) string {
	if e < 1 || int(e) >= len(g.edgeLabels) {
		return ""
	}

	return g.edgeLabels[e]
}

// NodeLabel translates a node ID back to its original label;
// "" for an out-of-range ID.
func (g *Graph) NodeLabel(n NodeID) string {
	if n < 1 || int(n) >= len(g.nodeLabels) {
		return ""
	}

	return g.nodeLabels[n]
}

// NodeLabels returns all node labels in ID order (ID 1 first).
// The slice is freshly allocated.
func (g *Graph) NodeLabels() []string {
	out := make([]string, g.NumNodes())
	copy(out, g.nodeLabels[1:])

	return out
}

// Labels decodes a step sequence into original pathway labels, stopping
// at the first zero slot (zeros mark the untaken suffix of a buffer).
func (g *Graph) Labels(seq []EdgeID) []string {
	out := make([]string, 0, len(seq))
	for _, e := range seq {
		if e == 0 {
			break
		}
		out = append(out, g.edgeLabels[e])
	}

	return out
}
