// Package graph types: identifier types, the Map input form, the
// normalized Graph, and sentinel errors.
//
// This file declares EdgeID, NodeID, Map, Graph, and the validation
// sentinels. Construction lives in normalize.go; read-only accessors in
// graph.go.
package graph

import "errors"

// MaxEdges is the hard pathway-capacity ceiling. Pathway IDs are packed
// one per byte in trail buffers and checkpoint records, with 0 reserved
// as the "unused slot" marker, which leaves exactly 255 usable IDs.
const MaxEdges = 255

// EdgeID identifies a pathway, 1..MaxEdges. The zero value means
// "no pathway" and never names a real pathway.
type EdgeID byte

// NodeID identifies a node, 1..NumNodes. The zero value means "no node".
// Node IDs are not byte-packed and therefore not capped at 255.
type NodeID int

// Map is the richer of the two input forms: explicit pathway labels with
// their endpoint nodes, and the inverse node → incident-pathway listing.
// Both directions are required and are cross-checked during validation.
type Map struct {
	// PathsToNodes maps each pathway label to its exactly-two distinct
	// endpoint node labels.
	PathsToNodes map[string][]string

	// NodesToPaths maps each node label to the pathways incident to it.
	NodesToPaths map[string][]string
}

// Sentinel errors for normalization and validation.
var (
	// ErrCapacity indicates the input describes more than MaxEdges pathways.
	ErrCapacity = errors.New("graph: more than 255 pathways")

	// ErrOrphanPath indicates a pathway that no node's pathway list claims.
	ErrOrphanPath = errors.New("graph: pathway not connected to any node")

	// ErrOrphanNode indicates a node that no pathway's endpoint list reaches.
	ErrOrphanNode = errors.New("graph: node not connected to any pathway")

	// ErrEdgeEndpoints indicates a pathway whose endpoint list is not
	// exactly two distinct nodes.
	ErrEdgeEndpoints = errors.New("graph: pathway must connect exactly two distinct nodes")

	// ErrUnknownNode indicates a pathway endpoint absent from NodesToPaths.
	ErrUnknownNode = errors.New("graph: pathway references unknown node")

	// ErrUnknownEdge indicates a node's pathway list names a pathway
	// absent from PathsToNodes.
	ErrUnknownEdge = errors.New("graph: node references unknown pathway")

	// ErrUnlistedEdge indicates a pathway whose endpoint node does not
	// list that pathway among its incident pathways.
	ErrUnlistedEdge = errors.New("graph: endpoint does not list pathway")

	// ErrAsymmetric indicates an adjacency input where a→b is present but
	// b→a is not. All connections must be explicitly bidirectional.
	ErrAsymmetric = errors.New("graph: adjacency is not symmetric")

	// ErrUnknownNeighbor indicates an adjacency neighbor that does not
	// itself appear as a node key.
	ErrUnknownNeighbor = errors.New("graph: neighbor is not a node")

	// ErrLoopNotAllowed indicates an adjacency self-loop; a pathway cannot
	// connect a node to itself.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Graph is the normalized, immutable form consumed by trail enumeration.
//
// Pathways are indexed 1..M and nodes 1..N; index 0 of every slice is an
// unused placeholder so IDs can index directly. Incident-pathway lists
// are sorted ascending, which fixes the enumerator's exploration order.
type Graph struct {
	edgeEnds   [][2]NodeID // edge ID → its two endpoints, lesser node first
	nodeEdges  [][]EdgeID  // node ID → incident edge IDs, ascending
	edgeLabels []string    // edge ID → original label
	nodeLabels []string    // node ID → original label
	edgeIDs    map[string]EdgeID
	nodeIDs    map[string]NodeID
}
