// Package graph normalizes arbitrary node/pathway descriptions into a
// dense, integer-indexed, immutable map suitable for exhaustive trail
// search.
//
// Two input forms are accepted:
//
//   - Map: a pair of dictionaries keyed by arbitrary string labels —
//     PathsToNodes (pathway → its exactly-two endpoint nodes) and
//     NodesToPaths (node → its incident pathways). Parallel pathways
//     between the same pair of nodes are allowed.
//   - Adjacency: a bare node → neighbor-list dictionary with no named
//     pathways and at most one pathway per node pair. It is expanded into
//     a Map with synthesized pathway labels of the form "(a, b)" (sorted
//     endpoints) before normalization.
//
// Normalization assigns pathway IDs 1..M and node IDs 1..N in the sorted
// order of the original labels, so repeated runs over the same input
// always produce identical IDs. That determinism is what makes persisted
// search progress valid across process restarts. M is capped at 255:
// pathway IDs are packed one per byte in trail buffers and checkpoints,
// with 0 reserved for "not yet taken".
//
// The Graph produced is immutable; all accessors are read-only and safe
// for concurrent use.
//
// Errors (match with errors.Is):
//
//	ErrCapacity        - more than 255 pathways.
//	ErrOrphanPath      - a pathway no node claims.
//	ErrOrphanNode      - a node no pathway reaches.
//	ErrEdgeEndpoints   - a pathway whose endpoint list is not exactly two distinct nodes.
//	ErrUnknownNode     - a pathway endpoint missing from NodesToPaths.
//	ErrUnknownEdge     - a node lists a pathway missing from PathsToNodes.
//	ErrUnlistedEdge    - a pathway's endpoint does not list that pathway back.
//	ErrAsymmetric      - adjacency lists a→b without b→a.
//	ErrUnknownNeighbor - adjacency neighbor that is not itself a node key.
//	ErrLoopNotAllowed  - adjacency self-loop (a listed as its own neighbor).
package graph
