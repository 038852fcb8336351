// Package trail implements exhaustive backtracking enumeration of every
// trail that crosses each pathway of a normalized graph.Graph exactly
// once, with exhausted-prefix memoization and optional checkpointing.
//
// Key features:
//   - NewSession(g, opts...): all mutable search state in one object —
//     solutions, exhausted prefixes, counters, timers
//   - SolveFrom / SolveFromMany / SolveAll: the three driving modes,
//     all built on the same recursive core and one shared step buffer
//   - StreamFrom / StreamAll: forward-only channel emission
//   - SolveAllParallel: one worker per start node over the immutable
//     graph, session state serialized under a lock
//   - WithSnapshot: resume a search from persisted checkpoint state
//
// Determinism: candidates are explored in ascending pathway-ID order, so
// a given start node always unrolls the same search tree. That is what
// lets an exhausted prefix recorded in one run prune the identical
// branch in a later run. Exhausted prefixes are scoped to the start node
// they were recorded under: the same literal pathway sequence walked
// from the two different endpoints of its first pathway visits different
// nodes, so entries are only ever consulted for their own start.
//
// Dead-end reporting uses two verbosity tiers: dead ends whose depth is
// a multiple of the report interval log at slog.LevelDebug, all others
// at LevelTrace.
//
// Complexity: the search is exponential by nature; memoization prunes
// only branches already proven dead in this or a previous run. Memory is
// O(solutions + exhausted prefixes) plus the single M-byte step buffer.
//
// Errors:
//
//	ErrGraphNil      - nil graph passed to NewSession.
//	ErrStartNotFound - named start node does not exist.
//	ErrBadInterval   - non-positive report interval.
package trail
