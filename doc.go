// Package koenig enumerates every trail that crosses each pathway of an
// undirected multigraph exactly once — the Königsberg bridge problem,
// solved by brute force rather than by Euler's criterion.
//
// 🚀 What is koenig?
//
//	A small, deterministic library that brings together:
//		• graph/      — label↔ID normalization into a dense, immutable map
//		• trail/      — exhaustive backtracking trail enumeration with
//		                exhausted-prefix memoization
//		• checkpoint/ — durable save/restore of long-running searches
//		• mapfile/    — .graph / .map JSON boundary readers
//		• builder/    — deterministic sample topologies for tests & demos
//
// ✨ Why choose koenig?
//
//   - Deterministic – sorted label→ID assignment and ascending edge-ID
//     exploration, so two runs over the same input walk the same tree
//   - Resumable – interrupt a multi-hour search, restart, and continue
//     from the last checkpoint with nothing but dead ends skipped
//   - Honest – no closed-form shortcuts; every branch is searched, every
//     abandoned prefix is accounted for
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square of four nodes and four pathways has exactly two trails from
//	any corner: clockwise and counterclockwise.
//
// Dive into README-less code: each package carries its own doc.go with
// the contract, errors, and complexity notes.
//
//	go get github.com/katalvlaran/koenig
package koenig
