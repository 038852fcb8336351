// Package builder provides deterministic sample topologies for demos
// and tests.
//
// Constructors:
//   - Ring(n)     — n-node cycle adjacency, n ≥ 3.
//   - Complete(n) — complete simple graph K_n, n ≥ 2.
//   - Square()    — Ring(4) under the historical name.
//   - Konigsberg() — the four regions and seven bridges of Königsberg
//     as a named-pathway Map (two pairs of parallel bridges force the
//     dual-index form).
//
// All constructors emit nodes in ascending label order and validate
// their parameters up front, returning only sentinel errors.
package builder
