// Package checkpoint persists search progress so an interrupted
// enumeration can resume without redoing work.
//
// A Manager implements trail.Checkpointer around a single destination
// file. Snapshots are serialized with msgpack and compressed with zstd;
// every write first renames the previous file to "<path>.bak", so one
// earlier generation always survives a crash mid-write.
//
// The two halves of the save policy are split on purpose:
//
//   - ShouldSave(depth) answers the cheap "is a save due now?" question
//     (depth is a multiple of the configured interval AND the minimum
//     wall-clock gap since the last save has elapsed).
//   - Save(snap) writes unconditionally. Calling it directly, outside
//     the ShouldSave gate, is how a final forced save is expressed.
//
// Load never fails the caller: a missing file means a fresh start, and
// an unreadable or corrupt file is logged at Warn and treated the same
// way. Losing a checkpoint only costs recomputation.
//
// Errors: ErrNoDestination, ErrBadInterval.
package checkpoint
