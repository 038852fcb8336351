// Package trail types and options: the Trail result type, the Snapshot
// exchanged with checkpointing, the Checkpointer contract, sentinel
// errors, and the functional options consumed by NewSession.
package trail

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/koenig/graph"
)

// LevelTrace is the verbosity tier below slog.LevelDebug used for
// reporting every abandoned trail rather than every Nth one.
const LevelTrace = slog.Level(-8)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to NewSession.
	ErrGraphNil = errors.New("trail: graph is nil")

	// ErrStartNotFound indicates that a named start node does not exist
	// in the graph.
	ErrStartNotFound = errors.New("trail: start node not found")

	// ErrBadInterval indicates a non-positive reporting interval option.
	ErrBadInterval = errors.New("trail: interval must be positive")
)

// Trail is a completed sequence of pathway IDs in traversal order. Each
// emitted Trail is an immutable copy; its length always equals the
// graph's pathway count.
type Trail []graph.EdgeID

// Snapshot is the full resumable state of a Session: everything needed
// to continue a search in a later process. Field tags fix the persisted
// record layout.
type Snapshot struct {
	// Solutions holds every distinct completed trail found so far, one
	// byte per step, sorted lexicographically.
	Solutions [][]byte `msgpack:"solutions"`

	// Exhausted holds the trimmed dead-end prefixes, grouped by the start
	// node they were recorded under. Each sequence is pathway IDs 1..255
	// in traversal order with no padding.
	Exhausted map[graph.NodeID][][]byte `msgpack:"exhausted_paths"`

	// NumExhausted counts every dead end ever hit, including those not
	// retained after compaction and those hit with memoization disabled.
	NumExhausted uint64 `msgpack:"num_exhausted"`

	// TotalTime is the cumulative wall-clock seconds across all runs.
	TotalTime float64 `msgpack:"total_time"`
}

// Checkpointer is the persistence hook consulted by the enumerator at
// dead ends. ShouldSave must be cheap — it is called on every dead end.
// A Save failure is logged and the search continues; only that one
// checkpoint generation is lost.
type Checkpointer interface {
	// ShouldSave reports whether a checkpoint is due for a dead end at
	// the given depth.
	ShouldSave(depth int) bool

	// Save durably persists the snapshot.
	Save(snap *Snapshot) error
}

// Option configures a Session. Use with NewSession(g, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a search Session.
type Options struct {
	// Logger receives progress reporting; defaults to slog.Default().
	Logger *slog.Logger

	// ReportInterval selects which abandoned trails log at Debug: those
	// whose depth is a multiple of it. All others log at LevelTrace.
	ReportInterval int

	// PruneInterval triggers exhausted-set compaction once the set has
	// grown by this many members since the last compaction. Zero or
	// negative disables compaction (never the memoizer itself).
	PruneInterval int

	// Memoize enables the exhausted-prefix set. Disabling it never
	// changes the solution set, only the work done; the dead-end counter
	// keeps counting either way.
	Memoize bool

	// SavePruning compacts the exhausted set before each snapshot is
	// built, shrinking the persisted blob. Disable to snapshot verbatim.
	SavePruning bool

	// Checkpointer, if non-nil, is consulted at dead ends and used to
	// persist snapshots. Nil means no persistence.
	Checkpointer Checkpointer

	// Snapshot, if non-nil, restores a prior run's state: solutions,
	// exhausted prefixes, dead-end counter, and cumulative elapsed time.
	Snapshot *Snapshot
}

// DefaultOptions returns the baseline configuration:
//   - slog.Default() logging
//   - report every 20th depth at Debug
//   - compaction after 1024 new exhausted members
//   - memoization on, pre-save compaction on
//   - no checkpointer, no restored state
func DefaultOptions() Options {
	return Options{
		Logger:         slog.Default(),
		ReportInterval: 20,
		PruneInterval:  1024,
		Memoize:        true,
		SavePruning:    true,
		Checkpointer:   nil,
		Snapshot:       nil,
	}
}

// WithLogger returns an Option that installs lg for progress reporting.
// A nil lg has no effect.
func WithLogger(lg *slog.Logger) Option {
	return func(o *Options) {
		if lg != nil {
			o.Logger = lg
		}
	}
}

// WithReportInterval returns an Option that sets the Debug-tier
// dead-end reporting interval.
func WithReportInterval(n int) Option {
	return func(o *Options) {
		o.ReportInterval = n
	}
}

// WithPruneInterval returns an Option that sets the compaction trigger:
// compact once the exhausted set grew by n members since the last
// compaction. n <= 0 disables compaction.
func WithPruneInterval(n int) Option {
	return func(o *Options) {
		o.PruneInterval = n
	}
}

// WithMemoizer returns an Option that enables or disables the
// exhausted-prefix set. The solution set is identical either way.
func WithMemoizer(enabled bool) Option {
	return func(o *Options) {
		o.Memoize = enabled
	}
}

// WithSavePruning returns an Option controlling whether the exhausted
// set is compacted before each snapshot.
func WithSavePruning(enabled bool) Option {
	return func(o *Options) {
		o.SavePruning = enabled
	}
}

// WithCheckpointer returns an Option that installs cp as the persistence
// hook consulted at dead ends.
func WithCheckpointer(cp Checkpointer) Option {
	return func(o *Options) {
		o.Checkpointer = cp
	}
}

// WithSnapshot returns an Option that restores snap's state into the new
// Session. The Session's virtual start time is shifted into the past by
// snap.TotalTime so elapsed-time reporting spans all runs.
func WithSnapshot(snap *Snapshot) Option {
	return func(o *Options) {
		o.Snapshot = snap
	}
}

// background is the context handed to slog calls.
var background = context.Background()
