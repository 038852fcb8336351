package checkpoint

import (
	"errors"
	"log/slog"
	"time"
)

var (
	// ErrNoDestination is returned by New when the path is empty.
	ErrNoDestination = errors.New("checkpoint: destination path is empty")
	// ErrBadInterval is returned by New when the depth interval is not
	// positive or the save interval is negative.
	ErrBadInterval = errors.New("checkpoint: invalid interval")
)

// Options configures a Manager. Zero values are replaced by
// DefaultOptions in New; use the With* helpers.
type Options struct {
	// DepthInterval gates ShouldSave: only dead ends whose depth is a
	// multiple of this value are save candidates.
	DepthInterval int

	// MinSaveInterval is the minimum wall-clock gap between two
	// consecutive automatic saves.
	MinSaveInterval time.Duration

	// Logger receives save and restore reports.
	Logger *slog.Logger
}

// DefaultOptions mirrors the historical CLI defaults: a save candidate
// every 10 levels, at most one save per 15 minutes.
func DefaultOptions() Options {
	return Options{
		DepthInterval:   10,
		MinSaveInterval: 15 * time.Minute,
		Logger:          slog.Default(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithDepthInterval sets the dead-end depth gate.
func WithDepthInterval(n int) Option {
	return func(o *Options) { o.DepthInterval = n }
}

// WithMinSaveInterval sets the minimum gap between automatic saves.
func WithMinSaveInterval(d time.Duration) Option {
	return func(o *Options) { o.MinSaveInterval = d }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
