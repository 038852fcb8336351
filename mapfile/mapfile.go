package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/koenig/graph"
)

// ErrUnreadable wraps any I/O or JSON decoding failure.
var ErrUnreadable = errors.New("mapfile: unreadable input")

// Options configures the readers.
type Options struct {
	// Logger receives suffix warnings.
	Logger *slog.Logger
}

// DefaultOptions uses slog.Default().
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// Option mutates Options.
type Option func(*Options)

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// ReadGraphFile decodes a ".graph" adjacency file and validates it.
func ReadGraphFile(path string, opts ...Option) (map[string][]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	warnSuffix(o.Logger, path, ".graph")

	var adj map[string][]string
	if err := decodeFile(path, &adj); err != nil {
		return nil, err
	}
	if err := graph.ValidateAdjacency(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return adj, nil
}

// ReadMapFile decodes a ".map" dual-index file and validates it.
func ReadMapFile(path string, opts ...Option) (graph.Map, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	warnSuffix(o.Logger, path, ".map")

	var doc struct {
		NodesToPaths map[string][]string `json:"nodes to paths"`
		PathsToNodes map[string][]string `json:"paths to nodes"`
	}
	if err := decodeFile(path, &doc); err != nil {
		return graph.Map{}, err
	}

	m := graph.Map{
		NodesToPaths: doc.NodesToPaths,
		PathsToNodes: doc.PathsToNodes,
	}
	if err := graph.ValidateMap(m); err != nil {
		return graph.Map{}, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func decodeFile(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	return nil
}

func warnSuffix(l *slog.Logger, path, want string) {
	if !strings.HasSuffix(path, want) {
		l.Warn("unexpected file suffix",
			slog.String("path", path), slog.String("want", want))
	}
}
