package checkpoint

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/koenig/trail"
)

// Manager persists trail.Snapshot records to one file. It satisfies
// trail.Checkpointer and is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	path     string
	opts     Options
	enc      *zstd.Encoder
	dec      *zstd.Decoder
	lastSave time.Time
}

// compile-time interface check
var _ trail.Checkpointer = (*Manager)(nil)

// New builds a Manager writing to path. The minimum-gap clock starts at
// construction, so the first automatic save happens MinSaveInterval
// after the run begins.
func New(path string, opts ...Option) (*Manager, error) {
	if path == "" {
		return nil, ErrNoDestination
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.DepthInterval < 1 || o.MinSaveInterval < 0 {
		return nil, fmt.Errorf("depth %d, gap %s: %w",
			o.DepthInterval, o.MinSaveInterval, ErrBadInterval)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: init compressor: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: init decompressor: %w", err)
	}

	return &Manager{
		path:     path,
		opts:     o,
		enc:      enc,
		dec:      dec,
		lastSave: time.Now(),
	}, nil
}

// Path returns the destination file.
func (m *Manager) Path() string { return m.path }

// ShouldSave reports whether an automatic save is due for a dead end of
// the given depth. It never performs I/O.
func (m *Manager) ShouldSave(depth int) bool {
	if depth%m.opts.DepthInterval != 0 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return time.Since(m.lastSave) >= m.opts.MinSaveInterval
}

// Save writes snap unconditionally: serialize, compress, rename the
// previous file to "<path>.bak", then write fresh with mode 0644.
func (m *Manager) Save(snap *trail.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("checkpoint: encode: %w", err)
	}
	packed := m.enc.EncodeAll(blob, make([]byte, 0, len(blob)/2))

	if _, err := os.Stat(m.path); err == nil {
		if err := os.Rename(m.path, m.path+".bak"); err != nil {
			return fmt.Errorf("checkpoint: back up previous file: %w", err)
		}
	}
	if err := os.WriteFile(m.path, packed, 0o644); err != nil {
		return fmt.Errorf("checkpoint: write %s: %w", m.path, err)
	}
	m.lastSave = time.Now()

	m.opts.Logger.Info("checkpoint saved",
		slog.String("path", m.path),
		slog.Int("bytes", len(packed)),
		slog.Int("solutions", len(snap.Solutions)),
		slog.Uint64("dead_ends", snap.NumExhausted),
	)

	return nil
}

// Load restores the last snapshot, or returns nil for a fresh start. A
// missing file is silent; any other failure is logged at Warn and also
// yields nil, since a lost checkpoint only costs recomputation.
func (m *Manager) Load() *trail.Snapshot {
	raw, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		m.opts.Logger.Warn("checkpoint unreadable, starting fresh",
			slog.String("path", m.path), slog.Any("error", err))

		return nil
	}

	blob, err := m.dec.DecodeAll(raw, nil)
	if err != nil {
		m.opts.Logger.Warn("checkpoint corrupt, starting fresh",
			slog.String("path", m.path), slog.Any("error", err))

		return nil
	}
	var snap trail.Snapshot
	if err := msgpack.Unmarshal(blob, &snap); err != nil {
		m.opts.Logger.Warn("checkpoint corrupt, starting fresh",
			slog.String("path", m.path), slog.Any("error", err))

		return nil
	}

	m.opts.Logger.Info("checkpoint restored",
		slog.String("path", m.path),
		slog.Int("solutions", len(snap.Solutions)),
		slog.Uint64("dead_ends", snap.NumExhausted),
		slog.Duration("prior_time", time.Duration(snap.TotalTime*float64(time.Second))),
	)

	return &snap
}
