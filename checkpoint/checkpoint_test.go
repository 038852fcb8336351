package checkpoint_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/koenig/checkpoint"
	"github.com/katalvlaran/koenig/graph"
	"github.com/katalvlaran/koenig/trail"
)

func quiet() checkpoint.Option {
	return checkpoint.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func sampleSnapshot() *trail.Snapshot {
	return &trail.Snapshot{
		Solutions: [][]byte{{1, 3, 4, 2}, {2, 4, 3, 1}},
		Exhausted: map[graph.NodeID][][]byte{
			1: {{2}, {3, 1}},
			3: {{1, 2, 4}},
		},
		NumExhausted: 42,
		TotalTime:    12.5,
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := checkpoint.New("")
	assert.ErrorIs(t, err, checkpoint.ErrNoDestination)

	_, err = checkpoint.New("x", checkpoint.WithDepthInterval(0))
	assert.ErrorIs(t, err, checkpoint.ErrBadInterval)

	_, err = checkpoint.New("x", checkpoint.WithMinSaveInterval(-time.Second))
	assert.ErrorIs(t, err, checkpoint.ErrBadInterval)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.ckpt")
	m, err := checkpoint.New(path, quiet())
	require.NoError(t, err)

	want := sampleSnapshot()
	require.NoError(t, m.Save(want))

	got := m.Load()
	require.NotNil(t, got)
	assert.Equal(t, want.Solutions, got.Solutions)
	assert.Equal(t, want.Exhausted, got.Exhausted)
	assert.Equal(t, want.NumExhausted, got.NumExhausted)
	assert.InDelta(t, want.TotalTime, got.TotalTime, 1e-9)
}

func TestSave_KeepsPreviousGenerationAsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.ckpt")
	m, err := checkpoint.New(path, quiet())
	require.NoError(t, err)

	first := sampleSnapshot()
	require.NoError(t, m.Save(first))
	firstBytes, err := os.ReadFile(path)
	require.NoError(t, err)

	second := sampleSnapshot()
	second.NumExhausted = 99
	require.NoError(t, m.Save(second))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, firstBytes, backup)

	got := m.Load()
	require.NotNil(t, got)
	assert.Equal(t, uint64(99), got.NumExhausted)
}

func TestLoad_MissingFileMeansFreshStart(t *testing.T) {
	m, err := checkpoint.New(filepath.Join(t.TempDir(), "never-written"), quiet())
	require.NoError(t, err)

	assert.Nil(t, m.Load())
}

func TestLoad_CorruptFileMeansFreshStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.ckpt")
	require.NoError(t, os.WriteFile(path, []byte("not a checkpoint"), 0o644))

	m, err := checkpoint.New(path, quiet())
	require.NoError(t, err)

	assert.Nil(t, m.Load())
}

func TestShouldSave_DepthGate(t *testing.T) {
	m, err := checkpoint.New(filepath.Join(t.TempDir(), "s"), quiet(),
		checkpoint.WithDepthInterval(10),
		checkpoint.WithMinSaveInterval(0),
	)
	require.NoError(t, err)

	assert.True(t, m.ShouldSave(10))
	assert.True(t, m.ShouldSave(20))
	assert.False(t, m.ShouldSave(7))
	assert.False(t, m.ShouldSave(11))
}

func TestShouldSave_MinimumGap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s")
	m, err := checkpoint.New(path, quiet(),
		checkpoint.WithDepthInterval(1),
		checkpoint.WithMinSaveInterval(time.Hour),
	)
	require.NoError(t, err)

	// The gap clock starts at construction.
	assert.False(t, m.ShouldSave(1))

	// With a zero gap a save is immediately due, and due again right
	// after saving.
	m, err = checkpoint.New(path, quiet(),
		checkpoint.WithDepthInterval(1),
		checkpoint.WithMinSaveInterval(0),
	)
	require.NoError(t, err)
	assert.True(t, m.ShouldSave(1))
	require.NoError(t, m.Save(sampleSnapshot()))
	assert.True(t, m.ShouldSave(1))
}

// End to end: an interrupted run's checkpoint resumed in a new session
// matches an uninterrupted run.
func TestResume_MatchesFullRun(t *testing.T) {
	g, err := graph.Normalize(graph.Map{
		NodesToPaths: map[string][]string{
			"A": {"2", "3", "4", "5", "6"},
			"B": {"4", "5", "7"},
			"C": {"1", "2", "3"},
			"D": {"1", "6", "7"},
		},
		PathsToNodes: map[string][]string{
			"1": {"C", "D"},
			"2": {"A", "C"},
			"3": {"A", "C"},
			"4": {"A", "B"},
			"5": {"A", "B"},
			"6": {"A", "D"},
			"7": {"B", "D"},
		},
	})
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Leg one: two starts, then a forced save.
	path := filepath.Join(t.TempDir(), "state.ckpt")
	m1, err := checkpoint.New(path, quiet())
	require.NoError(t, err)
	s1, err := trail.NewSession(g, trail.WithLogger(logger), trail.WithCheckpointer(m1))
	require.NoError(t, err)
	require.NoError(t, s1.SolveFromMany([]string{"A", "B"}, nil))
	require.NoError(t, m1.Save(s1.Snapshot()))

	// Leg two: restore and finish the remaining starts.
	m2, err := checkpoint.New(path, quiet())
	require.NoError(t, err)
	snap := m2.Load()
	require.NotNil(t, snap)
	s2, err := trail.NewSession(g, trail.WithLogger(logger), trail.WithSnapshot(snap))
	require.NoError(t, err)
	require.NoError(t, s2.SolveFromMany([]string{"C", "D"}, nil))

	// The uninterrupted control run.
	full, err := trail.NewSession(g, trail.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, full.SolveAll(nil))

	assert.Equal(t, full.Solutions(), s2.Solutions())
	assert.Equal(t, full.DeadEnds(), s2.DeadEnds())
}
