// Command koenig exhaustively enumerates Eulerian trails: walks that
// cross every pathway of a graph exactly once.
//
// Input is one of:
//
//	-graph file.graph   plain JSON adjacency
//	-map file.map       named-pathway JSON (parallel pathways allowed)
//	-demo name          built-in topology: square, konigsberg,
//	                    ring:N, complete:N
//
// By default every node is tried as a starting point; -start restricts
// the search to one node. -checkpoint enables periodic progress saves
// and resumption from an earlier run.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/koenig/builder"
	"github.com/katalvlaran/koenig/checkpoint"
	"github.com/katalvlaran/koenig/graph"
	"github.com/katalvlaran/koenig/mapfile"
	"github.com/katalvlaran/koenig/trail"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "koenig:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("koenig", flag.ContinueOnError)
	var (
		graphPath = fs.String("graph", "", "JSON adjacency file (.graph)")
		mapPath   = fs.String("map", "", "JSON named-pathway file (.map)")
		demo      = fs.String("demo", "", "built-in topology: square, konigsberg, ring:N, complete:N")
		start     = fs.String("start", "", "search from this node only (default: all nodes)")

		cpPath     = fs.String("checkpoint", "", "checkpoint file (empty disables checkpointing)")
		cpDepth    = fs.Int("checkpoint-depth", 10, "dead-end depth multiple eligible for a save")
		cpMinGap   = fs.Duration("min-save-interval", 15*time.Minute, "minimum gap between automatic saves")
		reportEach = fs.Int("report-interval", 20, "report abandoned trails at every Nth depth")
		pruneEvery = fs.Int("prune-interval", 1024, "compact exhausted sets after this much growth")
		workers    = fs.Int("workers", 1, "concurrent start-node searches (all-starts mode only)")

		verbosity = fs.Int("v", 0, "verbosity: 0 info, 1 debug, 2 trace")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(*verbosity)
	slog.SetDefault(logger)

	adj, m, err := loadInput(*graphPath, *mapPath, *demo)
	if err != nil {
		return err
	}
	var g *graph.Graph
	if adj != nil {
		g, err = graph.NormalizeAdjacency(adj)
	} else {
		g, err = graph.Normalize(m)
	}
	if err != nil {
		return err
	}
	logger.Info("graph loaded",
		slog.Int("nodes", g.NumNodes()), slog.Int("pathways", g.NumEdges()))

	opts := []trail.Option{
		trail.WithLogger(logger),
		trail.WithReportInterval(*reportEach),
		trail.WithPruneInterval(*pruneEvery),
	}

	var mgr *checkpoint.Manager
	if *cpPath != "" {
		mgr, err = checkpoint.New(*cpPath,
			checkpoint.WithDepthInterval(*cpDepth),
			checkpoint.WithMinSaveInterval(*cpMinGap),
			checkpoint.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		opts = append(opts, trail.WithCheckpointer(mgr))
		if snap := mgr.Load(); snap != nil {
			opts = append(opts, trail.WithSnapshot(snap))
		}
	}

	s, err := trail.NewSession(g, opts...)
	if err != nil {
		return err
	}

	switch {
	case *start != "":
		err = s.SolveFrom(*start, nil)
	case *workers > 1:
		err = s.SolveAllParallel(context.Background(), *workers, nil)
	default:
		err = s.SolveAll(nil)
	}
	if err != nil {
		return err
	}

	// One last save captures the completed state.
	if mgr != nil {
		if err := mgr.Save(s.Snapshot()); err != nil {
			logger.Error("final checkpoint save failed", slog.Any("error", err))
		}
	}

	report(out, g, s)

	return nil
}

// loadInput enforces exactly one input source and decodes it.
func loadInput(graphPath, mapPath, demo string) (map[string][]string, graph.Map, error) {
	n := 0
	for _, v := range []string{graphPath, mapPath, demo} {
		if v != "" {
			n++
		}
	}
	if n != 1 {
		return nil, graph.Map{}, fmt.Errorf("exactly one of -graph, -map, -demo is required")
	}

	switch {
	case graphPath != "":
		adj, err := mapfile.ReadGraphFile(graphPath)

		return adj, graph.Map{}, err
	case mapPath != "":
		m, err := mapfile.ReadMapFile(mapPath)

		return nil, m, err
	default:
		return demoInput(demo)
	}
}

func demoInput(name string) (map[string][]string, graph.Map, error) {
	base, arg, _ := strings.Cut(name, ":")
	switch base {
	case "square":
		return builder.Square(), graph.Map{}, nil
	case "konigsberg":
		return nil, builder.Konigsberg(), nil
	case "ring", "complete":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, graph.Map{}, fmt.Errorf("demo %q: size must be an integer", name)
		}
		var adj map[string][]string
		if base == "ring" {
			adj, err = builder.Ring(n)
		} else {
			adj, err = builder.Complete(n)
		}

		return adj, graph.Map{}, err
	default:
		return nil, graph.Map{}, fmt.Errorf("unknown demo %q", name)
	}
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbosity >= 2:
		level = trail.LevelTrace
	case verbosity == 1:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func report(out io.Writer, g *graph.Graph, s *trail.Session) {
	sols := s.Solutions()
	for i, t := range sols {
		fmt.Fprintf(out, "%4d. %s\n", i+1, strings.Join(g.Labels(t), " -> "))
	}
	fmt.Fprintf(out, "solutions: %d  dead ends: %d  elapsed: %s\n",
		len(sols), s.DeadEnds(), s.Elapsed().Round(time.Millisecond))
}
