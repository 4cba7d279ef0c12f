// Command graphwalk generates a random graph, runs a shortest-path search
// (and optionally a depth-first walk) over it, and prints a JSON snapshot
// for a renderer.
//
//	graphwalk -nodes 12 -edges 20 -width 800 -height 600 -weights euclidean -target 5
package main

import (
	"flag"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphwalk/bfs"
	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/dfs"
	"github.com/katalvlaran/graphwalk/dijkstra"
	"github.com/katalvlaran/graphwalk/export"
)

func main() {
	fset := flag.NewFlagSet("graphwalk", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	cfg, err := parseConfig(fset, os.Args[1:])
	if err == nil {
		err = run(cfg, os.Stdout)
	}
	if err != nil {
		klog.Errorf("graphwalk: %v", err)
		klog.Flush()
		os.Exit(1)
	}

	klog.Flush()
}

// run executes one generate → search → export cycle and writes the snapshot
// to cfg.Out, or to stdout when Out is empty.
func run(cfg Config, stdout io.Writer) error {
	klog.V(1).Infof("config: %s", cfg)

	// 1) Graph.
	g, err := builder.Generate(cfg.Nodes, cfg.Edges, cfg.builderOptions()...)
	if err != nil {
		return errors.Wrap(err, "generate graph")
	}
	if comps, err := bfs.Components(g); err == nil {
		klog.V(1).Infof("generated %d nodes, %d edges, %d components", g.NodeCount(), g.EdgeCount(), len(comps))
	}

	// 2) Source: explicit, or a random node that has neighbors.
	source, err := pickSource(g, cfg)
	if err != nil {
		return err
	}

	// 3) Search, stopping at the target when one is given.
	var sopts []dijkstra.Option
	if cfg.Target >= 0 {
		sopts = append(sopts, dijkstra.WithTarget(core.NodeID(cfg.Target)))
	}
	res, err := dijkstra.ShortestPaths(g, source, sopts...)
	if err != nil {
		return errors.Wrapf(err, "search from %d", source)
	}

	var path []core.NodeID
	if cfg.Target >= 0 {
		path, err = res.Path(core.NodeID(cfg.Target))
		switch {
		case errors.Is(err, dijkstra.ErrUnreachable):
			klog.Infof("node %d is unreachable from %d", cfg.Target, source)
		case err != nil:
			return errors.Wrap(err, "reconstruct path")
		default:
			klog.Infof("path %d -> %d: %v (distance %g)", source, cfg.Target, path, res.Distance(core.NodeID(cfg.Target)))
		}
	}

	// 4) Snapshot.
	snap, err := export.FromGraph(g)
	if err != nil {
		return errors.Wrap(err, "snapshot")
	}
	if err = snap.AttachSearch(res, path); err != nil {
		return errors.Wrap(err, "attach search")
	}
	if cfg.Walk {
		visits, err := dfs.Walk(g, source)
		if err != nil {
			return errors.Wrap(err, "walk")
		}
		if err = snap.AttachWalk(visits); err != nil {
			return errors.Wrap(err, "attach walk")
		}
	}

	return writeSnapshot(snap, cfg.Out, stdout)
}

// pickSource resolves cfg.Source. An edgeless graph falls back to node 0.
func pickSource(g *core.Graph, cfg Config) (core.NodeID, error) {
	if cfg.Source >= 0 {
		return core.NodeID(cfg.Source), nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	root, err := builder.RandomRoot(g, rng)
	if errors.Is(err, builder.ErrNoEdges) {
		klog.Warningf("graph has no edges; searching from node 0")
		return 0, nil
	}
	if err != nil {
		return core.NoNode, errors.Wrap(err, "pick source")
	}

	return root, nil
}

func writeSnapshot(snap *export.Snapshot, path string, stdout io.Writer) error {
	if path == "" {
		return export.Encode(stdout, snap)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err = export.Encode(f, snap); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	klog.Infof("snapshot written to %s", path)

	return nil
}
