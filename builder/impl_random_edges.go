// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// impl_random_edges.go - RandomEdges(m): add m new edges between uniformly
// chosen node pairs that are not yet adjacent.
//
// Contract:
//   - 0 ≤ m ≤ capacity, where capacity = n(n-1)/2 - g.EdgeCount()
//     (else ErrInvalidParameters).
//   - m == 0 is a no-op; m == capacity adds every missing pair in (i<j) order
//     and needs no RNG unless the weights are random. Anything in between
//     requires cfg.rng.
//   - Weight per edge: cfg.weightFn(cfg.rng), or the endpoint distance when
//     cfg.euclidean is set (both endpoints must then have positions).
//
// Determinism:
//   - Rejection: draw order u then v; the weight is drawn right after an
//     accepted pair.
//   - Shuffle: missing pairs enumerated i asc, j asc; slot k swaps with a
//     uniform slot in [k, len) before its weight is drawn.

package builder

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/layout"
)

// pair is one candidate undirected edge.
type pair struct{ u, v core.NodeID }

// RandomEdges returns a Constructor that adds exactly m new random edges.
func RandomEdges(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g == nil {
			return builderErrorf(methodRandomEdges, "nil graph: %w", ErrConstructFailed)
		}

		// 1) Validate the request against the free capacity.
		n := g.NodeCount()
		capacity := core.MaxSimpleEdges(n) - g.EdgeCount()
		if m < 0 || m > capacity {
			return builderErrorf(methodRandomEdges, "m=%d not in [0,%d]: %w", m, capacity, ErrInvalidParameters)
		}
		if m == 0 {
			return nil
		}
		if cfg.euclidean && !g.Positioned() {
			return builderErrorf(methodRandomEdges, "euclidean weights need positions: %w", ErrInvalidParameters)
		}

		if cfg.rng == nil && (m < capacity || cfg.drawsWeights()) {
			return builderErrorf(methodRandomEdges, "%w", ErrNeedRandSource)
		}

		// 2) Complete fill: no choice to make.
		if m == capacity {
			klog.V(2).Infof("builder: RandomEdges n=%d m=%d complete fill", n, m)
			return fillMissing(g, cfg)
		}

		// 3) Pick a strategy and run it.
		strategy := cfg.pickStrategy(m, capacity)
		klog.V(2).Infof("builder: RandomEdges n=%d m=%d capacity=%d strategy=%s", n, m, capacity, strategy)
		if strategy == StrategyShuffle {
			return shufflePrefix(g, cfg, m)
		}

		return rejectionSample(g, cfg, m)
	}
}

// rejectionSample draws distinct (u, v) until m new pairs were accepted.
// v is drawn from n-1 slots and shifted past u, so u != v without retries.
func rejectionSample(g *core.Graph, cfg builderConfig, m int) error {
	n := g.NodeCount()
	rejected := 0
	for added := 0; added < m; {
		u := cfg.rng.Intn(n)
		v := cfg.rng.Intn(n - 1)
		if v >= u {
			v++
		}
		a, b := core.NodeID(u), core.NodeID(v)
		if g.HasEdge(a, b) {
			rejected++
			continue
		}
		if err := addWeighted(g, cfg, a, b); err != nil {
			return err
		}
		added++
	}
	klog.V(2).Infof("builder: rejection sampling accepted=%d rejected=%d", m, rejected)

	return nil
}

// shufflePrefix adds the first m missing pairs of a partial Fisher–Yates shuffle.
func shufflePrefix(g *core.Graph, cfg builderConfig, m int) error {
	pairs := missingPairs(g)
	for k := 0; k < m; k++ {
		r := k + cfg.rng.Intn(len(pairs)-k)
		pairs[k], pairs[r] = pairs[r], pairs[k]
		if err := addWeighted(g, cfg, pairs[k].u, pairs[k].v); err != nil {
			return err
		}
	}

	return nil
}

// fillMissing adds every missing pair in ascending (i, j) order.
func fillMissing(g *core.Graph, cfg builderConfig) error {
	for _, p := range missingPairs(g) {
		if err := addWeighted(g, cfg, p.u, p.v); err != nil {
			return err
		}
	}

	return nil
}

// missingPairs lists all non-adjacent i<j pairs, i asc then j asc.
func missingPairs(g *core.Graph) []pair {
	n := g.NodeCount()
	out := make([]pair, 0, core.MaxSimpleEdges(n)-g.EdgeCount())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(core.NodeID(i), core.NodeID(j)) {
				out = append(out, pair{u: core.NodeID(i), v: core.NodeID(j)})
			}
		}
	}

	return out
}

// addWeighted computes the weight of u-v under cfg and inserts the edge.
func addWeighted(g *core.Graph, cfg builderConfig, u, v core.NodeID) error {
	var w float64
	if cfg.euclidean {
		d, ok := layout.NodeDistance(g, u, v)
		if !ok {
			return builderErrorf(methodRandomEdges, "edge %d-%d lacks positions: %w", u, v, ErrInvalidParameters)
		}
		w = d
	} else {
		w = cfg.weightFn(cfg.rng)
	}

	if err := g.AddEdge(u, v, w); err != nil {
		return builderErrorf(methodRandomEdges, "%w", err)
	}

	return nil
}
