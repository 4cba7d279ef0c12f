package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/layout"
)

// Weight schemes accepted by -weights.
const (
	weightsUnit      = "unit"
	weightsUniform   = "uniform"
	weightsInt       = "int"
	weightsEuclidean = "euclidean"
)

// Config is the resolved command line.
type Config struct {
	Nodes int
	Edges int
	Seed  int64

	// Width and Height enable coordinates when both are positive.
	Width  float64
	Height float64
	Inset  float64

	Weights string
	Min     float64
	Max     float64

	// Source < 0 picks a random node that has neighbors.
	Source int
	// Target < 0 means no path is reconstructed.
	Target int
	Walk   bool
	Out    string
}

// registerFlags binds every Config field to fs and returns the target struct.
func registerFlags(fs *flag.FlagSet) *Config {
	c := &Config{}
	fs.IntVar(&c.Nodes, "nodes", 10, "number of nodes")
	fs.IntVar(&c.Edges, "edges", 15, "number of edges")
	fs.Int64Var(&c.Seed, "seed", 1, "random seed")
	fs.Float64Var(&c.Width, "width", 0, "canvas width; 0 disables coordinates")
	fs.Float64Var(&c.Height, "height", 0, "canvas height; 0 disables coordinates")
	fs.Float64Var(&c.Inset, "inset", layout.DefaultInset, "margin between node centres and the canvas edge")
	fs.StringVar(&c.Weights, "weights", weightsUnit, "edge weights: unit|uniform|int|euclidean")
	fs.Float64Var(&c.Min, "min", 1, "lower bound for uniform/int weights")
	fs.Float64Var(&c.Max, "max", 10, "upper bound for uniform/int weights")
	fs.IntVar(&c.Source, "source", -1, "search source; negative picks a random connected node")
	fs.IntVar(&c.Target, "target", -1, "path target; negative skips path reconstruction")
	fs.BoolVar(&c.Walk, "walk", false, "include a depth-first preorder from the source")
	fs.StringVar(&c.Out, "out", "", "write the JSON snapshot to this file instead of stdout")

	return c
}

// parseConfig parses args into a validated Config.
func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	c := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return *c, nil
}

// Validate checks what the flag types cannot express. Node and edge counts
// are left to builder.Generate so the library reports them.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"-width", c.Width}, {"-height", c.Height}, {"-inset", c.Inset},
		{"-min", c.Min}, {"-max", c.Max},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Errorf("%s must be finite, got %g", f.name, f.v)
		}
	}

	switch c.Weights {
	case weightsUnit, weightsUniform, weightsInt:
	case weightsEuclidean:
		if !c.hasCanvas() {
			return errors.New("-weights=euclidean needs -width and -height")
		}
	default:
		return errors.Errorf("unknown -weights %q", c.Weights)
	}
	if c.Min < 0 || c.Max < c.Min {
		return errors.Errorf("need 0 <= -min <= -max, got %g and %g", c.Min, c.Max)
	}
	if c.Weights == weightsInt && c.Max > math.MaxInt32 {
		return errors.Errorf("-max=%g too large for -weights=int", c.Max)
	}
	if (c.Width > 0) != (c.Height > 0) {
		return errors.New("-width and -height must be set together")
	}
	if c.Inset < 0 {
		return errors.Errorf("-inset must be non-negative, got %g", c.Inset)
	}
	if c.Source >= c.Nodes || c.Target >= c.Nodes {
		return errors.Errorf("-source/-target must be below -nodes=%d", c.Nodes)
	}

	return nil
}

func (c Config) hasCanvas() bool {
	return c.Width > 0 && c.Height > 0
}

// builderOptions maps the config onto builder options.
func (c Config) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithSeed(c.Seed), builder.WithInset(c.Inset)}
	if c.hasCanvas() {
		opts = append(opts, builder.WithBounds(layout.Bounds{Width: c.Width, Height: c.Height}))
	}

	switch c.Weights {
	case weightsUniform:
		opts = append(opts, builder.WithUniformWeight(c.Min, c.Max))
	case weightsInt:
		opts = append(opts, builder.WithUniformIntWeight(int(c.Min), int(c.Max)))
	case weightsEuclidean:
		opts = append(opts, builder.WithEuclideanWeight())
	}

	return opts
}

// String renders the config for the startup log line.
func (c Config) String() string {
	return fmt.Sprintf("nodes=%d edges=%d seed=%d canvas=%gx%g weights=%s source=%d target=%d walk=%t",
		c.Nodes, c.Edges, c.Seed, c.Width, c.Height, c.Weights, c.Source, c.Target, c.Walk)
}
