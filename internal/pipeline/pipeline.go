// Package pipeline wires the stages together: generate a neighborhood,
// compute its minimum spanning tree, and draw the figure.
package pipeline

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeplan/builder"
	"github.com/katalvlaran/pipeplan/core"
	"github.com/katalvlaran/pipeplan/prim"
	"github.com/katalvlaran/pipeplan/render"
	"github.com/katalvlaran/pipeplan/trace"
)

// Result summarizes a completed run.
type Result struct {
	Graph      *core.Graph
	Edges      []core.Edge
	Total      int64
	Spanning   bool
	Components int
}

// Runner executes the pipeline. Narration goes to Out when Config.Trace is
// set; structured logs go to Logger.
type Runner struct {
	Logger *zap.Logger
	Out    io.Writer

	// RenderOptions are passed through to the visualizer.
	RenderOptions []render.Option
}

// NewRunner returns a Runner. A nil logger disables logging and a nil out
// disables narration.
func NewRunner(logger *zap.Logger, out io.Writer) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{Logger: logger, Out: out}
}

// Run validates cfg and executes GraphGenerator → PrimMST → Visualizer.
// The first failing stage aborts the run; nothing is rendered after a
// failure.
func (r *Runner) Run(cfg Config) (*Result, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("pipeline")

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	var bopts []builder.BuilderOption
	if cfg.Seed != 0 {
		bopts = append(bopts, builder.WithSeed(cfg.Seed))
	}
	g, err := builder.Generate(cfg.Vertices, bopts...)
	if err != nil {
		return nil, errors.Wrap(err, "generating graph")
	}
	log.Info("graph generated",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int64("seed", cfg.Seed),
	)

	observers := []prim.Observer{trace.NewLogger(log.Named("prim"))}
	var printer *trace.Printer
	if cfg.Trace && r.Out != nil {
		printer = trace.NewPrinter(r.Out)
		printer.PrintGraph(g)
		observers = append(observers, printer)
	}

	edges, total, err := prim.Prim(g, cfg.Start, prim.WithObserver(prim.Observers(observers...)))
	if err != nil {
		return nil, errors.Wrapf(err, "computing MST from %q", cfg.Start)
	}
	if printer != nil && printer.Err() != nil {
		log.Warn("narration output failed", zap.Error(printer.Err()))
	}

	res := &Result{
		Graph:      g,
		Edges:      edges,
		Total:      total,
		Spanning:   prim.Spans(g, edges),
		Components: len(prim.Components(g)),
	}
	if !res.Spanning {
		log.Warn("graph is disconnected; the tree covers the start component only",
			zap.Int("covered", len(edges)+1),
			zap.Int("vertices", g.VertexCount()),
			zap.Int("components", res.Components),
		)
	}

	if err = render.RenderFile(cfg.Output, g, edges, cfg.Title, r.RenderOptions...); err != nil {
		return nil, errors.Wrapf(err, "rendering figure %s", cfg.Output)
	}
	log.Info("figure written", zap.String("path", cfg.Output), zap.Int64("total_cost", total))

	return res, nil
}
