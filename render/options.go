package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the output encoding.
type Format int

const (
	// FormatSVG renders a standalone SVG document.
	FormatSVG Format = iota
	// FormatDOT renders a Graphviz DOT document.
	FormatDOT
)

// String returns the canonical file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatDOT:
		return "dot"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath infers the format from a file extension:
// .svg → FormatSVG, .dot/.gv → FormatDOT.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".dot", ".gv":
		return FormatDOT, nil
	default:
		return 0, fmt.Errorf("render: %q: %w", path, ErrUnknownFormat)
	}
}

const (
	defaultSeed       = 42
	defaultIterations = 50
	defaultWidth      = 1000
	defaultHeight     = 800
	minCanvas         = 200
)

type config struct {
	seed          int64
	iterations    int
	width, height int
	format        Format
	formatSet     bool
	err           error
}

// Option customizes rendering.
type Option func(*config)

func newConfig(opts ...Option) config {
	c := config{
		seed:       defaultSeed,
		iterations: defaultIterations,
		width:      defaultWidth,
		height:     defaultHeight,
		format:     FormatSVG,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c *config) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// WithSeed fixes the initial layout placement.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithIterations sets the number of force-directed layout steps (≥ 1).
func WithIterations(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.fail(fmt.Errorf("WithIterations(%d): require n ≥ 1: %w", n, ErrOptionViolation))
			return
		}
		c.iterations = n
	}
}

// WithSize sets the SVG canvas size in pixels; both sides must be at least 200.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width < minCanvas || height < minCanvas {
			c.fail(fmt.Errorf("WithSize(%d,%d): require sides ≥ %d: %w", width, height, minCanvas, ErrOptionViolation))
			return
		}
		c.width, c.height = width, height
	}
}

// WithFormat selects the output format. For RenderFile it overrides the
// file extension.
func WithFormat(f Format) Option {
	return func(c *config) {
		if f != FormatSVG && f != FormatDOT {
			c.fail(fmt.Errorf("WithFormat(%s): %w", f, ErrUnknownFormat))
			return
		}
		c.format = f
		c.formatSet = true
	}
}
