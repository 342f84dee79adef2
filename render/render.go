package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pipeplan/core"
)

// pairKey identifies an undirected vertex pair independently of direction.
type pairKey struct{ a, b string }

func newPairKey(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// Render writes a figure of g with the tree edges mst highlighted.
//
// Errors (nothing is written on error):
//   - ErrNilGraph if g is nil.
//   - ErrInconsistentInput if some mst edge joins non-adjacent vertices.
//   - ErrOptionViolation, ErrUnknownFormat for invalid options.
//
// Complexity: O(iterations·V log V + E) for SVG, O(V + E log E) for DOT.
func Render(w io.Writer, g *core.Graph, mst []core.Edge, title string, opts ...Option) error {
	c := newConfig(opts...)
	if c.err != nil {
		return c.err
	}

	var buf bytes.Buffer
	if err := encode(&buf, g, mst, title, c); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)

	return err
}

// RenderFile renders into path. The format follows the file extension
// unless WithFormat is given. The file is only created after the figure has
// been produced in memory.
func RenderFile(path string, g *core.Graph, mst []core.Edge, title string, opts ...Option) error {
	c := newConfig(opts...)
	if c.err != nil {
		return c.err
	}
	if !c.formatSet {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		c.format = f
	}

	var buf bytes.Buffer
	if err := encode(&buf, g, mst, title, c); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}

	return nil
}

func encode(buf *bytes.Buffer, g *core.Graph, mst []core.Edge, title string, c config) error {
	tree, err := treeSet(g, mst)
	if err != nil {
		return err
	}

	switch c.format {
	case FormatSVG:
		writeSVG(buf, g, tree, title, c)
		return nil
	case FormatDOT:
		b, err := marshalDOT(g, tree, title)
		if err != nil {
			return fmt.Errorf("render: dot: %w", err)
		}
		buf.Write(b)
		buf.WriteByte('\n')
		return nil
	default:
		return fmt.Errorf("render: %s: %w", c.format, ErrUnknownFormat)
	}
}

// treeSet validates mst against g and indexes it by vertex pair.
func treeSet(g *core.Graph, mst []core.Edge) (map[pairKey]struct{}, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	tree := make(map[pairKey]struct{}, len(mst))
	for i, e := range mst {
		if !g.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("render: tree edge %d (%s-%s): %w", i, e.From, e.To, ErrInconsistentInput)
		}
		tree[newPairKey(e.From, e.To)] = struct{}{}
	}

	return tree, nil
}
