package trace

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pipeplan/core"
	"github.com/katalvlaran/pipeplan/prim"
)

// Printer writes a step-by-step narration of a Prim run to an io.Writer.
//
// Write errors do not interrupt the computation: the first one is kept and
// reported by Err, and later output is suppressed.
type Printer struct {
	w       io.Writer
	err     error
	started bool
}

var _ prim.Observer = (*Printer)(nil)

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// PrintGraph dumps every vertex in insertion order followed by its pipes.
func (p *Printer) PrintGraph(g *core.Graph) {
	p.printf("\n=== GENERATED GRAPH ===\n")
	for _, v := range g.Vertices() {
		p.printf("%s:\n", v)
		nbrs, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, e := range nbrs {
			p.printf("  - connected to %s with cost %d\n", e.To, e.Weight)
		}
	}
	p.printf("=======================\n\n")
}

// OnStart prints the initial candidate queue.
func (p *Printer) OnStart(root string, frontier []prim.Candidate) {
	p.started = true
	p.printf("\n>>> Starting Prim's algorithm from %s\n", root)
	p.printf("Initial priority queue with edges from %s:\n", root)
	for _, c := range frontier {
		p.printf("  - %s\n", c)
	}
}

// OnPush prints candidates opened by a newly joined vertex. Pushes made
// while seeding the queue are reported by OnStart instead.
func (p *Printer) OnPush(c prim.Candidate) {
	if !p.started {
		return
	}
	p.printf("  - %s\n", c)
}

// OnDiscard is silent.
func (p *Printer) OnDiscard(prim.Candidate) {}

// OnSelect prints the confirmed edge and announces the new vertex.
func (p *Printer) OnSelect(c prim.Candidate) {
	p.printf("\n✔ Selected edge: %s\n", c)
	p.printf("%s joins the tree.\n", c.To)
	p.printf("New candidate edges from %s:\n", c.To)
}

// OnVisit is silent.
func (p *Printer) OnVisit(string) {}

// OnFinish prints the tree and its total cost.
func (p *Printer) OnFinish(edges []core.Edge, total int64) {
	p.printf("\n===== FINAL MINIMUM SPANNING TREE =====\n")
	for _, e := range edges {
		p.printf("  - %s\n", e)
	}
	p.printf("\nTotal plumbing installation cost: %d\n", total)
	p.printf("=======================================\n\n")
	p.started = false
}
