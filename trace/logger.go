package trace

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pipeplan/core"
	"github.com/katalvlaran/pipeplan/prim"
)

// Logger reports a Prim run as structured zap entries.
type Logger struct {
	l        *zap.Logger
	selected int
}

var _ prim.Observer = (*Logger)(nil)

// NewLogger returns a Logger writing through l. A nil l yields a no-op
// logger.
func NewLogger(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}

	return &Logger{l: l}
}

func candidateFields(c prim.Candidate) []zap.Field {
	return []zap.Field{
		zap.String("from", c.From),
		zap.String("to", c.To),
		zap.Int64("weight", c.Weight),
	}
}

func (lg *Logger) OnStart(root string, frontier []prim.Candidate) {
	lg.selected = 0
	lg.l.Debug("prim started", zap.String("root", root), zap.Int("frontier", len(frontier)))
}

func (lg *Logger) OnPush(c prim.Candidate) {
	lg.l.Debug("candidate pushed", candidateFields(c)...)
}

func (lg *Logger) OnDiscard(c prim.Candidate) {
	lg.l.Debug("candidate discarded", candidateFields(c)...)
}

func (lg *Logger) OnSelect(c prim.Candidate) {
	lg.selected++
	lg.l.Debug("edge selected", append(candidateFields(c), zap.Int("tree_edges", lg.selected))...)
}

func (lg *Logger) OnVisit(v string) {
	lg.l.Debug("vertex visited", zap.String("vertex", v))
}

func (lg *Logger) OnFinish(edges []core.Edge, total int64) {
	lg.l.Info("minimum spanning tree computed",
		zap.Int("edges", len(edges)),
		zap.Int64("total_cost", total),
	)
}
