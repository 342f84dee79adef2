package prim

import "github.com/katalvlaran/pipeplan/core"

// Observer receives the step-by-step trace of one Prim run. Call order:
//
//	OnVisit(root), OnPush(c)…, OnStart(root, frontier),
//	then per pop either OnDiscard(c) or OnVisit(c.To), OnSelect(c), OnPush(…)…,
//	and finally OnFinish(edges, total) on success.
//
// Implementations must not retain or mutate the frontier and edges slices
// beyond the call.
type Observer interface {
	OnStart(root string, frontier []Candidate)
	OnPush(c Candidate)
	OnDiscard(c Candidate)
	OnSelect(c Candidate)
	OnVisit(v string)
	OnFinish(edges []core.Edge, total int64)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) OnStart(string, []Candidate) {}
func (NopObserver) OnPush(Candidate)            {}
func (NopObserver) OnDiscard(Candidate)         {}
func (NopObserver) OnSelect(Candidate)          {}
func (NopObserver) OnVisit(string)              {}
func (NopObserver) OnFinish([]core.Edge, int64) {}

// ObserverFuncs adapts optional callbacks to Observer; nil fields are skipped.
type ObserverFuncs struct {
	Start   func(root string, frontier []Candidate)
	Push    func(c Candidate)
	Discard func(c Candidate)
	Select  func(c Candidate)
	Visit   func(v string)
	Finish  func(edges []core.Edge, total int64)
}

func (f ObserverFuncs) OnStart(root string, frontier []Candidate) {
	if f.Start != nil {
		f.Start(root, frontier)
	}
}

func (f ObserverFuncs) OnPush(c Candidate) {
	if f.Push != nil {
		f.Push(c)
	}
}

func (f ObserverFuncs) OnDiscard(c Candidate) {
	if f.Discard != nil {
		f.Discard(c)
	}
}

func (f ObserverFuncs) OnSelect(c Candidate) {
	if f.Select != nil {
		f.Select(c)
	}
}

func (f ObserverFuncs) OnVisit(v string) {
	if f.Visit != nil {
		f.Visit(v)
	}
}

func (f ObserverFuncs) OnFinish(edges []core.Edge, total int64) {
	if f.Finish != nil {
		f.Finish(edges, total)
	}
}

// Observers fans notifications out to every non-nil observer in order.
func Observers(obs ...Observer) Observer {
	list := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	switch len(list) {
	case 0:
		return NopObserver{}
	case 1:
		return list[0]
	}

	return list
}

type multiObserver []Observer

func (m multiObserver) OnStart(root string, frontier []Candidate) {
	for _, o := range m {
		o.OnStart(root, frontier)
	}
}

func (m multiObserver) OnPush(c Candidate) {
	for _, o := range m {
		o.OnPush(c)
	}
}

func (m multiObserver) OnDiscard(c Candidate) {
	for _, o := range m {
		o.OnDiscard(c)
	}
}

func (m multiObserver) OnSelect(c Candidate) {
	for _, o := range m {
		o.OnSelect(c)
	}
}

func (m multiObserver) OnVisit(v string) {
	for _, o := range m {
		o.OnVisit(v)
	}
}

func (m multiObserver) OnFinish(edges []core.Edge, total int64) {
	for _, o := range m {
		o.OnFinish(edges, total)
	}
}
