package prim

import (
	"container/heap"
	"sort"
)

// candidateQueue implements heap.Interface for a min-heap of Candidate
// values ordered by Candidate.Less.
type candidateQueue []Candidate

// Len returns the number of queued candidates.
func (q candidateQueue) Len() int { return len(q) }

// Less delegates to the lexicographic (Weight, From, To) order.
func (q candidateQueue) Less(i, j int) bool { return q[i].Less(q[j]) }

// Swap swaps elements at indices i and j.
func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x; called by heap.Push. Complexity: O(log N) amortized.
func (q *candidateQueue) Push(x interface{}) { *q = append(*q, x.(Candidate)) }

// Pop removes the last element; called by heap.Pop.
func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]

	return c
}

func (q *candidateQueue) push(c Candidate) { heap.Push(q, c) }

func (q *candidateQueue) pop() Candidate { return heap.Pop(q).(Candidate) }

// snapshot returns the queued candidates in ascending order without
// disturbing the heap.
// Complexity: O(N log N).
func (q candidateQueue) snapshot() []Candidate {
	out := make([]Candidate, len(q))
	copy(out, q)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
