// File: heap.go
// Role: a bounded min-heap over search nodes, ordered by EvaluatedScore
// with the worst retained candidate always at the top — the shape
// SearchAction (§4.4) uses to cap a round's buffer at width without
// re-sorting it from scratch on every insert. SearchActionByPartial and
// SearchActionMP do not use it; they cap their buffers with selectTopW.
package beam

import (
	"container/heap"

	"github.com/katalvlaran/beamsearch/state"
)

// beamItem pairs a node with the sequence number it was considered at,
// so that equal-scoring nodes break ties by stable insertion order
// (earlier sequence wins; see beamHeap.Less).
type beamItem struct {
	node *state.Node
	seq  int64
}

// beamHeap is a container/heap.Interface implementation ordered so that
// Len()-1 ... no: index 0 (the heap top) always holds the single worst
// survivor — the lowest score, with ties broken toward the
// most-recently-inserted item being "worse" (evicted first).
type beamHeap struct {
	items []beamItem
}

func (h *beamHeap) Len() int { return len(h.items) }

func (h *beamHeap) Less(i, j int) bool {
	si, sj := h.items[i].node.EvaluatedScore(), h.items[j].node.EvaluatedScore()
	if si != sj {
		return si < sj
	}
	// Tie: the later-inserted item sorts first (is "worse"), so it is
	// the one evicted when the buffer is over capacity, leaving the
	// earlier insertion as the stable survivor.
	return h.items[i].seq > h.items[j].seq
}

func (h *beamHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *beamHeap) Push(x any) { h.items = append(h.items, x.(beamItem)) }

func (h *beamHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}

// top returns the current worst survivor without removing it.
func (h *beamHeap) top() (beamItem, bool) {
	if len(h.items) == 0 {
		return beamItem{}, false
	}

	return h.items[0], true
}

// newBeamHeap returns an initialized, empty bounded heap.
func newBeamHeap() *beamHeap {
	h := &beamHeap{}
	heap.Init(h)

	return h
}

// nodes drains the heap's contents into a plain slice, in arbitrary
// order (the caller only needs the membership, not the heap order).
func (h *beamHeap) nodes() []*state.Node {
	out := make([]*state.Node, len(h.items))
	for i, it := range h.items {
		out[i] = it.node
	}

	return out
}
