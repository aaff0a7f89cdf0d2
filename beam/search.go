// File: search.go
// Role: the canonical beam search driver (§4.4) — two bounded heaps
// (now/next) expanded one round at a time, pruning against the worst
// retained candidate, stopping the instant any child is done.
package beam

import (
	"container/heap"

	"github.com/katalvlaran/beamsearch/state"
)

// SearchAction runs the canonical beam search driver from root with the
// given beam width and returns the action sequence reaching the first
// discovered done descendant.
//
// width must be >= 1; a caller passing a non-positive width has violated
// the driver's precondition and SearchAction panics at the call site
// rather than returning an error from deep inside a round.
func SearchAction(root state.State, width int) ([]int, error) {
	if width < 1 {
		panic("beam: width must be >= 1")
	}

	r := state.NewRoot(root)
	if r.State.IsDone() {
		return nil, nil
	}

	best, err := runBeam(r, width)
	if err != nil {
		return nil, err
	}

	return state.ExtractPath(best), nil
}

// runBeam executes the round loop described by §4.4 and returns the
// winning terminal node.
func runBeam(root *state.Node, width int) (*state.Node, error) {
	now := newBeamHeap()
	heap.Push(now, beamItem{node: root, seq: 0})

	var seq int64 = 1
	var best *state.Node

	for best == nil {
		next := newBeamHeap()

		expanded := 0
		for now.Len() > 0 && expanded < width {
			popped := heap.Pop(now).(beamItem)
			n := popped.node
			expanded++

			for _, a := range n.State.LegalActions() {
				c := state.CloneAdvance(n, a)
				if c.State.IsDead() {
					continue
				}
				c.Evaluate()

				// Pruning gate precedes the terminal check: a child that
				// can't beat the current worst retained candidate is
				// discarded even if it is done, matching §4.4's pinned
				// "evaluate, then gate" order exactly.
				if next.Len() >= width {
					if top, ok := next.top(); ok && top.node.EvaluatedScore() >= c.EvaluatedScore() {
						continue
					}
				}

				if c.State.IsDone() {
					if best == nil || c.EvaluatedScore() > best.EvaluatedScore() {
						best = c
					}
					continue
				}

				heap.Push(next, beamItem{node: c, seq: seq})
				seq++
				if next.Len() > width {
					heap.Pop(next)
				}
			}
		}

		if best != nil {
			break
		}
		if next.Len() == 0 {
			return nil, ErrNoFeasiblePath
		}
		now = next
	}

	return best, nil
}
