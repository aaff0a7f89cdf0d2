// File: partial.go
// Role: the alternative beam driver (§4.5) — an unbounded per-round
// buffer collapsed in one shot with a linear-time top-k partition
// instead of the canonical driver's bounded min-heap. A done child ends
// the search only if it is among a round's top width children.
package beam

import "github.com/katalvlaran/beamsearch/state"

// SearchActionByPartial runs beam search using the partial-selection
// strategy of §4.5: each round keeps the top width children (done or
// not) instead of applying SearchAction's per-child pruning check, so the
// two can return different paths when done states appear at different
// depths. Same precondition as SearchAction (width >= 1, enforced the
// same way).
func SearchActionByPartial(root state.State, width int) ([]int, error) {
	if width < 1 {
		panic("beam: width must be >= 1")
	}

	r := state.NewRoot(root)
	if r.State.IsDone() {
		return nil, nil
	}

	best, err := runBeamPartial([]*state.Node{r}, width)
	if err != nil {
		return nil, err
	}

	return state.ExtractPath(best), nil
}

// runBeamPartial executes the round loop described by §4.5.
func runBeamPartial(now []*state.Node, width int) (*state.Node, error) {
	for {
		var buffer []*state.Node

		expanded := 0
		for i := 0; i < len(now) && expanded < width; i++ {
			n := now[i]
			expanded++

			for _, a := range n.State.LegalActions() {
				c := state.CloneAdvance(n, a)
				if c.State.IsDead() {
					continue
				}
				c.Evaluate()
				buffer = append(buffer, c)
			}
		}

		if len(buffer) == 0 {
			return nil, ErrNoFeasiblePath
		}

		survivors := selectTopW(buffer, width)

		var best *state.Node
		for _, c := range survivors {
			if c.State.IsDone() && (best == nil || c.EvaluatedScore() > best.EvaluatedScore()) {
				best = c
			}
		}
		if best != nil {
			return best, nil
		}

		now = survivors
	}
}

// selectTopW partitions buf in place so that the w highest-scoring
// nodes (by EvaluatedScore) occupy the first w positions in unspecified
// order, then returns that prefix. If w >= len(buf), buf is returned
// unmodified. This is the "partial selection" primitive of §4.5: a
// linear-time nth-element-style partition, not a full sort.
func selectTopW(buf []*state.Node, w int) []*state.Node {
	if w >= len(buf) {
		return buf
	}

	target := w - 1
	lo, hi := 0, len(buf)-1
	for lo < hi {
		p := partitionDescending(buf, lo, hi)
		switch {
		case p == target:
			lo = hi // done
		case p < target:
			lo = p + 1
		default:
			hi = p - 1
		}
	}

	return buf[:w]
}

// partitionDescending is a Lomuto partition keyed on EvaluatedScore,
// pivoting on buf[hi]: after it returns index p, every element in
// buf[lo:p] scores strictly higher than buf[p], and every element in
// buf[p+1:hi+1] scores at most buf[p].
func partitionDescending(buf []*state.Node, lo, hi int) int {
	pivot := buf[hi].EvaluatedScore()
	i := lo
	for j := lo; j < hi; j++ {
		if buf[j].EvaluatedScore() > pivot {
			buf[i], buf[j] = buf[j], buf[i]
			i++
		}
	}
	buf[i], buf[hi] = buf[hi], buf[i]

	return i
}
