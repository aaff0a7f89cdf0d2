// File: parallel.go
// Role: the parallel beam driver (§4.6) — the current beam is
// partitioned across a fixed pool of workers; each expands its own
// shard independently and the round joins before redistributing.
package beam

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beamsearch/state"
)

// SearchActionMP runs beam search using the parallel strategy of §4.6:
// the beam is sharded across workers workers of goroutines, each worker
// reading only its own shard and writing only its own output shard for
// the duration of a round. Same width precondition as SearchAction;
// workers must be >= 1.
func SearchActionMP(root state.State, width int, workers int) ([]int, error) {
	if width < 1 {
		panic("beam: width must be >= 1")
	}
	if workers < 1 {
		panic("beam: workers must be >= 1")
	}

	r := state.NewRoot(root)
	if r.State.IsDone() {
		return nil, nil
	}

	now := make([][]*state.Node, workers)
	now[0] = []*state.Node{r}

	for {
		next, err := expandShardsParallel(now, width)
		if err != nil {
			return nil, err
		}

		pool := mergeShards(next)
		if len(pool) == 0 {
			return nil, ErrNoFeasiblePath
		}
		pool = selectTopW(pool, width)

		if best := bestDone(pool); best != nil {
			return state.ExtractPath(best), nil
		}

		now = redistribute(pool, workers)
	}
}

// expandShardsParallel launches one goroutine per shard via a fixed
// worker pool and joins before returning. A shard that expands all of
// its current nodes, discards dead children, scores the rest, and — if
// its own output grows past width — partially selects its own top-w
// before the round-boundary join. A panic inside a shard's user-state
// callback is recovered and surfaced as a returned error, matching §7's
// "user callback failure...surfaces to the caller of the driver without
// partial results" without taking the whole process down with it.
func expandShardsParallel(now [][]*state.Node, width int) ([][]*state.Node, error) {
	next := make([][]*state.Node, len(now))

	group, _ := errgroup.WithContext(context.Background())
	for j := range now {
		j := j
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("beam: worker %d callback failure: %v", j, r)
				}
			}()

			next[j] = expandShard(now[j])
			if len(next[j]) > width {
				next[j] = selectTopW(next[j], width)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return next, nil
}

// expandShard expands every node in shard (no per-node width cap: the
// cap is applied to the shard's aggregate output, per §4.6 step 1),
// discarding dead children and scoring the rest.
func expandShard(shard []*state.Node) []*state.Node {
	var out []*state.Node
	for _, n := range shard {
		for _, a := range n.State.LegalActions() {
			c := state.CloneAdvance(n, a)
			if c.State.IsDead() {
				continue
			}
			c.Evaluate()
			out = append(out, c)
		}
	}

	return out
}

// mergeShards concatenates shard outputs in worker-index order, which
// is what makes the merge a deterministic function of the multiset of
// survivors regardless of goroutine scheduling (§5: "the global merge is
// a deterministic function of the multiset of survivors").
func mergeShards(shards [][]*state.Node) []*state.Node {
	var pool []*state.Node
	for _, s := range shards {
		pool = append(pool, s...)
	}

	return pool
}

// bestDone returns the maximum-scoring done node in pool, or nil if none.
func bestDone(pool []*state.Node) *state.Node {
	var best *state.Node
	for _, n := range pool {
		if n.State.IsDone() && (best == nil || n.EvaluatedScore() > best.EvaluatedScore()) {
			best = n
		}
	}

	return best
}

// redistribute clears all shards and places pool[j] into shard j%workers,
// round-robin, matching §4.6 step 5.
func redistribute(pool []*state.Node, workers int) [][]*state.Node {
	next := make([][]*state.Node, workers)
	for j, n := range pool {
		w := j % workers
		next[w] = append(next[w], n)
	}

	return next
}
