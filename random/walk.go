// File: walk.go
// Role: the random walker (spec §4.3) — a single-path descent using
// uniform random legal actions until the state is done or dead.
package random

import (
	"math/rand"

	"github.com/katalvlaran/beamsearch/state"
)

// Action performs a random walk from root and returns the action
// sequence it played, starting from a generator seeded with seed
// (DefaultSeed if seed is 0).
//
// At each step: if the current state has no legal actions, it is
// treated as terminal (no further advancement is attempted) even if
// IsDone/IsDead both report false. Otherwise a uniformly random legal
// action is chosen and applied via state.CloneAdvance.
func Action(root state.State, seed int64) []int {
	return Walk(state.NewRoot(root), NewGenerator(seed))
}

// Walk is the generator-parameterized form of Action, for callers that
// already hold a *rand.Rand (for example, one derived per worker via
// DeriveGenerator). It walks from n, which need not be the tree root.
func Walk(n *state.Node, gen *rand.Rand) []int {
	cur := n
	for !cur.State.IsDone() && !cur.State.IsDead() {
		legal := cur.State.LegalActions()
		if len(legal) == 0 {
			break
		}

		action := legal[gen.Intn(len(legal))]
		cur = state.CloneAdvance(cur, action)
	}

	return state.ExtractPath(cur)
}
