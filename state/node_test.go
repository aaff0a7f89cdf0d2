package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamsearch/state"
)

// counterState is a minimal State fixture: action 0 increments, action 1
// decrements, done once the counter reaches a target, dead if it goes
// negative. It exists only to exercise state.Node's bookkeeping; it is
// not a shipped library example.
type counterState struct {
	value  int
	target int
}

func (c *counterState) Advance(action int) {
	if action == 0 {
		c.value++
	} else {
		c.value--
	}
}

func (c *counterState) LegalActions() []int {
	if c.value >= c.target {
		return nil
	}
	return []int{0, 1}
}

func (c *counterState) IsDone() bool { return c.value == c.target }
func (c *counterState) IsDead() bool { return c.value < 0 }
func (c *counterState) EvaluateScore() float64 {
	return float64(c.value)
}
func (c *counterState) Clone() state.State {
	cp := *c
	return &cp
}

func TestCloneAdvance_IsolatesSiblings(t *testing.T) {
	root := state.NewRoot(&counterState{value: 0, target: 3})

	up := state.CloneAdvance(root, 0)
	down := state.CloneAdvance(root, 1)

	assert.Equal(t, 1, up.State.(*counterState).value)
	assert.Equal(t, -1, down.State.(*counterState).value)
	assert.Equal(t, 0, root.State.(*counterState).value, "parent state must remain untouched")

	assert.Same(t, root, up.Parent)
	assert.Same(t, root, down.Parent)
	assert.Equal(t, 0, up.LastAction)
	assert.Equal(t, 1, down.LastAction)
}

func TestNewRoot_Invariants(t *testing.T) {
	root := state.NewRoot(&counterState{})
	assert.Nil(t, root.Parent)
	assert.Equal(t, -1, root.LastAction)
}

func TestEvaluate_CachesScore(t *testing.T) {
	n := state.NewRoot(&counterState{value: 7})
	require.False(t, n.Scored())

	got := n.Evaluate()

	assert.Equal(t, 7.0, got)
	assert.Equal(t, 7.0, n.EvaluatedScore())
	assert.True(t, n.Scored())
}

func TestSetEvaluatedScore(t *testing.T) {
	n := state.NewRoot(&counterState{value: 1})
	n.SetEvaluatedScore(42)

	assert.Equal(t, 42.0, n.EvaluatedScore())
	assert.True(t, n.Scored())
}

func TestExtractPath_RootToTerminal(t *testing.T) {
	root := state.NewRoot(&counterState{value: 0, target: 3})
	n1 := state.CloneAdvance(root, 0)
	n2 := state.CloneAdvance(n1, 0)
	n3 := state.CloneAdvance(n2, 0)

	require.True(t, n3.State.IsDone())
	assert.Equal(t, []int{0, 0, 0}, state.ExtractPath(n3))
}

func TestExtractPath_RootOnly(t *testing.T) {
	root := state.NewRoot(&counterState{})
	assert.Empty(t, state.ExtractPath(root))
}

func TestExtractPath_MixedActions(t *testing.T) {
	root := state.NewRoot(&counterState{value: 0, target: 5})
	n1 := state.CloneAdvance(root, 0)  // 1
	n2 := state.CloneAdvance(n1, 0)    // 2
	n3 := state.CloneAdvance(n2, 1)    // 1
	n4 := state.CloneAdvance(n3, 0)    // 2
	n5 := state.CloneAdvance(n4, 0)    // 3 — not done yet (target 5)

	path := state.ExtractPath(n5)
	assert.Equal(t, []int{0, 0, 1, 0, 0}, path)
}
