// File: node.go
// Role: the search-tree node — a State plus the engine-owned bookkeeping
// (parent back-link, last action, cached score) that turns a bare State
// into a tree of reference-shared nodes.
// AI-HINT (file):
//   - CloneAdvance is the one way to grow the tree; never call
//     n.State.Advance(a) directly on a node already published into a
//     beam, or its siblings' clones will observe the mutation too.
//   - Node.EvaluatedScore() is meaningless until Evaluate() has run.

package state

// Node wraps a user State with the bookkeeping the search engine needs
// to retrace how the state was reached.
//
// Parent back-links use plain pointers: Go's garbage collector already
// gives reference-shared ownership for free, so there is no need for an
// arena-plus-index scheme here. A Node may be referenced simultaneously
// by the beam that holds it, the next beam its children will populate,
// any descendant via its Parent link, and the eventual best-state chain;
// it is collected once nothing references it.
type Node struct {
	// State is the user-supplied game state wrapped by this node.
	State State

	// Parent is the node this one was produced from, or nil at the root.
	Parent *Node

	// LastAction is the action applied to Parent to reach this node, or
	// -1 at the root.
	LastAction int

	evaluatedScore float64
	scored         bool
}

// NewRoot wraps s as the root of a search tree: Parent is nil and
// LastAction is -1, as the Node field docs describe for a root.
func NewRoot(s State) *Node {
	return &Node{State: s, Parent: nil, LastAction: -1}
}

// CloneAdvance is the one way to grow the tree by a single ply:
//  1. clone parent's state so sibling expansions remain valid,
//  2. apply action to the clone,
//  3. stamp the new node's Parent and LastAction.
//
// The returned node's EvaluatedScore is left uncomputed until Evaluate
// is called on it.
func CloneAdvance(parent *Node, action int) *Node {
	// AI-HINT: clone-then-advance order is mandatory — advancing before
	// cloning would mutate the parent's state out from under any sibling
	// expansion still in flight.
	cloned := parent.State.Clone()
	cloned.Advance(action)

	return &Node{
		State:      cloned,
		Parent:     parent,
		LastAction: action,
	}
}

// Evaluate invokes the wrapped State's EvaluateScore and caches the
// result on the node, returning it. Idempotent: calling it again on an
// unmodified state recomputes the same cached value.
func (n *Node) Evaluate() float64 {
	n.evaluatedScore = n.State.EvaluateScore()
	n.scored = true

	return n.evaluatedScore
}

// EvaluatedScore returns the cached score field; meaningful only after
// Evaluate has been called on this node. This is the engine's
// get_evaluated_score operation.
func (n *Node) EvaluatedScore() float64 {
	return n.evaluatedScore
}

// Scored reports whether Evaluate has been called on this node yet.
func (n *Node) Scored() bool {
	return n.scored
}

// SetEvaluatedScore assigns the cached score field directly, bypassing a
// call to the wrapped State's EvaluateScore. Equivalent in effect to
// Evaluate when the caller has already computed the score some other
// way (for example, a value produced during expansion).
func (n *Node) SetEvaluatedScore(score float64) {
	n.evaluatedScore = score
	n.scored = true
}

// ExtractPath walks terminal's parent chain back to the root and
// returns the ordered action sequence from root to terminal. The root
// itself contributes no action (its LastAction is -1 and is not
// emitted).
func ExtractPath(terminal *Node) []int {
	var actions []int
	for n := terminal; n.Parent != nil; n = n.Parent {
		actions = append(actions, n.LastAction)
	}

	// actions was built leaf-to-root; reverse it in place to read
	// root-to-terminal.
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return actions
}
