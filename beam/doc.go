// Package beam implements beam search over a state.State tree: a
// sequential driver backed by a bounded min-heap (SearchAction), a
// partial-selection variant backed by a linear-time top-k partition
// (SearchActionByPartial), and a parallel variant that fans the beam out
// across a fixed worker pool (SearchActionMP).
//
// All three drivers discard dead children. SearchAction checks each
// remaining child against the worst retained candidate once the next
// round's buffer is at capacity, and a done child that passes that check
// becomes the best candidate; the search stops at the end of that round.
// SearchActionByPartial and SearchActionMP have no per-child check: they
// keep the top width children of a round, done or not, and stop when a
// done child is among them. The drivers therefore agree when done states
// appear only in a round whose children are all done (as with a fixed
// turn limit), but not in general. None guarantees an optimal path — beam
// search is heuristic by construction.
//
// A driver returns ErrNoFeasiblePath, distinct from a nil error with an
// empty action slice, when a round empties its buffer without ever
// producing a done descendant.
package beam
