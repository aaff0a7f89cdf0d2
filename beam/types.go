package beam

import "errors"

// Sentinel errors returned by the drivers in this package.
var (
	// ErrNoFeasiblePath indicates a round exhausted its current beam into
	// an empty next-round buffer without any child reaching a done state.
	// It is distinct from a nil error paired with an empty action slice,
	// which would otherwise be indistinguishable from "the best path is
	// to play nothing."
	ErrNoFeasiblePath = errors.New("beam: no feasible path found")
)
