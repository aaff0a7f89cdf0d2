package bench

import (
	"time"

	"github.com/katalvlaran/beamsearch/state"
)

// Factory constructs a fresh user state seeded with s. The harness calls it
// once per repetition so that no mutable state leaks across runs sharing a
// seed, matching §5's "user states must implement clone as a deep copy"
// discipline extended to construction.
type Factory func(seed int64) state.State

// Strategy names a callable search driver under test — typically one of
// beam.SearchAction, beam.SearchActionByPartial, beam.SearchActionMP, or
// random.Action, closed over their own width/worker arguments by the
// caller.
type Strategy struct {
	Name string
	Run  func(root state.State) ([]int, error)
}

// SeedResult is one seed's outcome within a RunBenchmark sweep.
type SeedResult struct {
	Seed     int64
	Score    float64
	WallTime time.Duration
}

// Result aggregates a strategy's performance across a seed sweep.
type Result struct {
	Name         string
	Seeds        []SeedResult
	MeanScore    float64
	MeanWallTime time.Duration
}
