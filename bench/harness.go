// File: harness.go
// Role: the benchmark harness of §4.7 — sweeps a strategy across seeds,
// replays each returned path to score it, and aggregates mean score and
// mean wall time. Grounded on the teacher's own benchmark-construction
// discipline in tsp/bench_test.go (pre-build inputs outside the timer,
// deterministic seeds), promoted here from test-only tooling into a
// reusable component per §2.
package bench

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/beamsearch/state"
)

// RunBenchmark runs strategy against seeds s = 0, 1, ..., seeds-1. For each
// seed it constructs a fresh state via factory, runs the strategy
// repetitions times (keeping only the first repetition's returned action
// sequence, per §4.7), replays that sequence to compute the final score,
// and records the mean wall time across repetitions. A strategy failure on
// any seed is wrapped with its seed/repetition context and folded into a
// multierror rather than aborting the sweep, so a single bad seed does not
// hide every other seed's outcome.
func RunBenchmark(factory Factory, strategy Strategy, seeds int, repetitions int) (Result, error) {
	if seeds < 1 {
		panic("bench: seeds must be >= 1")
	}
	if repetitions < 1 {
		panic("bench: repetitions must be >= 1")
	}

	var failures *multierror.Error
	result := Result{Name: strategy.Name, Seeds: make([]SeedResult, 0, seeds)}

	var scores, wallTimesNS []float64

	for s := int64(0); s < int64(seeds); s++ {
		var path []int
		var repTimes []float64
		failed := false

		for r := 0; r < repetitions; r++ {
			root := factory(s)

			start := time.Now()
			p, err := strategy.Run(root)
			elapsed := time.Since(start)

			if err != nil {
				failures = multierror.Append(failures, errors.Wrapf(err, "strategy %q: seed %d, repetition %d", strategy.Name, s, r))
				failed = true
				break
			}

			repTimes = append(repTimes, float64(elapsed))
			if r == 0 {
				path = p
			}
		}
		if failed {
			continue
		}

		score := replayScore(factory(s), path)
		meanTime := stat.Mean(repTimes, nil)

		result.Seeds = append(result.Seeds, SeedResult{Seed: s, Score: score, WallTime: time.Duration(meanTime)})
		scores = append(scores, score)
		wallTimesNS = append(wallTimesNS, meanTime)
	}

	if failures.ErrorOrNil() != nil {
		return Result{}, failures
	}

	result.MeanScore = stat.Mean(scores, nil)
	result.MeanWallTime = time.Duration(stat.Mean(wallTimesNS, nil))

	return result, nil
}

// replayScore replays path against root and returns the resulting state's
// evaluated score. It does not verify the path reaches a done state: the
// harness reports whatever score a strategy's returned sequence achieves.
func replayScore(root state.State, path []int) float64 {
	cur := state.NewRoot(root)
	for _, a := range path {
		cur = state.CloneAdvance(cur, a)
	}

	return cur.State.EvaluateScore()
}
