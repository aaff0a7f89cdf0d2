// File: divergence.go
// Role: the divergence finder of §4.7 — locates the first seed where two
// strategies' final scores disagree.
package bench

import "github.com/pkg/errors"

// FindDivergence plays a and b on seeds s = 0, 1, ..., seedBound-1 and
// returns the smallest seed where their final evaluated scores differ, or
// -1 if none differ. A strategy failure on any seed aborts the search and
// returns that error, wrapped with which strategy and seed produced it.
func FindDivergence(factory Factory, a, b Strategy, seedBound int) (int64, error) {
	if seedBound < 1 {
		panic("bench: seedBound must be >= 1")
	}

	for s := int64(0); s < int64(seedBound); s++ {
		pathA, err := a.Run(factory(s))
		if err != nil {
			return -1, errors.Wrapf(err, "strategy %q failed at seed %d", a.Name, s)
		}
		scoreA := replayScore(factory(s), pathA)

		pathB, err := b.Run(factory(s))
		if err != nil {
			return -1, errors.Wrapf(err, "strategy %q failed at seed %d", b.Name, s)
		}
		scoreB := replayScore(factory(s), pathB)

		if scoreA != scoreB {
			return s, nil
		}
	}

	return -1, nil
}
