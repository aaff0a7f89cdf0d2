// Package bench implements the benchmark harness and divergence finder
// (§4.7): running a named strategy across a sweep of seeds and reporting
// mean score / mean wall time, and locating the first seed where two
// strategies disagree.
//
// This package is new code with no teacher analog in the core search
// engine itself; it follows the aggregation style of the teacher's own
// benchmark suite (pre-build inputs, measure only the algorithmic core,
// deterministic seeds) promoted from test-only tooling into a reusable
// library component, since §2 scores the harness as a first-class part
// of the system rather than ancillary test plumbing.
package bench
