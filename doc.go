// Package beamsearch is a reusable game-tree search engine for Go.
//
// 🚀 What is beamsearch?
//
//	A small, dependency-light library that takes a user-defined game
//	state — anything that can advance, report legal actions, and score
//	itself — and searches it for a good action sequence:
//
//	  • state/  — the State contract + tree-node bookkeeping (clone,
//	    parent back-link, cached score, path extraction)
//	  • random/ — a deterministic single-path random playout
//	  • beam/   — beam search: sequential, partial-selection, and
//	    parallel drivers over the same pruning semantics
//	  • bench/  — strategy comparison and divergence detection
//
// ✨ Why choose beamsearch?
//
//   - Bring your own state — no base class, just the State interface
//   - Deterministic — fixed seeds and stable tie-breaks reproduce runs
//   - Heuristic, not exhaustive — beam width trades search breadth for
//     speed; there is no guarantee of optimality
//
// beamsearch never touches storage, the network, or a specific game's
// scoring rules: the host supplies all of that through the State
// contract. See each subpackage's doc.go for details.
//
//	go get github.com/katalvlaran/beamsearch/beam
package beamsearch
