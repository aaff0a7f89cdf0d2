// Package random provides the engine's deterministic pseudorandom source
// and the single-path random playout walker (spec §4.3).
//
// The generator is deterministic and seeded explicitly: seed 0 is the
// conventional default (matching the source this library was distilled
// from, which seeds its action-selection generator with the literal
// constant 0). DeriveGenerator produces independent substreams from a
// parent generator, for callers that need more than one stream (a
// sequential caller never does; a host running many independent
// playouts concurrently does, one generator per goroutine).
//
// A *rand.Rand is not goroutine-safe; do not share one generator across
// concurrent callers. Acquire one per call or per worker via NewGenerator
// / DeriveGenerator.
package random
