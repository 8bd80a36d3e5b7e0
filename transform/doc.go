// SPDX-License-Identifier: MIT

// Package transform derives new payoff matrices from existing ones.
//
// Four transforms are provided, each pure with respect to its input:
//
//	Evolutionary         sequential 4-neighbour relaxation toward the local mean
//	NashEquilibrium      1.5× on equilibrium-supporting cells, 0.5× elsewhere
//	ParetoOptimal        1.3× on Pareto-optimal cells, others unchanged
//	MultiUniverseBranch  optimistic (1.5×, capped at 10) and pessimistic (0.7×, floored at 0) siblings
//
// Every transform validates the source first (payoff.ErrMalformedMatrix on
// failure), deep-copies the payoff grid, works on the copy, and returns new
// matrices with fresh ids. Provenance (ConnectedTo) is copied from the source
// unchanged; linking a result to its source is the caller's job (see package
// workbench).
//
// Determinism:
//
//   - Relaxation visits cells in lattice.DefaultOrder (row-major) and reads
//     neighbours as they stand at the moment of the visit, so earlier cells of
//     the same pass contribute their updated values (Gauss-Seidel).
//   - Best-response ties resolve to the lowest index (strict > comparison).
//   - Same input and parameters ⇒ bit-identical payoffs; only ids differ.
//
// Two-player convention:
//
//	NashEquilibrium and ParetoOptimal read payoff[0] as the row player's and
//	payoff[1] as the column player's payoff. Extra entries of a cell (more than
//	two players) are scaled together with their cell but never inspected.
//
// Concurrency:
//
//	An *Engine holds no mutable state besides its id generator, which must be
//	goroutine-safe. Concurrent transforms of the same source never interfere.
//
// Cost control:
//
//	There is no cancellation; bound relaxation cost with WithMaxIterations or by
//	capping the iteration count before the call.
package transform
