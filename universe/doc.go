// SPDX-License-Identifier: MIT

// Package universe simulates civilizations choosing between hiding, signalling
// and cooperating across several independent universes.
//
// Model:
//
//   - Every universe starts in the dark-forest state with all civilizations
//     hiding at fitness 1.
//   - Generation g (1..Generations) first flips a universe to post-scarcity when
//     g >= PostScarcityGen, then lets each civilization redraw its strategy with
//     fitness-proportional selection. The fitness table used for the draw is the
//     one of the state the universe was in before the flip, so the new regime
//     shows up one generation later.
//   - Dark-forest fitness: Hide 3, Signal 1, Cooperate 0.
//     Post-scarcity fitness: Cooperate 5, Signal 3, Hide 2.
//
// Each State reports the cooperation level (percent of all civilizations
// cooperating) and the dominant strategy (ties resolve Hide, Signal, Cooperate).
//
// Determinism:
//
//	Seed==0 selects a fixed default seed. Every universe draws from its own
//	stream derived from the seed and the universe index, so universes evolve
//	concurrently and the result is still reproducible.
//
// Universe.Matrix exposes a universe's payoff table as a payoff.Matrix, which
// lets simulation output flow into the transform engine.
package universe
