// Package scenario builds ready-made payoff matrices.
//
// Three canned scenarios are available by name:
//
//	prisoners-dilemma  Player 1 / Player 2, Cooperate / Defect
//	dark-forest        Civilization A / B, Signal / Hide
//	post-scarcity      Community A / B, Share / Hoard / Innovate
//
// Random builds a square matrix with integer payoffs in [0,9] from a caller
// supplied *rand.Rand, so a fixed seed reproduces the same grid.
//
// Every builder takes an ids.Generator; nil selects ids.Default().
package scenario
