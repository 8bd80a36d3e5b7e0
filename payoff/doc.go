// Package payoff defines the payoff matrix record shared by every paygrid package.
//
// What:
//
//   - Matrix is a named two-dimension game: Players, the row and column
//     Strategies, and an R×C Grid of payoff vectors (one entry per player).
//   - ConnectedTo records provenance: the ids of the matrices a value was derived from.
//   - New and Validate enforce the structural invariants; Decode/Encode move
//     matrices through YAML or JSON.
//
// Invariants:
//
//   - len(Players) ≥ 2.
//   - R ≥ 1, C ≥ 1, every row has exactly C cells.
//   - len(Strategies) == 2, len(Strategies[0]) == R, len(Strategies[1]) == C.
//   - every cell has exactly len(Players) finite entries.
//
// A Matrix is immutable by contract: code that derives a new matrix must
// Clone the source (or its Grid) and edit the copy.
//
// Errors:
//
//   - ErrMalformedMatrix is the umbrella sentinel; every structural failure
//     (ErrTooFewPlayers, ErrEmptyGrid, ErrNonRectangular, ErrStrategyShape,
//     ErrCellLength, ErrNonFinite) matches it through errors.Is.
package payoff
