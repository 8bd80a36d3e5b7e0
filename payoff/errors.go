// SPDX-License-Identifier: MIT

package payoff

import (
	"errors"
	"fmt"
)

// ErrMalformedMatrix marks any violation of the Matrix structural invariants.
// Callers branch on it with errors.Is; the specific sentinels below all wrap it.
var ErrMalformedMatrix = errors.New("payoff: malformed matrix")

var (
	// ErrTooFewPlayers indicates fewer than two player names.
	ErrTooFewPlayers = fmt.Errorf("%w: at least two players are required", ErrMalformedMatrix)

	// ErrEmptyGrid indicates a payoff grid with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedMatrix)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedMatrix)

	// ErrStrategyShape indicates strategy lists that do not match the grid dimensions.
	ErrStrategyShape = fmt.Errorf("%w: strategies do not match grid dimensions", ErrMalformedMatrix)

	// ErrCellLength indicates a payoff vector whose length differs from len(Players).
	ErrCellLength = fmt.Errorf("%w: payoff vector length must equal player count", ErrMalformedMatrix)

	// ErrNonFinite indicates a NaN or ±Inf payoff.
	ErrNonFinite = fmt.Errorf("%w: payoff is NaN or Inf", ErrMalformedMatrix)
)

// ErrUnknownFormat indicates an unsupported encoding format.
var ErrUnknownFormat = errors.New("payoff: unknown format")

// cellErrorf attaches method context and cell coordinates to a sentinel.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf attaches method context to a sentinel.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}
