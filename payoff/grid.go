// SPDX-License-Identifier: MIT

package payoff

import "math"

// Grid holds payoff vectors indexed [row][col][player].
type Grid [][][]float64

// Rows returns the number of rows (row-player strategies).
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, read from the first row.
// It returns 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of g. The copy shares no backing arrays with g.
// Complexity: O(R·C·P) time and memory.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([][]float64, len(row))
		for j, cell := range row {
			out[i][j] = make([]float64, len(cell))
			copy(out[i][j], cell)
		}
	}
	return out
}

// Equal reports whether g and o have the same shape and bit-identical values.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(o[i]) {
			return false
		}
		for j := range g[i] {
			if len(g[i][j]) != len(o[i][j]) {
				return false
			}
			for p := range g[i][j] {
				if g[i][j][p] != o[i][j][p] {
					return false
				}
			}
		}
	}
	return true
}

// Validate checks the grid shape against the expected payoff vector length.
// Order: empty → rectangular → cell length → finite values.
func (g Grid) Validate(players int) error {
	if err := g.validateShape(); err != nil {
		return err
	}
	return g.validateCells(players)
}

// validateShape rejects empty and ragged grids.
func (g Grid) validateShape() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return matrixErrorf("Validate", ErrEmptyGrid)
	}
	cols := len(g[0])
	for i, row := range g {
		if len(row) != cols {
			return cellErrorf("Validate", i, len(row), ErrNonRectangular)
		}
	}
	return nil
}

// validateCells checks every payoff vector length and value.
func (g Grid) validateCells(players int) error {
	for i, row := range g {
		for j, cell := range row {
			if len(cell) != players {
				return cellErrorf("Validate", i, j, ErrCellLength)
			}
			for _, v := range cell {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return cellErrorf("Validate", i, j, ErrNonFinite)
				}
			}
		}
	}
	return nil
}
