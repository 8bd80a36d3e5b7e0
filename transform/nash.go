// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/paygrid/payoff"
)

const (
	suffixNash = "Nash Equilibrium"
	descNash   = "Nash equilibrium strategies highlighted"
)

// BestResponses returns, for every column, the row maximizing the row player's
// payoff (rowBest, len C) and, for every row, the column maximizing the column
// player's payoff (colBest, len R). Ties keep the lowest index.
// The grid is assumed valid with at least two entries per cell.
// Complexity: O(R·C).
func BestResponses(g payoff.Grid) (rowBest, colBest []int) {
	rows, cols := g.Rows(), g.Cols()

	rowBest = make([]int, cols)
	for c := 0; c < cols; c++ {
		best, top := 0, math.Inf(-1)
		for r := 0; r < rows; r++ {
			if g[r][c][0] > top {
				top, best = g[r][c][0], r
			}
		}
		rowBest[c] = best
	}

	colBest = make([]int, rows)
	for r := 0; r < rows; r++ {
		best, top := 0, math.Inf(-1)
		for c := 0; c < cols; c++ {
			if g[r][c][1] > top {
				top, best = g[r][c][1], c
			}
		}
		colBest[r] = best
	}
	return rowBest, colBest
}

// SupportsEquilibrium reports whether row i appears anywhere in rowBest and
// column j appears anywhere in colBest. This is a membership test over the
// whole vectors, not a check that (i,j) is a mutual best-response pair.
func SupportsEquilibrium(rowBest, colBest []int, i, j int) bool {
	return contains(rowBest, i) && contains(colBest, j)
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// NashEquilibrium scales equilibrium-supporting cells by EquilibriumBoost and
// every other cell by EquilibriumDamp, using the membership test of
// SupportsEquilibrium. Each cell receives exactly one of the two factors.
//
// Errors: payoff.ErrMalformedMatrix variants.
// Complexity: O(R·C·P).
func (e *Engine) NashEquilibrium(src payoff.Matrix) (payoff.Matrix, error) {
	if err := src.Validate(); err != nil {
		e.logRejected(KindNash, src, err)
		return payoff.Matrix{}, transformErrorf("NashEquilibrium", err)
	}

	rowBest, colBest := BestResponses(src.Payoffs)
	rowSupported := indexSet(rowBest, src.Rows())
	colSupported := indexSet(colBest, src.Cols())

	g := src.Payoffs.Clone()
	for i, row := range g {
		for j, cell := range row {
			factor := EquilibriumDamp
			if rowSupported[i] && colSupported[j] {
				factor = EquilibriumBoost
			}
			scale(cell, factor)
		}
	}

	out := e.derive(src, suffixNash, descNash, g)
	e.logApplied(KindNash, src, out)
	return out, nil
}

// indexSet marks every index present in xs within [0,n).
func indexSet(xs []int, n int) []bool {
	set := make([]bool, n)
	for _, x := range xs {
		set[x] = true
	}
	return set
}

func scale(cell []float64, factor float64) {
	for p := range cell {
		cell[p] *= factor
	}
}
