// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/paygrid/payoff"
)

const (
	suffixPareto = "Pareto Optimal"
	descPareto   = "Pareto optimal outcomes emphasized"
)

// Cell addresses one outcome of a payoff grid.
type Cell struct {
	Row, Col int
}

// Dominates reports whether outcome a Pareto-dominates b under the two-player
// convention: a is at least as good for both players and strictly better for one.
func Dominates(a, b []float64) bool {
	return a[0] >= b[0] && a[1] >= b[1] && (a[0] > b[0] || a[1] > b[1])
}

// ParetoFrontier returns the Pareto-optimal cells of g in row-major order.
// A cell is optimal when no other cell of the grid dominates it. The result is
// never empty for a non-empty grid: dominance is a strict partial order on a
// finite set, so maximal elements exist.
// Complexity: O((R·C)²).
func ParetoFrontier(g payoff.Grid) []Cell {
	var frontier []Cell
	for i, row := range g {
		for j, cell := range row {
			if !dominated(g, i, j, cell) {
				frontier = append(frontier, Cell{Row: i, Col: j})
			}
		}
	}
	return frontier
}

func dominated(g payoff.Grid, i, j int, cell []float64) bool {
	for k, row := range g {
		for l, other := range row {
			if k == i && l == j {
				continue
			}
			if Dominates(other, cell) {
				return true
			}
		}
	}
	return false
}

// ParetoOptimal scales every Pareto-optimal cell by ParetoBoost and leaves the
// rest unchanged.
//
// Errors: payoff.ErrMalformedMatrix variants.
// Complexity: O((R·C)² + R·C·P).
func (e *Engine) ParetoOptimal(src payoff.Matrix) (payoff.Matrix, error) {
	if err := src.Validate(); err != nil {
		e.logRejected(KindPareto, src, err)
		return payoff.Matrix{}, transformErrorf("ParetoOptimal", err)
	}

	g := src.Payoffs.Clone()
	for _, c := range ParetoFrontier(src.Payoffs) {
		scale(g[c.Row][c.Col], ParetoBoost)
	}

	out := e.derive(src, suffixPareto, descPareto, g)
	e.logApplied(KindPareto, src, out)
	return out, nil
}
