// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paygrid/lattice"
	"github.com/katalvlaran/paygrid/payoff"
)

const (
	suffixEvolved = "Evolved"
	descEvolved   = "Evolutionary transformation after %d iterations"
)

// Evolutionary relaxes every payoff toward its 4-neighbourhood mean.
// MAIN DESCRIPTION:
//   - Treat the R×C grid as a lattice; run `iterations` passes over it.
//   - On each visit, average the flattened payoff vectors of all existing
//     neighbours, then move every payoff of the visited cell RelaxationRate of
//     the way toward that mean, rounded to one decimal.
//
// Implementation:
//   - Stage 1: validate src and the iteration count.
//   - Stage 2: deep-copy the grid; precompute neighbour lists once.
//   - Stage 3: run the passes in place on the copy (see relax).
//   - Stage 4: wrap the grid in a new matrix named "<name> (Evolved)".
//
// Behavior highlights:
//   - Sequential: a neighbour already visited in the current pass contributes
//     its updated value.
//   - iterations == 0 is the identity on payoffs (a deep copy).
//   - A cell without neighbours (1×1 grid) keeps its payoffs.
//
// Errors:
//   - payoff.ErrMalformedMatrix variants, ErrNegativeIterations, ErrIterationLimit.
//
// Complexity:
//   - Time O(iterations·R·C·P), Space O(R·C·P).
func (e *Engine) Evolutionary(src payoff.Matrix, iterations int) (payoff.Matrix, error) {
	if err := src.Validate(); err != nil {
		e.logRejected(KindEvolutionary, src, err)
		return payoff.Matrix{}, transformErrorf("Evolutionary", err)
	}
	if iterations < 0 {
		return payoff.Matrix{}, transformErrorf("Evolutionary", ErrNegativeIterations)
	}
	if e.maxIterations > 0 && iterations > e.maxIterations {
		return payoff.Matrix{}, fmt.Errorf("Evolutionary(%d > %d): %w", iterations, e.maxIterations, ErrIterationLimit)
	}

	lat, err := lattice.New(src.Rows(), src.Cols())
	if err != nil {
		return payoff.Matrix{}, transformErrorf("Evolutionary", err)
	}
	g := src.Payoffs.Clone()
	if err = relax(g, lat, e.order, iterations); err != nil {
		return payoff.Matrix{}, transformErrorf("Evolutionary", err)
	}

	out := e.derive(src, suffixEvolved, fmt.Sprintf(descEvolved, iterations), g)
	e.logApplied(KindEvolutionary, src, out)
	return out, nil
}

// relax runs the sequential relaxation passes on g in place.
// Neighbour payoffs are summed in lattice offset order, player entries in index
// order, which pins the floating-point result.
func relax(g payoff.Grid, lat *lattice.Lattice, order lattice.Order, iterations int) error {
	if iterations == 0 {
		return nil
	}
	neighbors := make([][]int, lat.Size())
	for idx := range neighbors {
		r, c := lat.Coordinate(idx)
		neighbors[idx] = lat.Neighbors(r, c)
	}

	visit := func(r, c int) {
		nbrs := neighbors[lat.Index(r, c)]
		if len(nbrs) == 0 {
			return
		}
		var sum float64
		var n int
		for _, idx := range nbrs {
			nr, nc := lat.Coordinate(idx)
			for _, v := range g[nr][nc] {
				sum += v
				n++
			}
		}
		mean := sum / float64(n)
		cell := g[r][c]
		for p, v := range cell {
			// The explicit conversion forbids a fused multiply-add.
			cell[p] = roundTenth(v + float64((mean-v)*RelaxationRate))
		}
	}

	for it := 0; it < iterations; it++ {
		if err := lat.Visit(order, visit); err != nil {
			return err
		}
	}
	return nil
}

// roundTenth rounds x to one decimal place, halves toward +Inf.
func roundTenth(x float64) float64 {
	return roundHalfUp(x*10) / 10
}

// roundHalfUp rounds to the nearest integer, resolving .5 toward +Inf and
// keeping the sign of a zero result.
func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	if r == 0 {
		return math.Copysign(0, x)
	}
	return r
}
