// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/paygrid/payoff"
)

const (
	suffixOptimistic  = "Optimistic Universe"
	suffixPessimistic = "Pessimistic Universe"
	descOptimistic    = "Optimistic universe branch - cooperation enhanced"
	descPessimistic   = "Pessimistic universe branch - conflict enhanced"
)

// MultiUniverseBranch returns two sibling matrices: [0] optimistic (every
// payoff ×OptimisticScale, capped at PayoffCeiling) and [1] pessimistic (every
// payoff ×PessimisticScale, floored at PayoffFloor). The clamps are one-sided.
// Neither sibling links itself to src; the optimistic id is drawn first.
//
// Errors: payoff.ErrMalformedMatrix variants.
// Complexity: O(R·C·P).
func (e *Engine) MultiUniverseBranch(src payoff.Matrix) ([2]payoff.Matrix, error) {
	if err := src.Validate(); err != nil {
		e.logRejected(KindMultiUniverse, src, err)
		return [2]payoff.Matrix{}, transformErrorf("MultiUniverseBranch", err)
	}

	optimistic := mapPayoffs(src.Payoffs, func(p float64) float64 {
		return math.Min(PayoffCeiling, p*OptimisticScale)
	})
	pessimistic := mapPayoffs(src.Payoffs, func(p float64) float64 {
		return math.Max(PayoffFloor, p*PessimisticScale)
	})

	out := [2]payoff.Matrix{
		e.derive(src, suffixOptimistic, descOptimistic, optimistic),
		e.derive(src, suffixPessimistic, descPessimistic, pessimistic),
	}
	e.logApplied(KindMultiUniverse, src, out[:]...)
	return out, nil
}

// mapPayoffs returns a new grid with fn applied to every payoff of g.
func mapPayoffs(g payoff.Grid, fn func(float64) float64) payoff.Grid {
	out := g.Clone()
	for _, row := range out {
		for _, cell := range row {
			for p, v := range cell {
				cell[p] = fn(v)
			}
		}
	}
	return out
}
