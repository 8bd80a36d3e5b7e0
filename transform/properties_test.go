// SPDX-License-Identifier: MIT

package transform_test

import (
	"fmt"
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/payoff"
	"github.com/katalvlaran/paygrid/transform"
)

// matrixGen draws valid two-player matrices with small integer payoffs.
func matrixGen() *rapid.Generator[payoff.Matrix] {
	return rapid.Custom(func(t *rapid.T) payoff.Matrix {
		rows := rapid.IntRange(1, 4).Draw(t, "rows")
		cols := rapid.IntRange(1, 4).Draw(t, "cols")
		strategies := [][]string{make([]string, rows), make([]string, cols)}
		for i := range strategies[0] {
			strategies[0][i] = fmt.Sprintf("r%d", i)
		}
		for j := range strategies[1] {
			strategies[1][j] = fmt.Sprintf("c%d", j)
		}
		g := make(payoff.Grid, rows)
		for i := range g {
			g[i] = make([][]float64, cols)
			for j := range g[i] {
				g[i][j] = []float64{
					float64(rapid.IntRange(0, 9).Draw(t, "p0")),
					float64(rapid.IntRange(0, 9).Draw(t, "p1")),
				}
			}
		}
		return payoff.Matrix{
			ID:         "src",
			Name:       "generated",
			Players:    []string{"A", "B"},
			Strategies: strategies,
			Payoffs:    g,
		}
	})
}

func bounds(g payoff.Grid) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range g {
		for _, cell := range row {
			for _, v := range cell {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	return lo, hi
}

func TestProperty_EvolutionaryStaysInRangeOnTenths(t *testing.T) {
	e := transform.NewEngine(transform.WithIDGenerator(ids.NewSequence("p")))

	rapid.Check(t, func(t *rapid.T) {
		src := matrixGen().Draw(t, "matrix")
		iterations := rapid.IntRange(0, 30).Draw(t, "iterations")

		out, err := e.Evolutionary(src, iterations)
		if err != nil {
			t.Fatalf("Evolutionary: %v", err)
		}
		lo, hi := bounds(src.Payoffs)
		for _, row := range out.Payoffs {
			for _, cell := range row {
				for _, v := range cell {
					if v < lo-1e-9 || v > hi+1e-9 {
						t.Fatalf("payoff %v escaped source range [%v,%v]", v, lo, hi)
					}
					if d := math.Abs(v*10 - math.Round(v*10)); d > 1e-6 {
						t.Fatalf("payoff %v is not rounded to one decimal", v)
					}
				}
			}
		}

		again, err := e.Evolutionary(src, iterations)
		if err != nil {
			t.Fatalf("Evolutionary: %v", err)
		}
		if !again.Payoffs.Equal(out.Payoffs) {
			t.Fatalf("relaxation is not deterministic")
		}
	})
}

func TestProperty_NashAppliesOneFactorPerCell(t *testing.T) {
	e := transform.NewEngine(transform.WithIDGenerator(ids.NewSequence("p")))

	rapid.Check(t, func(t *rapid.T) {
		src := matrixGen().Draw(t, "matrix")
		out, err := e.NashEquilibrium(src)
		if err != nil {
			t.Fatalf("NashEquilibrium: %v", err)
		}
		rowBest, colBest := transform.BestResponses(src.Payoffs)
		boosted := 0
		for i, row := range src.Payoffs {
			for j, cell := range row {
				factor := transform.EquilibriumDamp
				if transform.SupportsEquilibrium(rowBest, colBest, i, j) {
					factor = transform.EquilibriumBoost
					boosted++
				}
				for p, v := range cell {
					if out.Payoffs[i][j][p] != v*factor {
						t.Fatalf("cell (%d,%d)[%d] = %v, want %v", i, j, p, out.Payoffs[i][j][p], v*factor)
					}
				}
			}
		}
		// The best response to column 0 always supports some row and column.
		if boosted == 0 {
			t.Fatalf("no cell boosted")
		}
	})
}

func TestProperty_ParetoFrontierIsUndominated(t *testing.T) {
	e := transform.NewEngine(transform.WithIDGenerator(ids.NewSequence("p")))

	rapid.Check(t, func(t *rapid.T) {
		src := matrixGen().Draw(t, "matrix")
		frontier := transform.ParetoFrontier(src.Payoffs)
		if len(frontier) == 0 {
			t.Fatalf("empty frontier")
		}
		onFrontier := make(map[transform.Cell]bool, len(frontier))
		for _, c := range frontier {
			onFrontier[c] = true
			for i, row := range src.Payoffs {
				for j, other := range row {
					if transform.Dominates(other, src.Payoffs[c.Row][c.Col]) {
						t.Fatalf("frontier cell %v dominated by (%d,%d)", c, i, j)
					}
				}
			}
		}

		out, err := e.ParetoOptimal(src)
		if err != nil {
			t.Fatalf("ParetoOptimal: %v", err)
		}
		for i, row := range src.Payoffs {
			for j, cell := range row {
				factor := 1.0
				if onFrontier[transform.Cell{Row: i, Col: j}] {
					factor = transform.ParetoBoost
				}
				for p, v := range cell {
					if out.Payoffs[i][j][p] != v*factor {
						t.Fatalf("cell (%d,%d)[%d] = %v, want %v", i, j, p, out.Payoffs[i][j][p], v*factor)
					}
				}
			}
		}
	})
}

func TestProperty_MultiUniverseClamps(t *testing.T) {
	e := transform.NewEngine(transform.WithIDGenerator(ids.NewSequence("p")))

	rapid.Check(t, func(t *rapid.T) {
		src := matrixGen().Draw(t, "matrix")
		pair, err := e.MultiUniverseBranch(src)
		if err != nil {
			t.Fatalf("MultiUniverseBranch: %v", err)
		}
		if pair[0].ID == pair[1].ID {
			t.Fatalf("siblings share id %q", pair[0].ID)
		}
		for i, row := range src.Payoffs {
			for j, cell := range row {
				for p, v := range cell {
					opt, pes := pair[0].Payoffs[i][j][p], pair[1].Payoffs[i][j][p]
					if opt > transform.PayoffCeiling || opt < v {
						t.Fatalf("optimistic %v from %v", opt, v)
					}
					if pes < transform.PayoffFloor || pes > v {
						t.Fatalf("pessimistic %v from %v", pes, v)
					}
				}
			}
		}
	})
}
