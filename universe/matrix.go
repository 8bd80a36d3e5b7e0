// SPDX-License-Identifier: MIT

package universe

import (
	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/payoff"
)

// collectiveStrategy labels the single column of a universe payoff table.
const collectiveStrategy = "Everyone else"

// PayoffTable returns the n-civilization payoff table of a regime: one row per
// Strategy, one column, and n payoffs per cell.
//
// For n=4 the dark-forest rows are Hide [1 1 1 1], Signal [0 3 2 2] and
// Cooperate [0 0 4 4]; wider tables repeat the last entry. Post-scarcity rows
// are constant at 2, 3 and 5.
func PayoffTable(n int, postScarcity bool) payoff.Grid {
	g := make(payoff.Grid, len(Strategies))
	for _, s := range Strategies {
		cell := make([]float64, n)
		for p := range cell {
			cell[p] = tableEntry(s, p, postScarcity)
		}
		g[s] = [][]float64{cell}
	}
	return g
}

func tableEntry(s Strategy, p int, postScarcity bool) float64 {
	if postScarcity {
		return postScarcityFitness[s]
	}
	switch s {
	case Signal:
		switch p {
		case 0:
			return 0
		case 1:
			return 3
		}
		return 2
	case Cooperate:
		if p < 2 {
			return 0
		}
		return 4
	}
	return 1
}

// Matrix returns u's current payoff table as a payoff.Matrix whose players are
// u's civilizations. A nil generator selects ids.Default().
func (u Universe) Matrix(g ids.Generator) (payoff.Matrix, error) {
	if g == nil {
		g = ids.Default()
	}
	players := make([]string, len(u.Civilizations))
	for i, c := range u.Civilizations {
		players[i] = c.Name
	}
	rows := make([]string, len(Strategies))
	for i, s := range Strategies {
		rows[i] = s.String()
	}
	desc := "Dark forest regime"
	if u.PostScarcity {
		desc = "Post-scarcity regime"
	}
	return payoff.New(u.Name, players,
		[][]string{rows, {collectiveStrategy}},
		PayoffTable(len(players), u.PostScarcity),
		payoff.WithIDGenerator(g),
		payoff.WithDescription(desc),
	)
}
