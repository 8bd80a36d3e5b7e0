package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/payoff"
)

var (
	// ErrUnknownScenario indicates a name with no canned scenario.
	ErrUnknownScenario = errors.New("scenario: unknown scenario")

	// ErrNeedRand indicates a nil random source.
	ErrNeedRand = errors.New("scenario: random source is required")

	// ErrNoStrategies indicates an empty strategy list for Random.
	ErrNoStrategies = errors.New("scenario: at least one strategy is required")
)

// Canned scenario names.
const (
	NamePrisonersDilemma = "prisoners-dilemma"
	NameDarkForest       = "dark-forest"
	NamePostScarcity     = "post-scarcity"
)

// MaxRandomPayoff is the exclusive upper bound of Random payoffs.
const MaxRandomPayoff = 10

// dilemmaGrid is shared by the prisoner's dilemma and the dark forest.
func dilemmaGrid() payoff.Grid {
	return payoff.Grid{
		{{3, 3}, {0, 5}},
		{{5, 0}, {1, 1}},
	}
}

var builders = map[string]func(ids.Generator) payoff.Matrix{
	NamePrisonersDilemma: PrisonersDilemma,
	NameDarkForest:       DarkForest,
	NamePostScarcity:     PostScarcity,
}

// PrisonersDilemma returns the classic two-player dilemma.
func PrisonersDilemma(g ids.Generator) payoff.Matrix {
	return mustNew(g, "Prisoner's Dilemma",
		[]string{"Player 1", "Player 2"},
		[]string{"Cooperate", "Defect"},
		dilemmaGrid(),
	)
}

// DarkForest returns the signalling dilemma between two civilizations.
func DarkForest(g ids.Generator) payoff.Matrix {
	return mustNew(g, "Dark Forest Dilemma",
		[]string{"Civilization A", "Civilization B"},
		[]string{"Signal", "Hide"},
		dilemmaGrid(),
		payoff.WithDescription("Nash equilibrium at mutual hiding, explaining Fermi silence"),
	)
}

// PostScarcity returns the three-strategy cooperation game.
func PostScarcity(g ids.Generator) payoff.Matrix {
	return mustNew(g, "Post-Scarcity Cooperation",
		[]string{"Community A", "Community B"},
		[]string{"Share", "Hoard", "Innovate"},
		payoff.Grid{
			{{5, 5}, {2, 3}, {6, 4}},
			{{3, 2}, {1, 1}, {3, 2}},
			{{4, 6}, {2, 3}, {7, 7}},
		},
		payoff.WithDescription("Cooperation and innovation dominate in abundance scenarios"),
	)
}

// Names lists the canned scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName builds the canned scenario called name (case-insensitive).
func ByName(name string, g ids.Generator) (payoff.Matrix, error) {
	build, ok := builders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return payoff.Matrix{}, fmt.Errorf("ByName(%q): %w", name, ErrUnknownScenario)
	}
	return build(g), nil
}

// Random builds a square matrix over strategies, used by both players, with
// one integer payoff in [0, MaxRandomPayoff) per player and cell.
// Errors: ErrNeedRand, ErrNoStrategies, payoff.ErrTooFewPlayers.
func Random(rng *rand.Rand, name string, players, strategies []string, g ids.Generator) (payoff.Matrix, error) {
	if rng == nil {
		return payoff.Matrix{}, ErrNeedRand
	}
	if len(strategies) == 0 {
		return payoff.Matrix{}, ErrNoStrategies
	}

	n := len(strategies)
	grid := make(payoff.Grid, n)
	for i := range grid {
		grid[i] = make([][]float64, n)
		for j := range grid[i] {
			cell := make([]float64, len(players))
			for p := range cell {
				cell[p] = float64(rng.Intn(MaxRandomPayoff))
			}
			grid[i][j] = cell
		}
	}
	return payoff.New(name, players, [][]string{strategies, strategies}, grid, idOption(g))
}

func idOption(g ids.Generator) payoff.Option {
	if g == nil {
		g = ids.Default()
	}
	return payoff.WithIDGenerator(g)
}

// mustNew builds a canned matrix; the literals above are valid by construction.
func mustNew(g ids.Generator, name string, players, strategies []string, grid payoff.Grid, opts ...payoff.Option) payoff.Matrix {
	opts = append([]payoff.Option{idOption(g)}, opts...)
	m, err := payoff.New(name, players, [][]string{strategies, strategies}, grid, opts...)
	if err != nil {
		panic(fmt.Sprintf("scenario: %s: %v", name, err))
	}
	return m
}
