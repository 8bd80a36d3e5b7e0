// SPDX-License-Identifier: MIT

package universe

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Simulator runs a configured simulation. It holds no mutable state, so one
// Simulator may serve concurrent Run calls.
type Simulator struct {
	cfg Config
	log *zap.Logger
}

// Option customizes a Simulator.
type Option func(*Simulator)

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("universe: WithLogger(nil)")
	}
	return func(s *Simulator) { s.log = l }
}

// New validates cfg and returns a Simulator.
func New(cfg Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	s := &Simulator{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the simulation parameters.
func (s *Simulator) Config() Config { return s.cfg }

// Run returns Generations+1 states, generation 0 first. Universes evolve
// concurrently on independent random streams; cancellation is checked between
// generations and returns ctx.Err().
func (s *Simulator) Run(ctx context.Context) ([]State, error) {
	// histories[u][g] is universe u after generation g.
	histories := make([][]Universe, s.cfg.Universes)

	eg, ctx := errgroup.WithContext(ctx)
	for u := range histories {
		eg.Go(func() error {
			h, err := s.evolve(ctx, u)
			histories[u] = h
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	states := make([]State, s.cfg.Generations+1)
	for g := range states {
		us := make([]Universe, len(histories))
		for u, h := range histories {
			us[u] = h[g]
		}
		states[g] = summarize(g, us)
		s.log.Debug("generation simulated",
			zap.Int("generation", g),
			zap.Float64("cooperation", states[g].CooperationLevel),
			zap.Stringer("dominant", states[g].Dominant),
		)
	}
	return states, nil
}

// evolve produces the full history of universe u.
func (s *Simulator) evolve(ctx context.Context, u int) ([]Universe, error) {
	rng := streamRNG(s.cfg.Seed, u)
	history := make([]Universe, 0, s.cfg.Generations+1)
	history = append(history, initial(u, s.cfg.Civilizations))
	for g := 1; g <= s.cfg.Generations; g++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		history = append(history, step(history[g-1], g, s.cfg.PostScarcityGen, rng))
	}
	return history, nil
}

func initial(u, civs int) Universe {
	out := Universe{
		ID:            fmt.Sprintf("universe-%d", u),
		Name:          fmt.Sprintf("Universe %d", u+1),
		Civilizations: make([]Civilization, civs),
	}
	for c := range out.Civilizations {
		out.Civilizations[c] = Civilization{
			ID:       fmt.Sprintf("civ-%d", c),
			Name:     "Civilization " + string(rune('A'+c)),
			Strategy: Hide,
			Fitness:  1,
		}
	}
	return out
}

// step advances prev to generation g. The draw uses prev's regime.
func step(prev Universe, g, postScarcityGen int, rng *rand.Rand) Universe {
	next := prev
	next.PostScarcity = prev.PostScarcity || g >= postScarcityGen
	next.Civilizations = make([]Civilization, len(prev.Civilizations))
	for i, civ := range prev.Civilizations {
		if s, ok := draw(rng, prev.PostScarcity); ok {
			civ.Strategy = s
			civ.Fitness = Fitness(s, prev.PostScarcity)
		}
		next.Civilizations[i] = civ
	}
	return next
}

// draw picks a strategy with probability proportional to its fitness.
// ok is false only if no strategy carries weight.
func draw(rng *rand.Rand, postScarcity bool) (s Strategy, ok bool) {
	var total float64
	for _, st := range Strategies {
		total += Fitness(st, postScarcity)
	}
	x := rng.Float64() * total
	var cumulative float64
	for _, st := range Strategies {
		cumulative += Fitness(st, postScarcity)
		if x < cumulative {
			return st, true
		}
	}
	return Hide, false
}

func summarize(g int, us []Universe) State {
	var counts [len(Strategies)]int
	total := 0
	for _, u := range us {
		for _, c := range u.Civilizations {
			counts[c.Strategy]++
			total++
		}
	}
	dominant := Hide
	for _, st := range Strategies {
		if counts[st] > counts[dominant] {
			dominant = st
		}
	}
	return State{
		Generation:       g,
		Universes:        us,
		CooperationLevel: float64(counts[Cooperate]) / float64(total) * 100,
		Dominant:         dominant,
	}
}

// CooperationLevel returns the percent of u's civilizations cooperating.
func (u Universe) CooperationLevel() float64 {
	n := 0
	for _, c := range u.Civilizations {
		if c.Strategy == Cooperate {
			n++
		}
	}
	return float64(n) / float64(len(u.Civilizations)) * 100
}
