// SPDX-License-Identifier: MIT

package universe

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewCivilizations indicates fewer than two civilizations per universe.
	ErrTooFewCivilizations = errors.New("universe: at least two civilizations are required")

	// ErrTooManyCivilizations indicates more civilizations than single-letter names.
	ErrTooManyCivilizations = errors.New("universe: at most 26 civilizations are supported")

	// ErrNoUniverses indicates a non-positive universe count.
	ErrNoUniverses = errors.New("universe: at least one universe is required")

	// ErrNegativeGenerations indicates a negative generation or switch-over count.
	ErrNegativeGenerations = errors.New("universe: generation counts must be >= 0")
)

// Strategy is a civilization's posture toward the rest of the universe.
type Strategy int

const (
	Hide Strategy = iota
	Signal
	Cooperate
)

// Strategies lists every strategy in tie-break order.
var Strategies = [...]Strategy{Hide, Signal, Cooperate}

func (s Strategy) String() string {
	switch s {
	case Hide:
		return "Hide"
	case Signal:
		return "Signal"
	case Cooperate:
		return "Cooperate"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// MarshalText encodes s by name.
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Fitness tables indexed by Strategy.
var (
	darkForestFitness   = [...]float64{Hide: 3, Signal: 1, Cooperate: 0}
	postScarcityFitness = [...]float64{Hide: 2, Signal: 3, Cooperate: 5}
)

// Fitness returns the selection weight of s in the given regime.
func Fitness(s Strategy, postScarcity bool) float64 {
	if postScarcity {
		return postScarcityFitness[s]
	}
	return darkForestFitness[s]
}

// Civilization is one player of a universe.
type Civilization struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Fitness  float64  `json:"fitness" yaml:"fitness"`
}

// Universe is one independent population.
type Universe struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	Civilizations []Civilization `json:"civilizations" yaml:"civilizations"`
	PostScarcity  bool           `json:"postScarcity" yaml:"postScarcity"`
}

// State is the snapshot of all universes after one generation.
type State struct {
	Generation       int        `json:"generation" yaml:"generation"`
	Universes        []Universe `json:"universes" yaml:"universes"`
	CooperationLevel float64    `json:"cooperationLevel" yaml:"cooperationLevel"`
	Dominant         Strategy   `json:"dominantStrategy" yaml:"dominantStrategy"`
}

// Config parameterizes a simulation.
type Config struct {
	Civilizations   int   `yaml:"civilizations" env:"CIVILIZATIONS"`
	Universes       int   `yaml:"universes" env:"UNIVERSES"`
	PostScarcityGen int   `yaml:"postScarcityGen" env:"POST_SCARCITY_GEN"`
	Generations     int   `yaml:"generations" env:"GENERATIONS"`
	Seed            int64 `yaml:"seed" env:"SEED"`
}

// DefaultConfig returns 4 civilizations in 3 universes over 10 generations,
// switching to post-scarcity at generation 5.
func DefaultConfig() Config {
	return Config{
		Civilizations:   4,
		Universes:       3,
		PostScarcityGen: 5,
		Generations:     10,
	}
}

// Validate checks the counts.
func (c Config) Validate() error {
	switch {
	case c.Civilizations < 2:
		return ErrTooFewCivilizations
	case c.Civilizations > 26:
		return ErrTooManyCivilizations
	case c.Universes < 1:
		return ErrNoUniverses
	case c.Generations < 0 || c.PostScarcityGen < 0:
		return ErrNegativeGenerations
	}
	return nil
}
