// SPDX-License-Identifier: MIT

package payoff

import (
	"github.com/katalvlaran/paygrid/ids"
)

// Matrix is a two-player-shaped payoff matrix with display metadata and provenance.
// Fields are exported for encoding; derived values must be built from a Clone.
type Matrix struct {
	ID           string     `yaml:"id" json:"id"`
	Name         string     `yaml:"name" json:"name"`
	Description  string     `yaml:"description,omitempty" json:"description,omitempty"`
	SourcePrompt string     `yaml:"sourcePrompt,omitempty" json:"sourcePrompt,omitempty"`
	Players      []string   `yaml:"players" json:"players"`
	Strategies   [][]string `yaml:"strategies" json:"strategies"`
	Payoffs      Grid       `yaml:"payoffs" json:"payoffs"`
	ConnectedTo  []string   `yaml:"connectedTo,omitempty" json:"connectedTo,omitempty"`
}

// Option customizes a Matrix built by New.
type Option func(*Matrix)

// WithID fixes the matrix id instead of drawing one from the default generator.
func WithID(id string) Option {
	return func(m *Matrix) { m.ID = id }
}

// WithIDGenerator draws the matrix id from g.
// Panics on nil.
func WithIDGenerator(g ids.Generator) Option {
	if g == nil {
		panic("payoff: WithIDGenerator(nil)")
	}
	return func(m *Matrix) { m.ID = g.NewID() }
}

// WithDescription sets the free-form description.
func WithDescription(d string) Option {
	return func(m *Matrix) { m.Description = d }
}

// WithSourcePrompt records the text the matrix was built from.
func WithSourcePrompt(p string) Option {
	return func(m *Matrix) { m.SourcePrompt = p }
}

// WithConnectedTo records ancestor ids.
func WithConnectedTo(ancestors ...string) Option {
	return func(m *Matrix) { m.ConnectedTo = append([]string(nil), ancestors...) }
}

// New builds a validated Matrix. Inputs are deep-copied, so later edits to the
// caller's slices never reach the result. Without WithID/WithIDGenerator the id
// comes from ids.Default().
//
// Errors: any ErrMalformedMatrix variant (see Validate).
// Complexity: O(R·C·P).
func New(name string, players []string, strategies [][]string, payoffs Grid, opts ...Option) (Matrix, error) {
	m := Matrix{
		Name:       name,
		Players:    append([]string(nil), players...),
		Strategies: cloneStrategies(strategies),
		Payoffs:    payoffs.Clone(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.ID == "" {
		m.ID = ids.Default().NewID()
	}
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

// Validate checks the structural invariants in a fixed order:
// players → empty grid → rectangular → strategy shape → cell length → finite values.
// The first violation is returned; it always matches ErrMalformedMatrix.
func (m Matrix) Validate() error {
	if len(m.Players) < 2 {
		return matrixErrorf("Validate", ErrTooFewPlayers)
	}
	if err := m.Payoffs.validateShape(); err != nil {
		return err
	}
	if len(m.Strategies) != 2 ||
		len(m.Strategies[0]) != m.Payoffs.Rows() ||
		len(m.Strategies[1]) != m.Payoffs.Cols() {
		return matrixErrorf("Validate", ErrStrategyShape)
	}
	return m.Payoffs.validateCells(len(m.Players))
}

// Rows returns the number of row-player strategies.
func (m Matrix) Rows() int { return m.Payoffs.Rows() }

// Cols returns the number of column-player strategies.
func (m Matrix) Cols() int { return m.Payoffs.Cols() }

// Clone returns a deep copy of m, including players, strategies and provenance.
func (m Matrix) Clone() Matrix {
	out := m
	out.Players = append([]string(nil), m.Players...)
	out.Strategies = cloneStrategies(m.Strategies)
	out.Payoffs = m.Payoffs.Clone()
	if m.ConnectedTo != nil {
		out.ConnectedTo = append([]string(nil), m.ConnectedTo...)
	}
	return out
}

// WithProvenance returns a copy of m whose ConnectedTo is replaced by ancestors.
// m itself is left untouched.
func (m Matrix) WithProvenance(ancestors ...string) Matrix {
	out := m.Clone()
	out.ConnectedTo = append([]string(nil), ancestors...)
	return out
}

func cloneStrategies(s [][]string) [][]string {
	if s == nil {
		return nil
	}
	out := make([][]string, len(s))
	for i, dim := range s {
		out[i] = append([]string(nil), dim...)
	}
	return out
}
