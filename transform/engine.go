// SPDX-License-Identifier: MIT

package transform

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/lattice"
	"github.com/katalvlaran/paygrid/payoff"
)

// Numeric policy of the four transforms.
const (
	// DefaultIterations is the relaxation pass count used by Apply.
	DefaultIterations = 100
	// RelaxationRate is the fraction of the gap to the neighbourhood mean closed per visit.
	RelaxationRate = 0.1
	// EquilibriumBoost scales equilibrium-supporting cells.
	EquilibriumBoost = 1.5
	// EquilibriumDamp scales every other cell of a Nash transform.
	EquilibriumDamp = 0.5
	// ParetoBoost scales Pareto-optimal cells.
	ParetoBoost = 1.3
	// OptimisticScale scales the optimistic branch before capping.
	OptimisticScale = 1.5
	// PessimisticScale scales the pessimistic branch before flooring.
	PessimisticScale = 0.7
	// PayoffCeiling caps optimistic payoffs.
	PayoffCeiling = 10.0
	// PayoffFloor floors pessimistic payoffs.
	PayoffFloor = 0.0
)

// Engine applies transforms. The zero value is not usable; call NewEngine.
type Engine struct {
	ids           ids.Generator // nil ⇒ ids.Default() at call time
	log           *zap.Logger
	order         lattice.Order
	iterations    int // default pass count for Apply
	maxIterations int // 0 ⇒ unbounded
}

// Option customizes an Engine. Option constructors panic on meaningless values.
type Option func(*Engine)

// WithIDGenerator fixes the id source for produced matrices. Panics on nil.
func WithIDGenerator(g ids.Generator) Option {
	if g == nil {
		panic("transform: WithIDGenerator(nil)")
	}
	return func(e *Engine) { e.ids = g }
}

// WithLogger attaches a structured logger. Panics on nil; use zap.NewNop to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("transform: WithLogger(nil)")
	}
	return func(e *Engine) { e.log = l }
}

// WithTraversal overrides the relaxation visit order. Panics on an undefined order.
func WithTraversal(o lattice.Order) Option {
	if o != lattice.RowMajor && o != lattice.ReverseRowMajor {
		panic("transform: WithTraversal(unknown order)")
	}
	return func(e *Engine) { e.order = o }
}

// WithIterations sets the pass count Apply uses for evolutionary transforms.
// Panics if n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic("transform: WithIterations(n<0)")
	}
	return func(e *Engine) { e.iterations = n }
}

// WithMaxIterations caps the pass count accepted by Evolutionary; 0 disables the cap.
// Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("transform: WithMaxIterations(n<0)")
	}
	return func(e *Engine) { e.maxIterations = n }
}

// NewEngine builds an Engine. Defaults: process-wide id generator, nop logger,
// row-major traversal, DefaultIterations, no iteration cap.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log:        zap.NewNop(),
		order:      lattice.DefaultOrder,
		iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) newID() string {
	if e.ids != nil {
		return e.ids.NewID()
	}
	return ids.Default().NewID()
}

// derive builds a result matrix from src: fresh id, suffixed name, new
// description and payoffs; every other field is deep-copied from src.
func (e *Engine) derive(src payoff.Matrix, suffix, description string, g payoff.Grid) payoff.Matrix {
	out := src.Clone()
	out.ID = e.newID()
	out.Name = src.Name + " (" + suffix + ")"
	out.Description = description
	out.Payoffs = g
	return out
}

func (e *Engine) logApplied(kind Kind, src payoff.Matrix, out ...payoff.Matrix) {
	if ce := e.log.Check(zap.DebugLevel, "transform applied"); ce != nil {
		results := make([]string, len(out))
		for i, m := range out {
			results[i] = m.ID
		}
		ce.Write(
			zap.String("kind", string(kind)),
			zap.String("source", src.ID),
			zap.Strings("results", results),
			zap.Int("rows", src.Rows()),
			zap.Int("cols", src.Cols()),
		)
	}
}

func (e *Engine) logRejected(kind Kind, src payoff.Matrix, err error) {
	e.log.Debug("transform rejected",
		zap.String("kind", string(kind)),
		zap.String("source", src.ID),
		zap.Error(err),
	)
}
