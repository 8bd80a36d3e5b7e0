package workbench

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/paygrid/payoff"
	"github.com/katalvlaran/paygrid/transform"
)

// Workbench is an insertion-ordered set of matrices linked by provenance.
type Workbench struct {
	engine *transform.Engine
	log    *zap.Logger

	mu       sync.RWMutex
	order    []string                 // ids in insertion order
	byID     map[string]payoff.Matrix // owned copies
	children map[string][]string      // ancestor id → derived ids, insertion order
}

// Option customizes a Workbench.
type Option func(*Workbench)

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("workbench: WithLogger(nil)")
	}
	return func(w *Workbench) { w.log = l }
}

// New returns an empty workbench that transforms through engine.
// A nil engine is replaced by transform.NewEngine().
func New(engine *transform.Engine, opts ...Option) *Workbench {
	if engine == nil {
		engine = transform.NewEngine()
	}
	w := &Workbench{
		engine:   engine,
		log:      zap.NewNop(),
		byID:     make(map[string]payoff.Matrix),
		children: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Add validates m and stores a copy of it.
// Errors: payoff.ErrMalformedMatrix variants, ErrDuplicateID, ErrUnknownAncestor.
func (w *Workbench) Add(m payoff.Matrix) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("Add(%q): %w", m.ID, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.admissibleLocked(m); err != nil {
		return fmt.Errorf("Add(%q): %w", m.ID, err)
	}
	w.insertLocked(m.Clone())
	w.log.Debug("matrix added", zap.String("id", m.ID), zap.Strings("connectedTo", m.ConnectedTo))
	return nil
}

// Connect applies kind to the member sourceID and stores every result with
// ConnectedTo = [sourceID]. It returns copies of the stored results.
// Errors: ErrUnknownMatrix, ErrDuplicateID on an id collision, any transform error.
func (w *Workbench) Connect(sourceID string, kind transform.Kind) ([]payoff.Matrix, error) {
	src, ok := w.Get(sourceID)
	if !ok {
		return nil, fmt.Errorf("Connect(%q): %w", sourceID, ErrUnknownMatrix)
	}

	outs, err := w.engine.Apply(kind, src)
	if err != nil {
		return nil, fmt.Errorf("Connect(%q, %s): %w", sourceID, kind, err)
	}
	for i := range outs {
		outs[i].ConnectedTo = []string{sourceID}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	seen := make(map[string]bool, len(outs))
	for _, m := range outs {
		if seen[m.ID] {
			return nil, fmt.Errorf("Connect(%q, %s): %q: %w", sourceID, kind, m.ID, ErrDuplicateID)
		}
		seen[m.ID] = true
		if err = w.admissibleLocked(m); err != nil {
			return nil, fmt.Errorf("Connect(%q, %s): %w", sourceID, kind, err)
		}
	}

	result := make([]payoff.Matrix, len(outs))
	for i, m := range outs {
		w.insertLocked(m)
		result[i] = m.Clone()
	}
	w.log.Info("matrices connected",
		zap.String("source", sourceID),
		zap.String("kind", string(kind)),
		zap.Int("produced", len(outs)),
	)
	return result, nil
}

// admissibleLocked checks id uniqueness and ancestor presence. Caller holds mu.
func (w *Workbench) admissibleLocked(m payoff.Matrix) error {
	if _, dup := w.byID[m.ID]; dup {
		return fmt.Errorf("%q: %w", m.ID, ErrDuplicateID)
	}
	for _, a := range m.ConnectedTo {
		if _, ok := w.byID[a]; !ok {
			return fmt.Errorf("%q: %w", a, ErrUnknownAncestor)
		}
	}
	return nil
}

// insertLocked stores m, which the workbench now owns. Caller holds mu.
func (w *Workbench) insertLocked(m payoff.Matrix) {
	w.order = append(w.order, m.ID)
	w.byID[m.ID] = m
	for _, a := range m.ConnectedTo {
		w.children[a] = append(w.children[a], m.ID)
	}
}

// Get returns a copy of the member with the given id.
func (w *Workbench) Get(id string) (payoff.Matrix, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	m, ok := w.byID[id]
	if !ok {
		return payoff.Matrix{}, false
	}
	return m.Clone(), true
}

// Matrices returns copies of all members in insertion order.
func (w *Workbench) Matrices() []payoff.Matrix {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]payoff.Matrix, len(w.order))
	for i, id := range w.order {
		out[i] = w.byID[id].Clone()
	}
	return out
}

// Len returns the member count.
func (w *Workbench) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.order)
}
