// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/paygrid/payoff"
)

// Kind names a transform.
type Kind string

// Supported kinds.
const (
	KindEvolutionary  Kind = "evolutionary"
	KindNash          Kind = "nash"
	KindPareto        Kind = "pareto"
	KindMultiUniverse Kind = "multi-universe"
)

// Kinds lists the supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindEvolutionary, KindNash, KindPareto, KindMultiUniverse}
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Apply runs the transform named by kind on src. Evolutionary uses the engine's
// default pass count (WithIterations). The result holds one matrix, or two for
// KindMultiUniverse.
func (e *Engine) Apply(kind Kind, src payoff.Matrix) ([]payoff.Matrix, error) {
	switch kind {
	case KindEvolutionary:
		m, err := e.Evolutionary(src, e.iterations)
		if err != nil {
			return nil, err
		}
		return []payoff.Matrix{m}, nil
	case KindNash:
		m, err := e.NashEquilibrium(src)
		if err != nil {
			return nil, err
		}
		return []payoff.Matrix{m}, nil
	case KindPareto:
		m, err := e.ParetoOptimal(src)
		if err != nil {
			return nil, err
		}
		return []payoff.Matrix{m}, nil
	case KindMultiUniverse:
		pair, err := e.MultiUniverseBranch(src)
		if err != nil {
			return nil, err
		}
		return pair[:], nil
	}
	return nil, fmt.Errorf("Apply(%q): %w", kind, ErrUnknownKind)
}

// ---------- package-level facades over a default engine ----------

var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine() })

// Evolutionary runs Engine.Evolutionary on the default engine.
func Evolutionary(src payoff.Matrix, iterations int) (payoff.Matrix, error) {
	return defaultEngine().Evolutionary(src, iterations)
}

// NashEquilibrium runs Engine.NashEquilibrium on the default engine.
func NashEquilibrium(src payoff.Matrix) (payoff.Matrix, error) {
	return defaultEngine().NashEquilibrium(src)
}

// ParetoOptimal runs Engine.ParetoOptimal on the default engine.
func ParetoOptimal(src payoff.Matrix) (payoff.Matrix, error) {
	return defaultEngine().ParetoOptimal(src)
}

// MultiUniverseBranch runs Engine.MultiUniverseBranch on the default engine.
func MultiUniverseBranch(src payoff.Matrix) ([2]payoff.Matrix, error) {
	return defaultEngine().MultiUniverseBranch(src)
}
