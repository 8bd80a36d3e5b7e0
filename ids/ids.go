// Package ids generates matrix identifiers.
//
// Three schemes are provided:
//
//   - TimeRandom: base-36 millisecond clock (monotonic within the process)
//     followed by a base-36 random suffix. Practically unique within a
//     session, not cryptographically unique.
//   - Sequence:   prefix + decimal counter ("m0", "m1", ...). Deterministic;
//     use it in tests and golden files.
//   - UUID:       random RFC 4122 v4 UUIDs.
//
// A process-wide default generator (TimeRandom unless replaced through
// SetDefault) backs every constructor that is not handed one explicitly.
package ids

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownScheme indicates an unsupported scheme name in ByScheme.
var ErrUnknownScheme = errors.New("ids: unknown scheme")

// Scheme names accepted by ByScheme.
const (
	SchemeTime     = "time"
	SchemeUUID     = "uuid"
	SchemeSequence = "sequence"
)

// DefaultSequencePrefix is the prefix used by ByScheme(SchemeSequence).
const DefaultSequencePrefix = "m"

// Generator produces identifiers. Implementations must be safe for concurrent use.
type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() string

// NewID calls f.
func (f GeneratorFunc) NewID() string { return f() }

// ---------- time + random ----------

// TimeRandomGenerator composes a monotonic millisecond component with a random one.
type TimeRandomGenerator struct {
	now  func() time.Time
	last atomic.Int64
}

// TimeRandom returns a generator reading the wall clock.
func TimeRandom() *TimeRandomGenerator {
	return &TimeRandomGenerator{now: time.Now}
}

// NewID returns base36(ms) + base36(random). The millisecond part never goes
// backwards: a clock reading at or below the previous one is bumped by one.
func (g *TimeRandomGenerator) NewID() string {
	ms := g.tick()
	return strconv.FormatInt(ms, 36) + strconv.FormatUint(rand.Uint64(), 36)
}

func (g *TimeRandomGenerator) tick() int64 {
	ms := g.now().UnixMilli()
	for {
		prev := g.last.Load()
		next := ms
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}

// ---------- sequence ----------

// SequenceGenerator yields prefix+0, prefix+1, ... Safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence returns a counter-backed generator starting at zero.
func NewSequence(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (g *SequenceGenerator) NewID() string {
	n := g.next.Add(1) - 1
	return g.prefix + strconv.FormatUint(n, 10)
}

// ---------- uuid ----------

// UUID returns a generator of random (v4) UUID strings.
func UUID() Generator {
	return GeneratorFunc(func() string { return uuid.NewString() })
}

// ---------- scheme lookup ----------

// ByScheme resolves a scheme name (case-insensitive) to a fresh generator.
func ByScheme(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchemeTime:
		return TimeRandom(), nil
	case SchemeUUID:
		return UUID(), nil
	case SchemeSequence:
		return NewSequence(DefaultSequencePrefix), nil
	}
	return nil, fmt.Errorf("ByScheme(%q): %w", name, ErrUnknownScheme)
}

// ---------- process-wide default ----------

var (
	defaultMu  sync.RWMutex
	defaultGen Generator = TimeRandom()
)

// Default returns the process-wide generator.
func Default() Generator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultGen
}

// SetDefault replaces the process-wide generator and returns the previous one,
// so tests can restore it. Panics on nil.
func SetDefault(g Generator) Generator {
	if g == nil {
		panic("ids: SetDefault(nil)")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultGen
	defaultGen = g
	return prev
}
