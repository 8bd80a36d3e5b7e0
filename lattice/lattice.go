package lattice

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyLattice indicates a lattice with no rows or no columns.
	ErrEmptyLattice = errors.New("lattice: must have at least one row and one column")
	// ErrUnknownOrder indicates an undefined traversal order.
	ErrUnknownOrder = errors.New("lattice: unknown traversal order")
)

// Order selects the cell visitation order of Visit.
type Order int

const (
	// RowMajor visits (0,0), (0,1), ..., (0,C-1), (1,0), ...
	RowMajor Order = iota
	// ReverseRowMajor visits (R-1,C-1), (R-1,C-2), ..., (0,0).
	ReverseRowMajor
)

// DefaultOrder is the traversal order used for sequential relaxation.
const DefaultOrder = RowMajor

// String returns the order name.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ReverseRowMajor:
		return "reverse-row-major"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder resolves an order by its String name, case-insensitively.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, o := range []Order{RowMajor, ReverseRowMajor} {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("ParseOrder(%q): %w", s, ErrUnknownOrder)
}

// fourNeighborhood lists (dRow, dCol) offsets: up, down, left, right.
var fourNeighborhood = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Lattice describes an R×C grid of cells. It is immutable once built.
type Lattice struct {
	Rows, Cols int
	offsets    [][2]int
}

// New constructs a lattice of the given dimensions.
// Returns ErrEmptyLattice if rows or cols is not positive.
func New(rows, cols int) (*Lattice, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyLattice
	}
	offsets := make([][2]int, len(fourNeighborhood))
	copy(offsets, fourNeighborhood[:])
	return &Lattice{Rows: rows, Cols: cols, offsets: offsets}, nil
}

// Size returns the number of cells.
func (l *Lattice) Size() int { return l.Rows * l.Cols }

// InBounds reports whether (r,c) lies within the lattice.
func (l *Lattice) InBounds(r, c int) bool {
	return r >= 0 && r < l.Rows && c >= 0 && c < l.Cols
}

// Index maps (r,c) to its row-major index.
func (l *Lattice) Index(r, c int) int { return r*l.Cols + c }

// Coordinate maps a row-major index back to (r,c).
func (l *Lattice) Coordinate(idx int) (r, c int) { return idx / l.Cols, idx % l.Cols }

// NeighborOffsets returns a copy of the (dRow, dCol) offset table in visit order.
func (l *Lattice) NeighborOffsets() [][2]int {
	out := make([][2]int, len(l.offsets))
	copy(out, l.offsets)
	return out
}

// Neighbors returns the row-major indices of the existing neighbours of (r,c),
// in offset order. The result is empty for a 1×1 lattice.
func (l *Lattice) Neighbors(r, c int) []int {
	out := make([]int, 0, len(l.offsets))
	for _, d := range l.offsets {
		nr, nc := r+d[0], c+d[1]
		if l.InBounds(nr, nc) {
			out = append(out, l.Index(nr, nc))
		}
	}
	return out
}

// Visit calls fn for every cell in the given order.
// Returns ErrUnknownOrder for an undefined Order; fn is then never called.
func (l *Lattice) Visit(order Order, fn func(r, c int)) error {
	switch order {
	case RowMajor:
		for r := 0; r < l.Rows; r++ {
			for c := 0; c < l.Cols; c++ {
				fn(r, c)
			}
		}
	case ReverseRowMajor:
		for r := l.Rows - 1; r >= 0; r-- {
			for c := l.Cols - 1; c >= 0; c-- {
				fn(r, c)
			}
		}
	default:
		return fmt.Errorf("Visit(%v): %w", order, ErrUnknownOrder)
	}
	return nil
}
