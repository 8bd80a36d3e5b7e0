// Package lattice treats an R×C payoff grid as a 2-D lattice graph.
//
// What:
//
//   - Lattice holds the grid dimensions and a precomputed 4-neighbour offset table.
//   - Cells are addressed as (row, col) or by their row-major index row*Cols+col.
//   - Neighbors lists the existing orthogonal neighbours of a cell; there is no
//     wraparound, so corner cells have 2 neighbours and edge cells 3.
//   - Visit walks every cell in a named Order.
//
// Determinism:
//
//   - Neighbour order is fixed: up, down, left, right. Relaxation sums neighbour
//     payoffs in this order, so it also fixes the floating-point result.
//   - DefaultOrder is RowMajor. Sequential (Gauss-Seidel) relaxation depends on
//     the visit order; ReverseRowMajor exists so an alternate ordering can be
//     exercised explicitly. Column-major is not offered: on a 4-neighbourhood it
//     sees the same updated neighbours as row-major and yields the same result.
//
// Complexity:
//
//   - New: O(1). Neighbors: O(1). Visit: O(R·C).
//
// Errors:
//
//   - ErrEmptyLattice: non-positive row or column count.
//   - ErrUnknownOrder: Visit called with an undefined Order.
package lattice
