// SPDX-License-Identifier: MIT

// Package flood runs breadth-first region growth over the cells of an
// N-dimensional grid addressed by flat position (axis 0 fastest).
//
// What:
//
//   - Grid describes the cell lattice: shape, connectivity and whether the
//     boundaries wrap around (periodic, the default).
//   - Neighbours lists the flat positions adjacent to a cell.
//   - Fill grows a region from one start cell through a caller supplied claim
//     predicate; Components labels every connected region of member cells.
//
// Connectivity:
//
//   - Full: every offset in {-1, 0, 1}^D except the zero offset (8 in 2D,
//     26 in 3D).
//   - Axial: the 2·D unit offsets (4 in 2D, 6 in 3D).
//
// Complexity:
//
//   - Neighbours: O(d·D) where d is the neighbour count.
//   - Fill, Components: O(N·d·D) time, O(N) memory for N cells.
//
// Positions are plain ints so regions are independent of how the data they
// describe is laid out in memory.
package flood
