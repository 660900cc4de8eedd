// SPDX-License-Identifier: MIT

// Package ndarray provides rank-generic strided arrays with zero-copy views.
//
// 🚀 What is inside?
//
//   - Shape / Stride / Layout: the affine map address = offset + Σ index[i]*stride[i].
//     Axis 0 is the fastest varying axis; a contiguous layout has stride[0] = 1 and
//     stride[i] = stride[i-1] * shape[i-1].
//   - Cursor: incremental traversal of a Layout in nested order (axis 0 innermost)
//     using a precomputed semi-stride table, plus Cycle for wraparound jumps.
//   - PeriodicCursor / PeriodicView: a window of arbitrary shape whose indices wrap
//     modulo the owning array's extent. Reading a 3×…×3 neighbourhood around a
//     boundary cell needs no padding and no special cases.
//   - Array[T]: one buffer, many views. Transpose, Reverse, Sub, SubStep, Select and
//     Periodic all return views sharing storage; Copy returns a fresh owning array.
//   - ops: Assign, Fill, scalar and elementwise arithmetic, Sum, Equal, AllClose.
//
// ✨ Error policy
//
//   - Structural requests (axis outside [0, D), sub range past the extent, step < 1)
//     are programmer errors and panic with a message naming the operation.
//   - Runtime data problems (wrong element count, shape mismatch between operands,
//     out-of-range At/Set) return sentinel errors from errors.go; match them with
//     errors.Is.
//   - Binary operations validate every operand before the first write, so a failed
//     call never leaves a partially written destination.
//
// ⚙️ Ownership
//
// Views hold a reference to the same []T as their source. The garbage collector
// keeps that buffer alive for as long as any view exists, so a view can never read
// freed memory. Mutations through a view are visible through the owner and every
// other overlapping view; IsView reports whether an array borrows its storage.
//
// Quick example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
//	col := a.Select(0, 1)      // view of elements 2, 4
//	_ = ndarray.MulScalar(col, 10)
//	fmt.Println(a.ToSlice())   // [1 20 3 40]
package ndarray
