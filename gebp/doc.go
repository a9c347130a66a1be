// SPDX-License-Identifier: MIT

// Package gebp implements the accumulation step of blocked dense
// matrix-matrix multiplication (general block × panel):
//
//	C[0:rows, 0:cols] += alpha · A · B
//
// where A (rows × depth) and B (depth × cols) arrive already packed into
// panels by the host, and C is a column-major window into the host's output.
//
// One kernel exists per scalar type, selected statically through the
// Kernel[T] interface:
//
//   - BigFloat: *big.Float scalars. Register blocking is deliberately minimal
//     (mr=1, nr=2): each multiply/add is a heap-touching library call, so deeper
//     blocking buys nothing and only multiplies scratch values. Exactly four
//     scratch values (two accumulators, one product temporary, one spare the
//     accumulators rotate through) are created per call, independent of rows,
//     cols and depth. Every operation is an in-place math/big primitive whose
//     destination never aliases an operand, so the reduction loop reuses
//     mantissa storage instead of allocating per step.
//   - Float64: native float64 with nr=4.
//
// Packed layout (shared by all kernels, offsets in elements):
//
//	A row i, step k:                  a.Data[i*strideA + a.Offset + k]
//	B column group at col j, step k:  b.Data[j*strideB + b.Offset*nrj + k*nrj + q], q < nrj
//	C entry (i, j):                   c.Data[j*c.Stride + i]
//
// with nrj = min(NR, cols−j) and strides defaulting to depth when ≤ 0.
//
// Contract:
//   - rows, cols or depth equal to zero is a no-op: nothing is read or written.
//   - No bounds or shape validation happens here; a view shorter than the
//     arguments imply panics through Go's slice bounds checks.
//   - Kernels are reentrant and hold no shared state. Concurrent calls are safe
//     as long as their C windows do not overlap; operand panels are read-only.
//   - Accumulation order is fixed: k strictly increasing, single running sum.
package gebp
