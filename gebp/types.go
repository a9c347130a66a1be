// SPDX-License-Identifier: MIT

package gebp

// Shape holds the register-blocking factors of a kernel. Hosts pack A in
// row panels of MR rows and B in column groups of NR columns.
type Shape struct {
	MR int // result rows processed together
	NR int // result columns processed together
}

// Panel is a read-only view of one packed operand.
//
// Stride is the number of elements per packed row (A) or per packed column
// (B); zero or negative means the panel was packed without padding and the
// stride equals depth. Offset skips into an already-packed larger panel when
// the kernel runs on an interior or partial tile.
type Panel[T any] struct {
	Data   []T
	Stride int
	Offset int
}

// stride resolves the packed stride for a given reduction length.
func (p Panel[T]) stride(depth int) int {
	if p.Stride <= 0 {
		return depth
	}

	return p.Stride
}

// Block is a mutable, column-major window into the result matrix:
// column j starts at Data[j*Stride]. Kernels only ever add into it.
type Block[T any] struct {
	Data   []T
	Stride int
}

// Kernel is the multiply-accumulate capability a host dispatches to for a
// given scalar type T.
type Kernel[T any] interface {
	// Shape reports the register-blocking factors the packed panels must follow.
	Shape() Shape

	// MulAdd computes C[0:rows, 0:cols] += alpha·A·B over packed panels.
	MulAdd(c Block[T], a, b Panel[T], rows, depth, cols int, alpha *T)
}
