// SPDX-License-Identifier: MIT

package gebp

// Register blocking for float64.
const (
	float64MR = 1
	float64NR = 4
)

// Float64 is the GEBP kernel for native float64 scalars.
// Products are explicitly rounded before accumulation so results do not
// depend on whether the compiler fuses multiply-adds on the target CPU.
type Float64 struct{}

var _ Kernel[float64] = Float64{}

// Shape returns {MR: 1, NR: 4}.
func (Float64) Shape() Shape { return Shape{MR: float64MR, NR: float64NR} }

// MulAdd computes C[0:rows, 0:cols] += alpha·A·B over packed panels.
//
// Complexity: Time O(rows·cols·depth), Space O(1).
func (Float64) MulAdd(c Block[float64], a, b Panel[float64], rows, depth, cols int, alpha *float64) {
	if rows <= 0 || depth <= 0 || cols <= 0 {
		return
	}
	strideA := a.stride(depth)
	strideB := b.stride(depth)
	al := *alpha

	var acc [float64NR]float64
	var j, i, kk, q int
	for j = 0; j < cols; j += float64NR {
		nr := min(float64NR, cols-j)
		for i = 0; i < rows; i++ {
			ai := a.Data[i*strideA+a.Offset : i*strideA+a.Offset+depth]
			bj := b.Data[j*strideB+b.Offset*nr:]
			acc = [float64NR]float64{}

			for kk = 0; kk < depth; kk++ {
				av := ai[kk]
				row := bj[kk*nr : kk*nr+nr]
				for q = 0; q < nr; q++ {
					acc[q] += float64(av * row[q])
				}
			}

			for q = 0; q < nr; q++ {
				c.Data[(j+q)*c.Stride+i] += float64(al * acc[q])
			}
		}
	}
}
