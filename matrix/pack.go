// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// PackLHS copies the rows×depth tile of a starting at (r0, k0) into dst in
// the row-panel layout the gebp kernels read: A[r0+i, k0+k] lands at
// dst[i*depth+k]. dst is reused when large enough; the (possibly
// reallocated) buffer is returned. Indices must lie inside a.
//
// Complexity: O(rows·depth) value copies; no allocation when cap(dst) suffices.
func PackLHS(dst []big.Float, a *Dense, r0, k0, rows, depth int) []big.Float {
	dst = ensureLen(dst, rows*depth)

	var i, k int
	var col []big.Float
	for k = 0; k < depth; k++ {
		col = a.data[(k0+k)*a.r+r0:]
		for i = 0; i < rows; i++ {
			dst[i*depth+k].Copy(&col[i])
		}
	}

	return dst
}

// PackRHS copies the depth×cols tile of b starting at (k0, c0) into dst in
// column groups of nr: for the group starting at column j (width
// w = min(nr, cols-j)), B[k0+k, c0+j+q] lands at dst[j*depth + k*w + q].
// The last group is narrower when cols is not a multiple of nr.
//
// Complexity: O(depth·cols) value copies; no allocation when cap(dst) suffices.
func PackRHS(dst []big.Float, b *Dense, k0, c0, depth, cols, nr int) []big.Float {
	dst = ensureLen(dst, depth*cols)

	var j, k, q, w int
	var group []big.Float
	for j = 0; j < cols; j += nr {
		w = min(nr, cols-j)
		group = dst[j*depth:]
		for q = 0; q < w; q++ {
			col := b.data[(c0+j+q)*b.r+k0:]
			for k = 0; k < depth; k++ {
				group[k*w+q].Copy(&col[k])
			}
		}
	}

	return dst
}

// ensureLen returns buf resliced to n, allocating a fresh buffer when the
// capacity is short. Values are never moved: big.Float must not be copied
// shallowly, so growth never goes through append.
func ensureLen(buf []big.Float, n int) []big.Float {
	if cap(buf) < n {
		return make([]big.Float, n)
	}

	return buf[:n]
}
