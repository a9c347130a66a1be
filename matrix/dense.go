// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Hold *big.Float entries contiguously with the explicit index formula j*rows + i,
//     which is the result-block layout the gebp kernel writes into.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Initialise every entry at the context precision (no precision-0 placeholders).
//   - Enforce a numeric policy (optional rejection of ±Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) initialisation; At/Set: O(1) plus one value copy; Clone: O(r*c).

package matrix

import (
	"math"
	"math/big"
	"math/rand"
	"strings"

	"github.com/katalvlaran/mpmatrix/mpreal"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtDigits   = 10 // significant digits in String
)

// Dense is a concrete column-major matrix of arbitrary-precision values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in column-major order (offset = j*r + i).
//   - ctx fixes the precision and rounding mode of every entry.
//   - validateNaNInf enables ±Inf rejection in Set.
type Dense struct {
	r, c           int
	data           []big.Float
	ctx            *mpreal.Context
	validateNaNInf bool
}

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; every entry is +0 at the
//     precision and rounding mode of the configured context.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (context defaults to mpreal.DefaultContext).
//   - Stage 3: allocate the flat buffer and initialise each entry in place.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	ctx := o.contextOr(nil)

	buf := make([]big.Float, rows*cols)
	for i := range buf {
		ctx.Init(&buf[i])
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		ctx:            ctx,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromFloat64s builds a rows×cols Dense from row-major float64 values.
// Conversion is exact whenever the context precision is ≥ 53 bits.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (len(vals) != rows*cols),
//     ErrNaNInf (NaN always; ±Inf under the default policy).
func FromFloat64s(rows, cols int, vals []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromFloat64, err)
	}
	if len(vals) != rows*cols {
		return nil, matrixErrorf(opFromFloat64, ErrDimensionMismatch)
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = vals[i*cols+j]
			if math.IsNaN(v) || (m.validateNaNInf && math.IsInf(v, 0)) {
				return nil, matrixErrorf(opFromFloat64, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			m.data[j*rows+i].SetFloat64(v)
		}
	}

	return m, nil
}

// Random builds a rows×cols Dense with entries uniform on [-1, 1), drawn from
// rng at the context precision. rng == nil uses a fixed seed.
// Fill order is column-major, so a given seed reproduces the same matrix.
func Random(rows, cols int, rng *rand.Rand, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	low := m.ctx.FromInt64(-1)
	high := m.ctx.FromInt64(1)
	for idx := range m.data {
		m.data[idx].Set(m.ctx.RandomRange(rng, low, high))
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Context returns the arithmetic context the matrix was created with.
func (m *Dense) Context() *mpreal.Context { return m.ctx }

// indexOf computes the column-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Column-major offset: j*r + i.
	return col*m.r + row, nil
}

// At returns a copy of the value at (row, col), or ErrOutOfRange.
// The copy keeps the entry's precision and mode; mutating it never touches m.
func (m *Dense) At(row, col int) (*big.Float, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Float).Copy(&m.data[idx]), nil
}

// Set stores v at (row, col), rounded to the matrix precision with the
// matrix rounding mode. v is not retained.
//
// Errors:
//   - ErrOutOfRange, ErrNilScalar, ErrNaNInf (±Inf under the default policy).
func (m *Dense) Set(row, col int, v *big.Float) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilScalar)
	}
	if m.validateNaNInf && v.IsInf() {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy sharing no mantissa storage with m.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]big.Float, len(m.data))
	for i := range m.data {
		buf[i].Copy(&m.data[i])
	}

	return &Dense{r: m.r, c: m.c, data: buf, ctx: m.ctx, validateNaNInf: m.validateNaNInf}
}

// ToFloat64s returns the entries as row-major float64 values (nearest-even).
func (m *Dense) ToFloat64s() []float64 {
	out := make([]float64, m.r*m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[i*m.c+j] = mpreal.ToFloat64(&m.data[j*m.r+i])
		}
	}

	return out
}

// String implements fmt.Stringer; rows are printed top to bottom with
// _fmtDigits significant digits per entry.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[j*m.r+i].Text('g', _fmtDigits))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
