// SPDX-License-Identifier: MIT

package mpreal

// Traits is the static description a host algorithm library consults when it
// selects code paths for a scalar type. Costs are relative hints only; they
// never affect correctness.
type Traits struct {
	IsInteger             bool // exact integer arithmetic
	IsSigned              bool // negative values representable
	IsComplex             bool // has an imaginary part
	RequireInitialization bool // a default instance must be explicitly initialised before use
	ReadCost              int  // relative cost of reading one value
	AddCost               int  // relative cost of one addition
	MulCost               int  // relative cost of one multiplication
}

// BigFloatTraits describes *big.Float.
//
// RequireInitialization is true: a zero big.Float has precision 0, which
// math/big treats as "adopt the operands' precision", so hosts must create
// values through Context.New or Context.Init instead of relying on zero values.
var BigFloatTraits = Traits{
	IsInteger:             false,
	IsSigned:              true,
	IsComplex:             false,
	RequireInitialization: true,
	ReadCost:              10,
	AddCost:               10,
	MulCost:               40,
}
