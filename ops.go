// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral

// Standard operations. Each is a zero-size marker registering its identity
// via Absorbing; the marker type is the operation tag, the exported variable
// the conventional instance.
var (
	Add    AddOp
	Mul    MulOp
	BitAnd BitAndOp
	BitOr  BitOrOp
	Min    MinOp
	Max    MaxOp
	Sum    SumOp
	Prod   ProdOp
)

// AddOp is the operation tag for addition. The kernel wraps on int64
// overflow, like the builtin operator; see [SumOp] for the promoting
// variant.
type AddOp struct{ Absorbing }

func (AddOp) Name() string { return "+" }

// IdentityGroup classifies Id(Add) as additive.
func (AddOp) IdentityGroup() Group { return Additive }

func (op AddOp) CombineValues(left, right any) any {
	return arithCombine(op.Name(), left, right, addFns, false)
}

// MulOp is the operation tag for multiplication. The kernel wraps on int64
// overflow; see [ProdOp] for the promoting variant.
type MulOp struct{ Absorbing }

func (MulOp) Name() string { return "*" }

// IdentityGroup classifies Id(Mul) as multiplicative.
func (MulOp) IdentityGroup() Group { return Multiplicative }

// TextOne returns the text neutral representative for the multiplicative
// identity: the empty string.
func (MulOp) TextOne() string { return "" }

func (op MulOp) CombineValues(left, right any) any {
	return arithCombine(op.Name(), left, right, mulFns, false)
}

// BitAndOp is the operation tag for bitwise and. Its identity absorbs any
// operand; the kernel covers integers and bools.
type BitAndOp struct{ Absorbing }

func (BitAndOp) Name() string { return "&" }

func (op BitAndOp) CombineValues(left, right any) any {
	return bitwiseCombine(op.Name(), left, right, true)
}

// BitOrOp is the operation tag for bitwise or.
type BitOrOp struct{ Absorbing }

func (BitOrOp) Name() string { return "|" }

func (op BitOrOp) CombineValues(left, right any) any {
	return bitwiseCombine(op.Name(), left, right, false)
}

// MinOp is the operation tag for min. Min propagates [Missing] and carries
// the disambiguation rule against it. Min's identity has no numeric
// materialization.
type MinOp struct {
	Absorbing
	Propagating
}

func (MinOp) Name() string { return "min" }

// AbsorbMissing disambiguates min(Id(min), missing); see [MissingAbsorber].
func (MinOp) AbsorbMissing(m Missing) Missing { return m }

func (op MinOp) CombineValues(left, right any) any {
	return orderCombine(op.Name(), left, right, true)
}

// MaxOp is the operation tag for max. Max propagates [Missing] and carries
// the disambiguation rule against it.
type MaxOp struct {
	Absorbing
	Propagating
}

func (MaxOp) Name() string { return "max" }

// AbsorbMissing disambiguates max(Id(max), missing); see [MissingAbsorber].
func (MaxOp) AbsorbMissing(m Missing) Missing { return m }

func (op MaxOp) CombineValues(left, right any) any {
	return orderCombine(op.Name(), left, right, false)
}

// SumOp is the numeric-promoting summation operation: narrow integers
// normalize to int64 and an overflowing int64 sum promotes to *big.Int
// instead of wrapping.
type SumOp struct{ Absorbing }

func (SumOp) Name() string { return "sum" }

// IdentityGroup classifies Id(Sum) as additive.
func (SumOp) IdentityGroup() Group { return Additive }

func (op SumOp) CombineValues(left, right any) any {
	return arithCombine(op.Name(), left, right, addFns, true)
}

// ProdOp is the numeric-promoting product operation, the multiplicative
// counterpart of [SumOp].
type ProdOp struct{ Absorbing }

func (ProdOp) Name() string { return "prod" }

// IdentityGroup classifies Id(Prod) as multiplicative.
func (ProdOp) IdentityGroup() Group { return Multiplicative }

// TextOne returns the text neutral representative for the multiplicative
// identity: the empty string.
func (ProdOp) TextOne() string { return "" }

func (op ProdOp) CombineValues(left, right any) any {
	return arithCombine(op.Name(), left, right, mulFns, true)
}
