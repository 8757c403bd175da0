// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral

import "golang.org/x/exp/constraints"

// Group classifies registered identities for numeric materialization.
// Membership is declared in source by implementing [Grouped]; of the
// standard operations, Add and Sum are additive, Mul and Prod are
// multiplicative, and everything else (min, max, bitwise) is unclassified
// and has no materialization at all.
type Group int

const (
	// Additive identities materialize as the target type's zero.
	Additive Group = iota + 1
	// Multiplicative identities materialize as the target type's one.
	Multiplicative
)

func (g Group) String() string {
	switch g {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	default:
		return "invalid"
	}
}

// Grouped is the classification trait: operations whose identity belongs to
// one of the two materialization groups implement it. The materialization
// entry points constrain their type parameter by Grouped, so requesting a
// concrete zero/one for an unclassified identity does not compile.
type Grouped interface {
	Op
	// IdentityGroup reports the group of the operation's identity.
	IdentityGroup() Group
}

// Number constrains [ConvertTo] targets to the numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// AsFloat64 materializes a classified identity as float64: 0.0 for the
// additive group, 1.0 for the multiplicative group.
func AsFloat64[O Grouped](_ Identity[O]) float64 {
	var op O
	if op.IdentityGroup() == Additive {
		return 0
	}
	return 1
}

// AsInt64 materializes a classified identity as int64: 0 for the additive
// group, 1 for the multiplicative group.
func AsInt64[O Grouped](_ Identity[O]) int64 {
	var op O
	if op.IdentityGroup() == Additive {
		return 0
	}
	return 1
}

// ConvertTo materializes a classified identity in the target numeric type:
// the type's zero for the additive group, its one for the multiplicative
// group.
//
//	neutral.ConvertTo[float64](neutral.Id(neutral.Add)) // 0.0
//	neutral.ConvertTo[int](neutral.Id(neutral.Prod))    // 1
func ConvertTo[T Number, O Grouped](_ Identity[O]) T {
	var op O
	if op.IdentityGroup() == Additive {
		var zero T
		return zero
	}
	return T(1)
}

// Unital is implemented by multiplicative-group operations, whose identity
// additionally has a conventional neutral representative in text types.
type Unital interface {
	Grouped
	// TextOne returns the conventional text neutral representative.
	TextOne() string
}

// AsString materializes a multiplicative identity as its text neutral
// representative, the empty string. The additive group and unclassified
// identities do not compile here.
func AsString[O Unital](_ Identity[O]) string {
	var op O
	return op.TextOne()
}
