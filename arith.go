// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral

import (
	"fmt"
	"math"
	"math/big"
)

// Value kernels for the standard operations.
//
// Operands normalize into a three-level numeric tower: machine integers
// (int64), floats (float64), and *big.Int. Mixing an integer with a float
// promotes to float64; mixing anything integral with *big.Int promotes to
// *big.Int. The promoting kernels (Sum, Prod) additionally move an
// overflowing int64 result up to *big.Int; the plain kernels (Add, Mul)
// wrap, like the builtin operators.

// asInt64 normalizes the machine integer types to int64. Unsigned values
// above math.MaxInt64 do not normalize; callers fall through to a mismatch.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// asFloat64 normalizes the float types to float64.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// arithFns is one arithmetic operation across the numeric tower. The int64
// form reports overflow; whether overflow wraps or promotes is the caller's
// choice.
type arithFns struct {
	i func(a, b int64) (int64, bool)
	f func(a, b float64) float64
	b func(z, a, b *big.Int) *big.Int
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == -1 {
		return -b, b != math.MinInt64
	}
	if b == -1 {
		return -a, a != math.MinInt64
	}
	c := a * b
	if c/a != b {
		return c, false
	}
	return c, true
}

var (
	addFns = arithFns{
		i: addInt64,
		f: func(a, b float64) float64 { return a + b },
		b: (*big.Int).Add,
	}
	mulFns = arithFns{
		i: mulInt64,
		f: func(a, b float64) float64 { return a * b },
		b: (*big.Int).Mul,
	}
)

// arithCombine runs one arithmetic operation over the tower. promote selects
// the overflow behavior for the int64 level.
func arithCombine(name string, left, right any, fns arithFns, promote bool) any {
	lb, lBig := left.(*big.Int)
	rb, rBig := right.(*big.Int)
	if lBig || rBig {
		if !lBig {
			li, ok := asInt64(left)
			if !ok {
				operandMismatch(name, left, right)
			}
			lb = big.NewInt(li)
		}
		if !rBig {
			ri, ok := asInt64(right)
			if !ok {
				operandMismatch(name, left, right)
			}
			rb = big.NewInt(ri)
		}
		return fns.b(new(big.Int), lb, rb)
	}

	lf, lFloat := asFloat64(left)
	rf, rFloat := asFloat64(right)
	li, lInt := asInt64(left)
	ri, rInt := asInt64(right)
	switch {
	case lFloat && rFloat:
		return fns.f(lf, rf)
	case lFloat && rInt:
		return fns.f(lf, float64(ri))
	case lInt && rFloat:
		return fns.f(float64(li), rf)
	case lInt && rInt:
		c, ok := fns.i(li, ri)
		if ok || !promote {
			return c
		}
		return fns.b(new(big.Int), big.NewInt(li), big.NewInt(ri))
	}
	operandMismatch(name, left, right)
	return nil
}

// bitwiseCombine runs & or | over integers and bools.
func bitwiseCombine(name string, left, right any, and bool) any {
	if lv, ok := left.(bool); ok {
		if rv, ok := right.(bool); ok {
			if and {
				return lv && rv
			}
			return lv || rv
		}
	}
	li, lok := asInt64(left)
	ri, rok := asInt64(right)
	if lok && rok {
		if and {
			return li & ri
		}
		return li | ri
	}
	operandMismatch(name, left, right)
	return nil
}

// compareNum orders two numeric operands across the tower. Floats and
// *big.Int do not mix.
func compareNum(left, right any) (int, bool) {
	lb, lBig := left.(*big.Int)
	rb, rBig := right.(*big.Int)
	if lBig || rBig {
		if !lBig {
			li, ok := asInt64(left)
			if !ok {
				return 0, false
			}
			lb = big.NewInt(li)
		}
		if !rBig {
			ri, ok := asInt64(right)
			if !ok {
				return 0, false
			}
			rb = big.NewInt(ri)
		}
		return lb.Cmp(rb), true
	}

	lf, lFloat := asFloat64(left)
	rf, rFloat := asFloat64(right)
	li, lInt := asInt64(left)
	ri, rInt := asInt64(right)
	switch {
	case lInt && rInt:
		switch {
		case li < ri:
			return -1, true
		case li > ri:
			return 1, true
		}
		return 0, true
	case lFloat || rFloat:
		if lInt {
			lf = float64(li)
		} else if !lFloat {
			return 0, false
		}
		if rInt {
			rf = float64(ri)
		} else if !rFloat {
			return 0, false
		}
		switch {
		case lf < rf:
			return -1, true
		case lf > rf:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// orderCombine runs min or max, returning the chosen operand as it was
// given; ordering selects, it does not promote.
func orderCombine(name string, left, right any, wantLess bool) any {
	if ls, lok := left.(string); lok {
		if rs, rok := right.(string); rok {
			if wantLess == (ls <= rs) {
				return left
			}
			return right
		}
	}
	if c, ok := compareNum(left, right); ok {
		if wantLess {
			if c <= 0 {
				return left
			}
			return right
		}
		if c >= 0 {
			return left
		}
		return right
	}
	operandMismatch(name, left, right)
	return nil
}

//go:noinline
func operandMismatch(name string, left, right any) {
	panic(fmt.Sprintf("neutral: %s: unsupported operands %T and %T", name, left, right))
}
