// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral

import "reflect"

// Dynamic application layer: dispatch over operands typed as any.
// The static layer (Absorb, AsFloat64, ...) turns misuse into compile
// errors; this layer is the heterogeneous-fold path, where the same
// conditions surface as neutral-prefixed panics.

// Combiner is the trait carrying an operation's value kernel: the behavior
// of op on ordinary operands, after the identity and missing rules have had
// their chance. All standard operations implement it.
type Combiner interface {
	Op
	// CombineValues applies the operation to two ordinary operands.
	CombineValues(left, right any) any
}

// Combine applies op to (left, right) through the dispatch rules, most
// specific first:
//
//  1. op(Id(op), missing) for a propagating op — the registered
//     [MissingAbsorber] tie-break, or an ambiguity panic without one
//  2. op(Id(op), x) — the registered absorption rule
//  3. op(missing, x), op(x, missing) — missing propagation
//  4. the operation's own [Combiner] kernel
//
// An identity tagged for a different operation is not absorbed; it falls
// through to the kernel like any other operand.
func Combine(op Op, left, right any) any {
	idLeft := false
	if t, ok := left.(tagged); ok {
		idLeft = t.identityTag() == reflect.TypeOf(op)
	}
	_, missingRight := right.(Missing)

	if idLeft && missingRight {
		if p, ok := op.(MissingPropagator); ok {
			d, ok := p.(MissingAbsorber)
			if !ok {
				ambiguousDispatch(op.Name())
			}
			return d.AbsorbMissing(Missing{})
		}
	}
	if idLeft {
		a, ok := op.(Absorber)
		if !ok {
			unregisteredIdentity(op.Name())
		}
		return a.AbsorbIdentity(right)
	}
	if p, ok := op.(MissingPropagator); ok {
		_, missingLeft := left.(Missing)
		if missingLeft || missingRight {
			return p.PropagateMissing()
		}
	}
	c, ok := op.(Combiner)
	if !ok {
		unhandledOperands(op.Name())
	}
	return c.CombineValues(left, right)
}

// Panic helpers are extracted as noinline functions so that Combine and the
// arithmetic kernels remain inlineable.

//go:noinline
func ambiguousDispatch(name string) {
	panic("neutral: ambiguous dispatch for " + name + "(Id(" + name +
		"), missing): absorption and missing propagation tie and no " +
		"disambiguation rule is installed")
}

//go:noinline
func unregisteredIdentity(name string) {
	panic("neutral: no identity registered for " + name)
}

//go:noinline
func unhandledOperands(name string) {
	panic("neutral: " + name + " has no value kernel")
}
