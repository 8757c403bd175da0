// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral

// Op is the interface for operation markers. A marker is a stateless,
// comparable, zero-size value whose type is the operation tag: two markers
// denote the same operation iff they have the same type.
//
// Example:
//
//	type ConcatOp struct{ neutral.Absorbing }
//
//	func (ConcatOp) Name() string { return "++" }
type Op interface {
	// Name returns the operation's display name, e.g. "+" or "min".
	Name() string
}

// Absorber is the registration trait. Implementing AbsorbIdentity on an
// operation marker is the registration record: it installs the absorption
// rule op(Id(op), x) and makes [HasIdentity] answer true. Embed [Absorbing]
// for the default rule; implement the method by hand when the identity case
// must build a fresh value instead of returning the operand (an append-like
// operation whose identity case returns a new container).
//
// A marker can carry at most one rule: providing AbsorbIdentity twice (two
// embedded providers, or an embedded provider plus a hand-written method on
// an embedded field) is an ambiguous selector and does not compile.
type Absorber interface {
	Op
	// AbsorbIdentity is the absorption rule: the result of applying the
	// operation with its own identity on the left and right on the right.
	AbsorbIdentity(right any) any
}

// Absorbing is an embeddable zero-size type providing the default absorption
// rule: the right operand unchanged. Embedding it in an operation marker
// registers the operation's identity.
type Absorbing struct{}

// AbsorbIdentity implements the default absorption rule for [Absorber].
func (Absorbing) AbsorbIdentity(right any) any { return right }

// HasIdentity reports whether op has a registered identity. It accepts any
// value (an operation marker, an ad-hoc closure, anything) and answers
// false for everything that does not carry the [Absorber] trait. It never
// fails and never guesses.
func HasIdentity(op any) bool {
	_, ok := op.(Absorber)
	return ok
}

// HasIdentityFor is the bare-tag form of [HasIdentity]: it answers for the
// operation tag type O without an instance in hand.
func HasIdentityFor[O any]() bool {
	var op O
	_, ok := any(op).(Absorber)
	return ok
}

// Absorb is the static absorption call: Absorb(Id(op), x) applies op's
// absorption rule with the operand type preserved. The type parameter is
// constrained by [Absorber], so absorbing through an unregistered operation
// does not compile.
//
// Absorb is for rules that return the operand unchanged (everything
// registered via [Absorbing]). An operation registered with a transforming
// rule changes the operand's type; apply it through [Combine] instead.
func Absorb[O Absorber, T any](_ Identity[O], x T) T {
	var op O
	return op.AbsorbIdentity(x).(T)
}
