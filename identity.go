// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral

import (
	"fmt"
	"reflect"
)

// Identity is the universal left identity for the operation whose marker
// type is O. It carries no payload: all behavior is determined by the tag
// type O and the traits O implements. One canonical value exists per tag by
// construction: Identity[O]{} is the same value wherever it is built.
//
// Example:
//
//	seed := neutral.Id(neutral.Add)
//	neutral.Absorb(seed, 42) // 42
type Identity[O any] struct{}

// Id constructs the identity value for op.
//
// Construction is pure, total, and constant-time. op itself is used only for
// type inference; no runtime value is captured. Id works for any operation,
// registered or not; an identity whose tag has no absorption rule is an
// inert placeholder that [IsKnown] reports as false and that no dispatch
// rule will absorb.
func Id[O any](op O) Identity[O] {
	return Identity[O]{}
}

// IsKnown reports whether the identity's operation tag has a registered
// absorption rule. IsKnown(Id(op)) agrees with [HasIdentity](op) for every
// op.
func IsKnown[O any](_ Identity[O]) bool {
	return HasIdentityFor[O]()
}

// tagged is the structural interface through which [Combine] recognizes
// identity values flowing through the dynamic layer as any.
type tagged interface {
	identityTag() reflect.Type
}

func (Identity[O]) identityTag() reflect.Type {
	return reflect.TypeFor[O]()
}

// String renders the identity for diagnostics. A registered identity renders
// using the operation's display name, Id(+); an unregistered tag renders
// structurally, Identity[main.adhocOp].
func (id Identity[O]) String() string {
	var op O
	if a, ok := any(op).(Absorber); ok {
		return "Id(" + a.Name() + ")"
	}
	return fmt.Sprintf("Identity[%T]", op)
}
