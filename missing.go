// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral

// Missing is the absent-value marker. It stands for a value that is not
// there, such as a gap in a sequence, and propagates through
// operations that implement [MissingPropagator].
type Missing struct{}

// String renders the marker for diagnostics.
func (Missing) String() string { return "missing" }

// MissingPropagator is implemented by operations through which [Missing]
// propagates: op(missing, x) and op(x, missing) are both missing. Of the
// standard operations only Min and Max propagate: an absent reading makes
// the smallest/largest element unknowable, whereas sums conventionally skip
// what is not there.
type MissingPropagator interface {
	Op
	// PropagateMissing returns the propagated value for an application
	// with a missing operand.
	PropagateMissing() any
}

// Propagating is an embeddable zero-size type implementing the propagation
// rule for [MissingPropagator]: the result is the [Missing] marker itself.
type Propagating struct{}

// PropagateMissing implements [MissingPropagator].
func (Propagating) PropagateMissing() any { return Missing{} }

// MissingAbsorber is the disambiguation trait. For an operation that both
// absorbs its identity on the left (rule: return the right operand, any
// type) and propagates [Missing] (rule: return missing, any other operand),
// the application op(Id(op), missing) matches both rules equally well.
// Implementing AbsorbMissing breaks exactly that tie. The result must be
// the marker unchanged; the two tied rules already agree on it, so the
// tie-break never changes semantics, it only removes the ambiguity.
//
// The trait is installed per conflicting (operation, Missing) pair; of the
// standard operations, Min and Max carry it. A propagating operation
// without it panics on the ambiguous application instead of silently
// picking a rule.
type MissingAbsorber interface {
	MissingPropagator
	// AbsorbMissing resolves op(Id(op), missing), returning the marker
	// unchanged.
	AbsorbMissing(m Missing) Missing
}
