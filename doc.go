// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package neutral provides a universal left identity for binary operations.
//
// For an operation op, the value [Id](op) is a zero-size singleton that op
// absorbs on the left: op(Id(op), x) returns x for any x, regardless of x's
// type. Generic folds use it to seed accumulation with a neutral value that
// adapts itself to whatever element type flows through, instead of requiring
// a type-specific zero/one/empty seed from the caller.
//
// # Design Philosophy
//
// neutral provides:
//   - Zero-size, type-tagged identity values with no runtime registry
//   - Registration as trait implementation, checked at compile time
//   - A dynamic application layer for heterogeneous folds
//
// # Identity Values
//
// [Identity] is parametrized by the operation's marker type (the operation
// tag), so the type system distinguishes [Id](Add) from [Id](Min) and can
// reject misuse before the program runs:
//
//   - [Identity]: zero-size identity value tagged by an operation marker type
//   - [Id]: Construct the identity for an operation
//   - [IsKnown]: Report whether an identity's tag has a registered rule
//
// Construction is pure and constant-time. Two constructions for the same
// operation yield equal values. A registered identity renders as Id(<name>);
// an unregistered tag renders structurally.
//
// # Registration
//
// An operation registers its identity by implementing [Absorber]: the
// AbsorbIdentity method is the absorption rule, and implementing it is the
// registration record. Embed [Absorbing] for the default rule (return the
// right operand unchanged), or write the method by hand for operations whose
// identity case builds a fresh value (an append-like operation returning a
// container). Implementing the method twice is a compile-time ambiguous
// selector, so re-registration cannot silently diverge.
//
//   - [Op]: Interface for operation markers
//   - [Absorber]: Registration trait carrying the absorption rule
//   - [Absorbing]: Embeddable default absorption rule
//   - [Absorb]: Static absorption — compiles only for registered operations
//   - [HasIdentity], [HasIdentityFor]: Known-identity queries
//
// Operation markers must be stateless comparable values; a throwaway closure
// cannot register an identity (querying one simply answers false).
//
// # Dynamic Application
//
// [Combine] applies an operation to operands of any type, dispatching through
// structural interface assertions: disambiguation overrides first, then
// identity absorption, then missing propagation, then the operation's own
// kernel. Folds over heterogeneous sequences go through this layer. Misuse
// that the static layer rejects at compile time panics here with a
// neutral-prefixed diagnostic.
//
//   - [Combine]: Apply an operation through the dispatch rules
//   - [Combiner]: Trait carrying an operation's value kernel
//
// # Missing Propagation and Disambiguation
//
// [Missing] is the absent-value marker. Operations implementing
// [MissingPropagator] (Min, Max) propagate it: op(x, missing) is missing.
// When the left operand is the operation's own identity and the right is
// Missing, the absorption rule and the propagation rule match equally well;
// [MissingAbsorber] is the explicit tie-break, installed only for the
// (operation, Missing) pairs known to conflict. Its result is the marker
// unchanged; both tied rules agree on it. A propagating operation without
// the tie-break panics with an ambiguity diagnostic rather than silently
// picking a rule.
//
// # Numeric Materialization
//
// Identities of addition-like operations classify as additive, identities of
// multiplication-like operations as multiplicative, via the [Grouped] trait.
// Materialization is total over the two groups and does not compile
// elsewhere; there is deliberately no rule mapping min/max identities to
// infinity sentinels.
//
//   - [Group], [Additive], [Multiplicative]: Classification
//   - [AsFloat64], [AsInt64]: Materialize as 0/1 of the builtin types
//   - [ConvertTo]: Materialize as the target numeric type's zero/one
//   - [AsString], [Unital]: Text neutral representative, multiplicative only
//
// # Standard Operations
//
// Eight operations ship registered: [Add], [Mul], [BitAnd], [BitOr], [Min],
// [Max], and the numeric-promoting [Sum] and [Prod]. Min and Max carry the
// Missing tie-break. Sum and Prod promote narrow integers to int64 and
// overflow to *big.Int.
//
// # Concurrency
//
// Every value here is immutable and zero-size; all registration is static
// trait implementation resolved before the program runs. There is nothing to
// synchronize and nothing to race on.
package neutral
