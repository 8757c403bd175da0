// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package neutral_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/neutral"
)

const propertyN = 1000

// fold is the seeded left fold every property here exercises. The library
// deliberately ships no fold of its own; this is how a consumer writes one.
func fold(op neutral.Op, seed any, xs ...any) any {
	acc := seed
	for _, x := range xs {
		acc = neutral.Combine(op, acc, x)
	}
	return acc
}

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [1, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(8) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// TestPropertyAbsorptionLaw: op(Id(op), x) ≡ x for every standard op.
func TestPropertyAbsorptionLaw(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		for _, sid := range standardIdentities {
			got := neutral.Combine(sid.op, sid.id, x)
			if got != any(x) {
				t.Fatalf("%s(Id, %d) = %v, want %d", sid.op.Name(), x, got, x)
			}
		}
	}
}

// TestPropertyFoldSumSeeded: folding + with seed Id(+) ≡ plain summation.
func TestPropertyFoldSumSeeded(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(10)
		xs := make([]any, n)
		var want int64
		for i := range xs {
			v := int64(randInt(rng))
			xs[i] = v
			want += v
		}
		got := fold(neutral.Add, neutral.Id(neutral.Add), xs...)
		if n == 0 {
			// Folding nothing returns the seed itself, still unknown-typed.
			if got != any(neutral.Id(neutral.Add)) {
				t.Fatalf("empty fold = %v, want the seed", got)
			}
			continue
		}
		if got != any(want) {
			t.Fatalf("fold(+) = %v, want %d (xs=%v)", got, want, xs)
		}
	}
}

// TestPropertyFoldMinSeeded: folding min with seed Id(min) picks the least
// element, whatever its position.
func TestPropertyFoldMinSeeded(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(9) + 1
		xs := make([]any, n)
		want := 1001
		for i := range xs {
			v := randInt(rng)
			xs[i] = v
			if v < want {
				want = v
			}
		}
		got := fold(neutral.Min, neutral.Id(neutral.Min), xs...)
		if got != any(want) {
			t.Fatalf("fold(min) = %v, want %d (xs=%v)", got, want, xs)
		}
	}
}

// TestPropertyFoldMaxStrings: max over strings with the adaptive seed.
func TestPropertyFoldMaxStrings(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(5) + 1
		xs := make([]any, n)
		want := ""
		for i := range xs {
			s := randString(rng)
			xs[i] = s
			if s > want {
				want = s
			}
		}
		got := fold(neutral.Max, neutral.Id(neutral.Max), xs...)
		if got != any(want) {
			t.Fatalf("fold(max) = %v, want %q (xs=%q)", got, want, xs)
		}
	}
}

// TestPropertySeededEqualsExplicitSeed: an Id(op) seed behaves exactly like
// the type-specific neutral seed, for the ops that have one.
func TestPropertySeededEqualsExplicitSeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(8) + 1
		xs := make([]any, n)
		for i := range xs {
			xs[i] = int64(randInt(rng))
		}
		adaptive := fold(neutral.Sum, neutral.Id(neutral.Sum), xs...)
		explicit := fold(neutral.Sum, int64(0), xs...)
		if adaptive != explicit {
			t.Fatalf("seeded fold %v != explicit fold %v (xs=%v)", adaptive, explicit, xs)
		}
	}
}

func TestFoldAddOneTwoThree(t *testing.T) {
	got := fold(neutral.Add, neutral.Id(neutral.Add), 1, 2, 3)
	if got != any(int64(6)) {
		t.Fatalf("fold(+, Id, 1 2 3) = %v, want 6", got)
	}
}

// appendOp collects operands into a container; its identity case builds a
// fresh container around the first operand, a hand-written transforming
// rule rather than the Absorbing default.
type appendOp struct{}

func (appendOp) Name() string { return "append" }

func (appendOp) AbsorbIdentity(right any) any { return []any{right} }

func (appendOp) CombineValues(left, right any) any {
	return append(left.([]any), right)
}

func TestFoldAppendHeterogeneous(t *testing.T) {
	if !neutral.HasIdentity(appendOp{}) {
		t.Fatal("hand-registered appendOp not recognized")
	}
	seeded := fold(appendOp{}, neutral.Id(appendOp{}), 1, neutral.Missing{}, 2.0).([]any)
	explicit := fold(appendOp{}, []any{}, 1, neutral.Missing{}, 2.0).([]any)
	if len(seeded) != 3 || len(explicit) != 3 {
		t.Fatalf("lengths %d and %d, want 3", len(seeded), len(explicit))
	}
	for i := range seeded {
		if seeded[i] != explicit[i] {
			t.Fatalf("element %d: %v != %v", i, seeded[i], explicit[i])
		}
	}
	if seeded[0] != any(1) || seeded[1] != any(neutral.Missing{}) || seeded[2] != any(2.0) {
		t.Fatalf("unexpected contents %v", seeded)
	}
}

// TestPropertyFoldMinWithMissing: one absent reading makes the whole min
// unknowable, regardless of where it sits.
func TestPropertyFoldMinWithMissing(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(6) + 1
		xs := make([]any, n)
		for i := range xs {
			xs[i] = randInt(rng)
		}
		xs[rng.IntN(n)] = neutral.Missing{}
		got := fold(neutral.Min, neutral.Id(neutral.Min), xs...)
		if got != any(neutral.Missing{}) {
			t.Fatalf("fold(min) over %v = %v, want missing", xs, got)
		}
	}
}
