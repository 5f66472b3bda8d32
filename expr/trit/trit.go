// Package trit implements the ternary-vector encoding the Quine-McCluskey
// minimizer operates on: each prime implicant is a fixed-length vector of
// trits {No, Yes, Any} over the problem's variable ordering.
//
// Vector packs the vector into two uint64 bit-fields (care/value) instead of
// a []Trit slice, the same way the teacher's grammar/symbol.Symbol packs a
// terminal/non-terminal/start/number tag into one uint16 via maskKindPart /
// maskNonTerminal / maskTerminal bit-fields (grammar/symbol/symbol.go). Here
// the two packed fields are "is this position constrained" (care) and "what
// is it constrained to" (value); that turns the hot paths — merge
// eligibility, yes/any counts, equality — into XOR/AND/popcount one-liners.
package trit

import "math/bits"

// Trit is a single ternary digit.
type Trit int

const (
	No Trit = iota
	Yes
	Any
)

func (t Trit) String() string {
	switch t {
	case No:
		return "0"
	case Yes:
		return "1"
	default:
		return "x"
	}
}

// MaxVars is the largest variable count a Vector can represent: one bit per
// variable in each of the two packed uint64 words. spec.md gives no upper
// bound on variable count; this is a deliberate, documented limit (see
// DESIGN.md) rather than an oversight.
const MaxVars = 64

// Vector is a fixed-length, immutable ternary vector aligned with a
// variable ordering external to this package (qm.VarOrder). It is
// comparable, so it can be used directly as a map key for the
// Quine-McCluskey dedup set (spec.md §4.5) with no custom hash function.
type Vector struct {
	care  uint64 // bit i set: position i is No or Yes, not Any
	value uint64 // bit i set: position i is Yes; meaningless where care bit i is 0
	n     int    // number of positions in play, 0 <= n <= MaxVars
}

// New builds a Vector of n positions, all Any, n must be <= MaxVars.
func New(n int) Vector {
	return Vector{n: n}
}

// Set returns a copy of v with position i set to t.
func (v Vector) Set(i int, t Trit) Vector {
	switch t {
	case Any:
		v.care &^= 1 << i
		v.value &^= 1 << i
	case Yes:
		v.care |= 1 << i
		v.value |= 1 << i
	case No:
		v.care |= 1 << i
		v.value &^= 1 << i
	}
	return v
}

// At returns the trit at position i.
func (v Vector) At(i int) Trit {
	if v.care&(1<<i) == 0 {
		return Any
	}
	if v.value&(1<<i) != 0 {
		return Yes
	}
	return No
}

// Len returns the number of positions in v.
func (v Vector) Len() int { return v.n }

// NbYes returns the count of Yes positions.
func (v Vector) NbYes() int { return bits.OnesCount64(v.value & v.care) }

// NbAny returns the count of Any positions.
func (v Vector) NbAny() int { return v.n - bits.OnesCount64(v.care) }

// mask returns the n low bits set, the rest clear. Shifting a uint64 by 64
// yields 0 in Go (not undefined behavior), so n == MaxVars underflows
// 0-1 to all ones — exactly the all-bits mask that case needs.
func mask(n int) uint64 {
	return uint64(1)<<uint(n) - 1
}

// CanMerge reports whether v and w differ in exactly one position, per
// spec.md §4.5's merge rule. A position differs unless both are Any or
// both are cared-for with the same value — so a definite trit and an Any
// at the same position count as differing, exactly like
// original_source/src/mccluskey.rs's can_merge (`zip(...).filter(|(a,
// b)| a != b).count() == 1`), which does NOT require v and w to share
// the same Any positions. That looser rule is what lets a specific
// implicant merge directly against a coarser one that already subsumes
// it, which is what drives absorption in mergeAdjacentBuckets/
// mergeWithinBuckets below.
func (v Vector) CanMerge(w Vector) bool {
	m := mask(v.n)
	bothAny := ^v.care & ^w.care & m
	bothCaredSame := v.care & w.care &^ (v.value ^ w.value) & m
	match := bothAny | bothCaredSame
	return v.n-bits.OnesCount64(match) == 1
}

// Merge merges v and w: the one differing position becomes Any, every
// other position keeps its shared value (Any stays Any, a cared-for
// position keeps its common Yes/No). Merge does not itself validate that
// v and w are merge-eligible; callers check CanMerge first.
func (v Vector) Merge(w Vector) Vector {
	m := mask(v.n)
	outCare := v.care & w.care &^ (v.value ^ w.value) & m
	return Vector{
		care:  outCare,
		value: v.value & outCare,
		n:     v.n,
	}
}

// String renders v as a string of '0'/'1'/'x' characters, most significant
// position (index 0) first — the format spec.md §4.5's sort-by-string-form
// dedup step relies on for a deterministic total order.
func (v Vector) String() string {
	b := make([]byte, v.n)
	for i := 0; i < v.n; i++ {
		switch v.At(i) {
		case Yes:
			b[i] = '1'
		case No:
			b[i] = '0'
		default:
			b[i] = 'x'
		}
	}
	return string(b)
}
