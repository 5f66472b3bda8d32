// Package oracle implements boolalg's equivalence check: a random-sampling
// comparison of two expression trees' truth tables (spec.md §4.6).
package oracle

import (
	"fmt"
	"math/rand"

	"github.com/nihei9/boolalg/driver/eval"
	"github.com/nihei9/boolalg/expr"
)

// DefaultTrials is the sample count Equivalent draws when a caller passes
// trials <= 0. spec.md asks for "at least 1000 trials"; 2000 is chosen to
// leave margin against the birthday-paradox-style false-equivalence risk on
// expressions with many variables, at negligible added cost.
const DefaultTrials = 2000

// Mismatch is returned by Equivalent when a and b disagree: the assignment
// that triggered the disagreement, and each side's result under it.
type Mismatch struct {
	Assignment map[string]bool
	Left       bool
	Right      bool
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("disagreement at %v: left=%v right=%v", m.Assignment, m.Left, m.Right)
}

// Equivalent reports whether a and b agree on every sampled assignment.
// spec.md requires only that implementations check equal variable
// cardinality between the two trees before sampling; Equivalent instead
// checks full variable-set equality, the "stricter implementation" spec.md
// invites, since the cost of doing so is already paid computing the
// variable ordering. trials <= 0 defaults to DefaultTrials. rng nil defaults
// to a new rand.Rand seeded from rand.NewSource(1), for deterministic tests;
// callers that want non-deterministic sampling should pass their own
// rand.Rand seeded from a time source.
//
// On a mismatch, Equivalent returns (false, *Mismatch) naming the first
// counterexample found rather than (false, nil), so a caller can report
// something actionable instead of a bare "not equivalent".
func Equivalent(a, b expr.Node, trials int, rng *rand.Rand) (bool, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	varsA := expr.VarSet(a)
	varsB := expr.VarSet(b)
	if len(varsA) != len(varsB) {
		return false, nil
	}
	names := make([]string, len(varsA))
	copy(names, varsA)
	seen := make(map[string]struct{}, len(varsA))
	for _, n := range varsA {
		seen[n] = struct{}{}
	}
	for _, n := range varsB {
		if _, ok := seen[n]; !ok {
			return false, nil
		}
	}

	for i := 0; i < trials; i++ {
		assignment := make(map[string]bool, len(names))
		for _, name := range names {
			assignment[name] = rng.Intn(2) == 1
		}
		va, err := eval.Eval(a, assignment)
		if err != nil {
			return false, err
		}
		vb, err := eval.Eval(b, assignment)
		if err != nil {
			return false, err
		}
		if va != vb {
			return false, &Mismatch{Assignment: assignment, Left: va, Right: vb}
		}
	}
	return true, nil
}
