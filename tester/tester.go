// Package tester generates random expression trees for property-based tests
// and formats their pass/fail results, playing the same role for boolalg's
// property tests that the teacher's tester.go played for vartan's
// file-based grammar test cases (ListTestCases / TestResult there; a
// generator and a result formatter here, since boolalg has no on-disk test
// case format to load).
package tester

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nihei9/boolalg/expr"
)

// Result is the outcome of one property-test trial.
type Result struct {
	Name  string
	Error error
}

// String renders r the way the teacher's TestResult.String() rendered a
// grammar test case outcome: "Passed <name>" or a "Failed <name>:" header
// followed by an indented error message.
func (r *Result) String() string {
	if r.Error == nil {
		return fmt.Sprintf("Passed %v", r.Name)
	}
	const indent = "    "
	msgLines := strings.Split(r.Error.Error(), "\n")
	return fmt.Sprintf("Failed %v:\n%v%v", r.Name, indent, strings.Join(msgLines, "\n"+indent))
}

// RandomExpr builds a random expression tree over vars, at most maxDepth
// levels deep, for exercising the rewrite engine and oracle against inputs
// no hand-written test case enumerates. vars must be non-empty.
func RandomExpr(rng *rand.Rand, vars []string, maxDepth int) expr.Node {
	return randomSum(rng, vars, maxDepth)
}

func randomSum(rng *rand.Rand, vars []string, depth int) expr.Node {
	n := 1 + rng.Intn(2)
	children := make([]expr.Node, n)
	for i := range children {
		children[i] = randomProd(rng, vars, depth)
	}
	return &expr.Sum{Children: children}
}

func randomProd(rng *rand.Rand, vars []string, depth int) expr.Node {
	n := 1 + rng.Intn(2)
	children := make([]expr.Node, n)
	for i := range children {
		children[i] = randomNot(rng, vars, depth)
	}
	return &expr.Prod{Children: children}
}

func randomNot(rng *rand.Rand, vars []string, depth int) expr.Node {
	child := randomPrimary(rng, vars, depth)
	if rng.Intn(2) == 0 {
		return child
	}
	return &expr.Not{Child: child}
}

func randomPrimary(rng *rand.Rand, vars []string, depth int) expr.Node {
	if depth <= 0 || rng.Intn(3) != 0 {
		return &expr.Var{Name: vars[rng.Intn(len(vars))]}
	}
	return randomSum(rng, vars, depth-1)
}
