// Package boolalg ties together the lexer, parser, rewrite engine, and
// Quine-McCluskey minimizer into the single operation the CLI exposes:
// parsing and fully simplifying a boolean expression.
package boolalg

import (
	"github.com/nihei9/boolalg/expr"
	"github.com/nihei9/boolalg/qm"
)

// Simplify parses src and returns spec.md §4.3's complete_simplify result:
// the algebraic fixed point followed by Quine-McCluskey minimization. This
// is the tool's one simplification operation — spec.md does not define a
// "simplify without minimizing" mode, so there is no flag to skip the
// minimizer here.
func Simplify(src string) (string, error) {
	n, err := expr.Parse(src)
	if err != nil {
		return "", err
	}
	result, _, err := qm.CompleteSimplify(n)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}
