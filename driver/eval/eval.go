// Package eval evaluates an expression tree against a fixed assignment of
// variable names to boolean values (spec.md §4.6).
package eval

import (
	boolerr "github.com/nihei9/boolalg/error"
	"github.com/nihei9/boolalg/expr"
)

// Eval evaluates n under assignment: OR-any over Sum, AND-all over Prod,
// negation over Not, and a direct lookup over Var. A Var with no entry in
// assignment is a *boolerr.EvalError — a programmer bug, since callers are
// expected to build assignment from expr.VarSet(n) or a superset of it.
func Eval(n expr.Node, assignment map[string]bool) (bool, error) {
	switch n := n.(type) {
	case *expr.Var:
		v, ok := assignment[n.Name]
		if !ok {
			return false, &boolerr.EvalError{Var: n.Name}
		}
		return v, nil
	case *expr.Not:
		v, err := Eval(n.Child, assignment)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *expr.Prod:
		for _, c := range n.Children {
			v, err := Eval(c, assignment)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case *expr.Sum:
		for _, c := range n.Children {
			v, err := Eval(c, assignment)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, &boolerr.ShapeError{Got: "unrecognized node"}
	}
}
