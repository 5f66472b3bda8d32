// Package qm implements the prime-implicant encoding of a sum-of-products
// tree and the Quine-McCluskey minimization pass over the resulting set of
// trit.Vectors (spec.md §4.4, §4.5).
package qm

import (
	"sort"

	boolerr "github.com/nihei9/boolalg/error"
	"github.com/nihei9/boolalg/expr"
	"github.com/nihei9/boolalg/expr/trit"
	"github.com/nihei9/boolalg/rewrite"
)

// Implicant is a single term of a sum-of-products expression, encoded as a
// ternary vector over a variable ordering external to this package (see
// VarOrder). Two Implicants with equal Vec are the same term regardless of
// the literal order their source product listed variables in.
type Implicant struct {
	Vec trit.Vector
}

// VarOrder returns the sorted, de-duplicated list of variable names root
// mentions. The index of a name in the returned slice is its position in
// every trit.Vector built against root.
func VarOrder(root expr.Node) []string {
	return expr.VarSet(root)
}

// Encode walks each top-level product of sop (a tree already in sum-of-
// products form, i.e. the output of rewrite.Normalize) and builds one
// Implicant per product, encoding each product's literals against order.
//
// A bare Var or Not(Var) at the top of sop (the single-child-collapsed
// shapes rewrite.Normalize can produce) is treated as a one-term sum.
// A Prod contributes exactly one Implicant.
//
// A variable appearing both positively and negatively within the same
// product is a contradiction — that product is never satisfiable — but
// spec.md §9 documents the historical encoding as an all-Any vector, which
// decodes back to a constant-true term. Encode preserves that behavior for
// compatibility, and additionally returns a same-length []bool reporting
// which implicants came from a contradictory product, so a caller that
// wants to warn (rather than silently minimize away a false term as if it
// were true) can do so.
//
// Encode returns *boolerr.ShapeError if sop is a Sum and any of its
// top-level children is itself a Sum — that shape only arises from a rewrite-engine
// invariant violation, since rewrite.Normalize never nests a Sum
// under another Sum.
func Encode(sop expr.Node, order []string) ([]Implicant, []bool, error) {
	terms, err := sopTerms(sop)
	if err != nil {
		return nil, nil, err
	}

	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}

	implicants := make([]Implicant, len(terms))
	contradictory := make([]bool, len(terms))
	for i, term := range terms {
		vec, bad, err := encodeTerm(term, order, index)
		if err != nil {
			return nil, nil, err
		}
		implicants[i] = Implicant{Vec: vec}
		contradictory[i] = bad
	}
	return implicants, contradictory, nil
}

// sopTerms returns the top-level product terms of a sum-of-products tree:
// the children of a root Sum, or a single-element slice holding the root
// itself if it is not a Sum (the collapsed single-term shape).
func sopTerms(sop expr.Node) ([]expr.Node, error) {
	if s, ok := sop.(*expr.Sum); ok {
		for _, c := range s.Children {
			if _, ok := c.(*expr.Sum); ok {
				return nil, &boolerr.ShapeError{Got: "Sum"}
			}
		}
		return s.Children, nil
	}
	return []expr.Node{sop}, nil
}

// literal is one factor of a product: a variable, possibly negated.
type literal struct {
	name    string
	negated bool
}

// termLiterals flattens a single top-level term (a Prod, a bare Var, or a
// Not(Var)) into its literals.
func termLiterals(term expr.Node) ([]literal, error) {
	switch t := term.(type) {
	case *expr.Var:
		return []literal{{name: t.Name}}, nil
	case *expr.Not:
		v, ok := t.Child.(*expr.Var)
		if !ok {
			return nil, &boolerr.ShapeError{Got: "Not of non-Var"}
		}
		return []literal{{name: v.Name, negated: true}}, nil
	case *expr.Prod:
		lits := make([]literal, 0, len(t.Children))
		for _, c := range t.Children {
			switch cc := c.(type) {
			case *expr.Var:
				lits = append(lits, literal{name: cc.Name})
			case *expr.Not:
				v, ok := cc.Child.(*expr.Var)
				if !ok {
					return nil, &boolerr.ShapeError{Got: "Not of non-Var"}
				}
				lits = append(lits, literal{name: v.Name, negated: true})
			default:
				return nil, &boolerr.ShapeError{Got: "nested Sum or Prod"}
			}
		}
		return lits, nil
	default:
		return nil, &boolerr.ShapeError{Got: "unrecognized node"}
	}
}

// encodeTerm builds a trit.Vector for one product term, deduping repeated
// mentions of the same variable and flagging a contradiction when a
// variable appears both positively and negatively.
func encodeTerm(term expr.Node, order []string, index map[string]int) (trit.Vector, bool, error) {
	lits, err := termLiterals(term)
	if err != nil {
		return trit.Vector{}, false, err
	}

	seen := make(map[string]trit.Trit, len(lits))
	contradictory := false
	for _, lit := range lits {
		want := trit.Yes
		if lit.negated {
			want = trit.No
		}
		if prior, ok := seen[lit.name]; ok && prior != want {
			contradictory = true
			continue
		}
		seen[lit.name] = want
	}

	vec := trit.New(len(order))
	if contradictory {
		// Historical encoding: a contradictory product encodes as all-Any,
		// which Decode turns back into constant-true (spec.md §9).
		return vec, true, nil
	}
	for name, t := range seen {
		i, ok := index[name]
		if !ok {
			continue
		}
		vec = vec.Set(i, t)
	}
	return vec, false, nil
}

// Decode reverses Encode: it builds the product of literals named by
// im.Vec's Yes/No positions (Any positions contribute nothing), then fully
// simplifies the result so a single-trit implicant decays to its bare
// literal. An all-Any vector has no literal to build a product from; since
// this algebra has no dedicated true/false node, it instead decodes to a
// tautology over order's first variable (see tautology below).
func Decode(im Implicant, order []string) expr.Node {
	var factors []expr.Node
	for i, name := range order {
		switch im.Vec.At(i) {
		case trit.Yes:
			factors = append(factors, &expr.Var{Name: name})
		case trit.No:
			factors = append(factors, &expr.Not{Child: &expr.Var{Name: name}})
		}
	}
	if len(factors) == 0 {
		return tautology(order)
	}
	return rewrite.Normalize(&expr.Prod{Children: factors})
}

// tautology builds an always-true expression over order's first variable,
// the shape an all-Any implicant decodes to since this algebra has no
// dedicated true/false literal node.
func tautology(order []string) expr.Node {
	name := "x"
	if len(order) > 0 {
		name = order[0]
	}
	return rewrite.Normalize(&expr.Sum{Children: []expr.Node{
		&expr.Var{Name: name},
		&expr.Not{Child: &expr.Var{Name: name}},
	}})
}

// sortImplicants sorts implicants lexicographically by their string form
// (spec.md §4.5's dedup-and-sort step), giving the minimizer's output a
// deterministic order independent of map iteration.
func sortImplicants(implicants []Implicant) {
	sort.Slice(implicants, func(i, j int) bool {
		return implicants[i].Vec.String() < implicants[j].Vec.String()
	})
}
