// Package rewrite implements boolalg's core algebraic simplifier: the
// recursive rewrite system that normalizes an arbitrary expression tree into
// sum-of-products form by repeatedly applying unit collapse, flattening, De
// Morgan, and AND-over-OR distribution until a fixed point is reached
// (spec.md §4.3).
package rewrite

import "github.com/nihei9/boolalg/expr"

// maxSimplifiedDepth is the depth bound is_simplified uses to prune the
// rewrite loop's remove/reconstruct bookkeeping (spec.md §4.3, §9: "a magic
// depth constant... its role is heuristic pruning, not correctness").
// Declared as a named constant, not a literal, precisely because spec.md
// calls it out as a tunable.
const maxSimplifiedDepth = 5

// Normalize returns a tree logically equivalent to n in sum-of-
// products form: a Sum of Prods (or a single Prod, a single Not(Var), or a
// single Var), with no Sum nested under any Prod and no Not except directly
// above a Var.
//
// Normalize is the algebraic rewrite stage only — unit collapse, flatten,
// De Morgan, and AND-over-OR distribution to a fixed point. It is NOT
// spec.md §4.3's complete_simplify operation: that operation also invokes
// the Quine-McCluskey minimizer on the resulting root Sum before returning,
// which qm.CompleteSimplify does by composing this function with qm.Encode/
// Minimize/Decode (see DESIGN.md). Callers that want the spec-compliant
// end-to-end simplification must call qm.CompleteSimplify, not this
// function, directly.
//
// The outer loop follows the same "run one full pass, stop when nothing
// changed" idiom as the teacher's grammar.genFirstSet / genFollowSet fixed
// points (grammar/first.go, grammar/follow.go: `for { more := false; ...;
// if !more { break } }`), here applied to whole trees instead of FIRST/
// FOLLOW set entries, and using deep structural equality (expr.Equal)
// rather than a changed-flag, since spec.md requires fixed-point detection
// "by value, not by address".
func Normalize(n expr.Node) expr.Node {
	cur := n
	for {
		if s, ok := cur.(*expr.Sum); ok {
			cur = removeSimplified(s)
		}
		next := simplifiedOnce(cur)
		if expr.Equal(next, cur) {
			cur = next
			break
		}
		cur = next
	}
	if s, ok := cur.(*expr.Sum); ok && len(s.Normalized) > 0 {
		// The side-listed children were skipped by the passes above, so the
		// reconstructed Sum gets one more run to bring them to the fixed point.
		return Normalize(reconstruct(s))
	}
	return cur
}

// isSimplified is the structural predicate of spec.md §4.3: a leaf Var is
// simplified iff it lives no deeper than maxSimplifiedDepth levels from
// where the predicate was first asked; inner nodes are simplified iff every
// child is. It is monotone — once true for a subtree, rewriting that
// subtree in place (unit collapse, flattening, De Morgan, distribution)
// never increases depth enough to make it false again, since every local
// rule either shortens the tree or leaves this subtree untouched.
func isSimplified(n expr.Node, depth int) bool {
	switch n := n.(type) {
	case *expr.Var:
		return depth < maxSimplifiedDepth
	case *expr.Not:
		return isSimplified(n.Child, depth+1)
	case *expr.Prod:
		for _, c := range n.Children {
			if !isSimplified(c, depth+1) {
				return false
			}
		}
		return true
	case *expr.Sum:
		for _, c := range n.Children {
			if !isSimplified(c, depth+1) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// removeSimplified moves every child of s that already satisfies
// isSimplified(depth=0) into s.Normalized, so the next pass of the fixed-
// point loop does not revisit it. If doing so would leave no active
// children at all, it leaves s untouched for this pass instead — an empty-
// children Sum is not a rewriting state this package should ever construct,
// even transiently, and the degenerate "everything is already simplified"
// case is exactly the state the loop is about to detect as a fixed point
// anyway.
func removeSimplified(s *expr.Sum) *expr.Sum {
	var active, newlyNormalized []expr.Node
	for _, c := range s.Children {
		if isSimplified(c, 0) {
			newlyNormalized = append(newlyNormalized, c)
		} else {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return s
	}
	return &expr.Sum{
		Children:   active,
		Normalized: append(append([]expr.Node{}, s.Normalized...), newlyNormalized...),
	}
}

// reconstruct reinserts every side-listed child of s before
// Normalize returns, per spec.md §4.3.
func reconstruct(s *expr.Sum) *expr.Sum {
	if len(s.Normalized) == 0 {
		return s
	}
	return &expr.Sum{
		Children: append(append([]expr.Node{}, s.Children...), s.Normalized...),
	}
}

// simplifiedOnce applies the local rules of spec.md §4.3 by recursive
// descent: children are simplified before the rule for the current node's
// own shape is decided.
func simplifiedOnce(n expr.Node) expr.Node {
	switch n := n.(type) {
	case *expr.Var:
		return n
	case *expr.Not:
		return simplifyNot(n)
	case *expr.Prod:
		return simplifyProd(n)
	case *expr.Sum:
		return simplifySum(n)
	default:
		return n
	}
}

// simplifySum simplifies every child, flattens any child that is itself a
// Sum into this one (rule 2), and collapses a single-child result to its
// sole child (rule 1). Side-listed children in s.Normalized are carried over
// to the result untouched, and a Sum that still has any is not collapsed.
func simplifySum(s *expr.Sum) expr.Node {
	children := make([]expr.Node, 0, len(s.Children))
	for _, c := range s.Children {
		sc := simplifiedOnce(c)
		if nested, ok := sc.(*expr.Sum); ok {
			children = append(children, nested.Children...)
		} else {
			children = append(children, sc)
		}
	}
	if len(children) == 1 && len(s.Normalized) == 0 {
		return children[0]
	}
	return &expr.Sum{Children: children, Normalized: s.Normalized}
}

// simplifyProd simplifies every child, flattens any child that is itself a
// Prod into this one, and — if at least one simplified child is a Sum —
// distributes AND over the leftmost such Sum (rule 4). Otherwise it
// collapses a single-child result to its sole child (rule 1).
func simplifyProd(p *expr.Prod) expr.Node {
	children := make([]expr.Node, 0, len(p.Children))
	for _, c := range p.Children {
		sc := simplifiedOnce(c)
		if nested, ok := sc.(*expr.Prod); ok {
			children = append(children, nested.Children...)
		} else {
			children = append(children, sc)
		}
	}

	sumIdx := -1
	for i, c := range children {
		if _, ok := c.(*expr.Sum); ok {
			sumIdx = i
			break
		}
	}
	if sumIdx == -1 {
		if len(children) == 1 {
			return children[0]
		}
		return &expr.Prod{Children: children}
	}

	sum := children[sumIdx].(*expr.Sum)
	remaining := make([]expr.Node, 0, len(children)-1)
	remaining = append(remaining, children[:sumIdx]...)
	remaining = append(remaining, children[sumIdx+1:]...)

	dist := make([]expr.Node, len(sum.Children))
	for i, term := range sum.Children {
		prodChildren := make([]expr.Node, 0, len(remaining)+1)
		prodChildren = append(prodChildren, remaining...)
		prodChildren = append(prodChildren, term)
		dist[i] = &expr.Prod{Children: prodChildren}
	}
	// "The result is recursively fully-simplified" (spec.md §4.3 rule 4).
	return Normalize(&expr.Sum{Children: dist})
}

// simplifyNot fully simplifies the child to a fixed point before deciding,
// then applies De Morgan (or double-negation elimination, or leaves a
// Not(Var) unchanged).
func simplifyNot(n *expr.Not) expr.Node {
	child := Normalize(n.Child)

	switch c := child.(type) {
	case *expr.Not:
		// Not(Not(x)) -> x, simplified again.
		return simplifiedOnce(c.Child)
	case *expr.Sum:
		negated := make([]expr.Node, len(c.Children))
		for i, term := range c.Children {
			negated[i] = &expr.Not{Child: term}
		}
		// Re-enter simplifiedOnce so that, if negating one of the sum's
		// own terms produces a further Sum (De Morgan can cascade), the
		// resulting Prod is distributed rather than returned as-is.
		return simplifiedOnce(&expr.Prod{Children: negated})
	case *expr.Prod:
		negated := make([]expr.Node, len(c.Children))
		for i, factor := range c.Children {
			negated[i] = &expr.Not{Child: factor}
		}
		return simplifiedOnce(&expr.Sum{Children: negated})
	default:
		// *expr.Var
		return &expr.Not{Child: child}
	}
}
