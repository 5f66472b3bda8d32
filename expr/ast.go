// Package expr implements the surface lexer, parser, and expression-tree
// data model for boolalg's input algebra: variables, NOT, AND, OR, and
// parentheses.
package expr

import "strings"

// Node is any node of an expression tree: Var, Not, Prod, or Sum.
//
// Following the teacher's one-struct-per-case AST (RootNode/ProductionNode/
// AlternativeNode in the grammar-definition parser this project is adapted
// from), the four cases below are distinct structs dispatched on by type
// switch, not an inheritance hierarchy.
type Node interface {
	String() string
	// Vars adds every variable name the node mentions to set.
	Vars(set map[string]struct{})
}

// Var is a leaf node holding an identifier.
type Var struct {
	Name string
}

func (v *Var) String() string { return v.Name }

func (v *Var) Vars(set map[string]struct{}) { set[v.Name] = struct{}{} }

// Not is unary negation; it exclusively owns Child.
type Not struct {
	Child Node
}

func (n *Not) String() string { return "! " + n.Child.String() }

func (n *Not) Vars(set map[string]struct{}) { n.Child.Vars(set) }

// Prod is associative AND over an ordered list of children. Child order is
// cosmetic, not semantic.
type Prod struct {
	Children []Node
}

func (p *Prod) String() string { return wrap(p.Children, " * ") }

func (p *Prod) Vars(set map[string]struct{}) {
	for _, c := range p.Children {
		c.Vars(set)
	}
}

// Sum is associative OR over an ordered list of children. normalized caches
// sub-trees the rewrite engine has already confirmed are fully simplified
// between passes of its fixed-point loop (spec.md §4.3); it is always empty
// outside that loop; no client of this package ever needs to read it.
type Sum struct {
	Children []Node

	// Normalized is exported only so the rewrite package can maintain it
	// across fixed-point passes; no other caller should read or write it,
	// and it is always empty by the time complete_simplify returns.
	Normalized []Node
}

func (s *Sum) String() string { return wrap(s.Children, " + ") }

func (s *Sum) Vars(set map[string]struct{}) {
	for _, c := range s.Children {
		c.Vars(set)
	}
}

func wrap(children []Node, sep string) string {
	if len(children) == 1 {
		return children[0].String()
	}
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// VarSet returns the sorted, de-duplicated list of variable names n
// mentions.
func VarSet(n Node) []string {
	set := map[string]struct{}{}
	n.Vars(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

// sortStrings is a tiny insertion sort: the variable counts this package
// deals with are small enough that pulling in "sort" for a one-line call
// site isn't worth it, and it keeps VarSet's output order obviously
// deterministic to a reader without checking sort.Strings' doc comment.
func sortStrings(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
}

// Equal reports whether a and b are structurally identical, order-respecting
// deep comparisons of children — used by the rewrite engine's fixed-point
// loop, which must compare trees by value, never by address.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Not:
		b, ok := b.(*Not)
		return ok && Equal(a.Child, b.Child)
	case *Prod:
		b, ok := b.(*Prod)
		return ok && equalChildren(a.Children, b.Children)
	case *Sum:
		b, ok := b.(*Sum)
		return ok && equalChildren(a.Children, b.Children)
	default:
		return false
	}
}

func equalChildren(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
