package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/boolalg/expr"
)

func TestVarSetIsSortedAndDeduped(t *testing.T) {
	n, err := expr.Parse("c and a or b and c or a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, expr.VarSet(n))
}

func TestEqualIsOrderSensitiveStructuralEquality(t *testing.T) {
	a, err := expr.Parse("a and b")
	require.NoError(t, err)
	b, err := expr.Parse("a and b")
	require.NoError(t, err)
	swapped, err := expr.Parse("b and a")
	require.NoError(t, err)

	assert.True(t, expr.Equal(a, b))
	assert.False(t, expr.Equal(a, swapped))
}

func TestStringWrapsMultiChildNodesOnly(t *testing.T) {
	single := &expr.Sum{Children: []expr.Node{&expr.Var{Name: "x"}}}
	assert.Equal(t, "x", single.String())

	multi := &expr.Sum{Children: []expr.Node{&expr.Var{Name: "x"}, &expr.Var{Name: "y"}}}
	assert.Equal(t, "(x + y)", multi.String())
}
