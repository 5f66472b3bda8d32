package qm_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/boolalg/expr"
	"github.com/nihei9/boolalg/qm"
	"github.com/nihei9/boolalg/rewrite"
)

func simplify(t *testing.T, src string) expr.Node {
	t.Helper()
	n, err := expr.Parse(src)
	require.NoError(t, err)
	return rewrite.Normalize(n)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sop := simplify(t, "a*b + a*!c")
	order := qm.VarOrder(sop)
	implicants, contradictory, err := qm.Encode(sop, order)
	require.NoError(t, err)
	require.Len(t, implicants, 2)
	for _, bad := range contradictory {
		assert.False(t, bad)
	}

	for _, im := range implicants {
		decoded := qm.Decode(im, order)
		// Round-tripping a single term must reproduce a two-variable product.
		prod, ok := decoded.(*expr.Prod)
		require.True(t, ok, "decoded term is not a product: %v", decoded.String())
		assert.Len(t, prod.Children, 2)
	}
}

func TestEncodeFlagsContradiction(t *testing.T) {
	sop := simplify(t, "a * !a")
	order := qm.VarOrder(sop)
	implicants, contradictory, err := qm.Encode(sop, order)
	require.NoError(t, err)
	require.Len(t, implicants, 1)
	assert.True(t, contradictory[0])
}

func TestEncodeRejectsNestedSum(t *testing.T) {
	// A Sum directly under a Sum cannot arise from rewrite.Normalize; build
	// it by hand to exercise the invariant check.
	bad := &expr.Sum{Children: []expr.Node{
		&expr.Sum{Children: []expr.Node{&expr.Var{Name: "a"}}},
	}}
	_, _, err := qm.Encode(bad, []string{"a"})
	assert.Error(t, err)
}

func TestMinimize(t *testing.T) {
	// spec.md §8 scenario 6: a*b*!c + a*!b*!c + b*c must minimize down to
	// the 2-term ((a * ! c) + (b * c)), absorbing both 3-variable products
	// into the implicants merged from them rather than leaving them beside
	// their own merges.
	sop := simplify(t, "a*b*!c + a*!b*!c + b*c")
	order := qm.VarOrder(sop)
	implicants, _, err := qm.Encode(sop, order)
	require.NoError(t, err)

	minimized := qm.Minimize(implicants)
	require.Len(t, minimized, 2)

	terms := make([]expr.Node, len(minimized))
	for i, im := range minimized {
		terms[i] = qm.Decode(im, order)
	}
	got := rewrite.Normalize(&expr.Sum{Children: terms})
	assert.Equal(t, "((a * ! c) + (b * c))", got.String())
}

func TestMinimizeDedupesIdenticalTerms(t *testing.T) {
	sop := simplify(t, "a + a + a")
	order := qm.VarOrder(sop)
	implicants, _, err := qm.Encode(sop, order)
	require.NoError(t, err)

	minimized := qm.Minimize(implicants)
	assert.Len(t, minimized, 1)
}

func TestVarOrderIsSortedAndDedupedAcrossTerms(t *testing.T) {
	sop := simplify(t, "c*a + b + c*a")
	order := qm.VarOrder(sop)

	want := []string{"a", "b", "c"}
	sort.Strings(want)
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("VarOrder mismatch (-want +got):\n%v", diff)
	}
}
