package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/boolalg/expr"
)

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a", "a"},
		{"a and b", "(a * b)"},
		{"a or b", "(a + b)"},
		{"not a", "! a"},
		{"a and b or c", "((a * b) + c)"},
		{"a or b and c", "(a + (b * c))"},
		{"not a and b", "(! a * b)"},
		{"not (a and b)", "! (a * b)"},
		{"(a or b) and c", "((a + b) * c)"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			n, err := expr.Parse(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.String())
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"a and",
		"(a",
		"a)",
		"and a",
		"1",
		"0",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := expr.Parse(src)
			assert.Error(t, err)
		})
	}
}

func TestParseRoundTripsThroughString(t *testing.T) {
	srcs := []string{
		"a and b",
		"a or b or c",
		"not (a and b)",
		"(a or b) and (c or d)",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			n, err := expr.Parse(src)
			require.NoError(t, err)

			// Reparsing the printed form adds a fresh layer of single-child
			// Sum/Prod wrappers around a parenthesized group, so the trees
			// are compared through String, which prints one-child wrappers
			// as their sole child.
			reparsed, err := expr.Parse(n.String())
			require.NoError(t, err)
			assert.Equal(t, n.String(), reparsed.String())
		})
	}
}
