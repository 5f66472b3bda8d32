package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/boolalg/driver/eval"
	"github.com/nihei9/boolalg/expr"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src        string
		assignment map[string]bool
		want       bool
	}{
		{"a * b", map[string]bool{"a": true, "b": true}, true},
		{"a * b", map[string]bool{"a": true, "b": false}, false},
		{"a + b", map[string]bool{"a": false, "b": true}, true},
		{"a + b", map[string]bool{"a": false, "b": false}, false},
		{"!a", map[string]bool{"a": true}, false},
		{"!a", map[string]bool{"a": false}, true},
		{"a * (b + c)", map[string]bool{"a": true, "b": false, "c": true}, true},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			n, err := expr.Parse(tc.src)
			require.NoError(t, err)
			got, err := eval.Eval(n, tc.assignment)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	n, err := expr.Parse("a * b")
	require.NoError(t, err)
	_, err = eval.Eval(n, map[string]bool{"a": true})
	assert.Error(t, err)
}
