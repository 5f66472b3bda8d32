package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/boolalg/expr"
)

func kinds(toks []expr.Token) []expr.Kind {
	ks := make([]expr.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLex(t *testing.T) {
	tests := []struct {
		src  string
		want []expr.Kind
	}{
		{
			src:  "a and b or not c",
			want: []expr.Kind{expr.KindIdent, expr.KindAnd, expr.KindIdent, expr.KindOr, expr.KindNot, expr.KindIdent, expr.KindEOF},
		},
		{
			src:  "a * b + !c",
			want: []expr.Kind{expr.KindIdent, expr.KindAnd, expr.KindIdent, expr.KindOr, expr.KindNot, expr.KindIdent, expr.KindEOF},
		},
		{
			src:  "(a . b)",
			want: []expr.Kind{expr.KindLParen, expr.KindIdent, expr.KindAnd, expr.KindIdent, expr.KindRParen, expr.KindEOF},
		},
		{
			src:  "1 0",
			want: []expr.Kind{expr.KindTrue, expr.KindFalse, expr.KindEOF},
		},
		{
			src:  "  a\t\n+\rb  ",
			want: []expr.Kind{expr.KindIdent, expr.KindOr, expr.KindIdent, expr.KindEOF},
		},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			toks, err := expr.Lex(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, kinds(toks))
		})
	}
}

func TestLexKeywordsAreCaseSensitive(t *testing.T) {
	toks, err := expr.Lex("AND")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, expr.KindIdent, toks[0].Kind)
	assert.Equal(t, "AND", toks[0].Text)
}

func TestLexWhitespaceInvariance(t *testing.T) {
	tight, err := expr.Lex("a+b*c")
	require.NoError(t, err)
	spaced, err := expr.Lex("  a  +  b  *  c  ")
	require.NoError(t, err)
	assert.Equal(t, kinds(tight), kinds(spaced))
}

func TestLexRejectsUnrecognizedCharacter(t *testing.T) {
	_, err := expr.Lex("a # b")
	require.Error(t, err)
}
