package error_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	boolerr "github.com/nihei9/boolalg/error"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `5: lexical error: unrecognized character '#'`, (&boolerr.LexError{Rune: '#', Col: 5}).Error())
	assert.Equal(t, `3: syntax error: unexpected )`, (&boolerr.ParseError{Got: ")", Col: 3}).Error())
	assert.Equal(t, `3: syntax error: unexpected <eof>: expected )`, (&boolerr.ParseError{Got: "<eof>", Col: 3, Expected: ")"}).Error())
	assert.Equal(t, `eval error: undefined variable "x"`, (&boolerr.EvalError{Var: "x"}).Error())
	assert.Equal(t, `shape error: expected a literal or product, got Sum`, (&boolerr.ShapeError{Got: "Sum"}).Error())
}
