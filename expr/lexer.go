package expr

import (
	"unicode"

	boolerr "github.com/nihei9/boolalg/error"
)

// Lex scans src into a token slice, dropping ignore (whitespace) tokens per
// spec.md §4.1. It returns a *boolerr.LexError naming the offending rune and
// its 1-based column on the first unrecognized character.
func Lex(src string) ([]Token, error) {
	l := &lexer{src: []rune(src)}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEOF {
			toks = append(toks, tok)
			return toks, nil
		}
		if tok.Kind == KindIgnore {
			continue
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src []rune
	pos int // index into src of the next unread rune
}

func (l *lexer) next() (Token, error) {
	if l.pos >= len(l.src) {
		return Token{Kind: KindEOF, Pos: Position{Col: l.pos + 1}}, nil
	}

	col := l.pos + 1
	r := l.src[l.pos]

	switch {
	case r == '(':
		l.pos++
		return Token{Kind: KindLParen, Pos: Position{Col: col}}, nil
	case r == ')':
		l.pos++
		return Token{Kind: KindRParen, Pos: Position{Col: col}}, nil
	case r == '.' || r == '*' || r == '&':
		l.pos++
		return Token{Kind: KindAnd, Pos: Position{Col: col}}, nil
	case r == '+' || r == '|':
		l.pos++
		return Token{Kind: KindOr, Pos: Position{Col: col}}, nil
	case r == '!' || r == '/':
		l.pos++
		return Token{Kind: KindNot, Pos: Position{Col: col}}, nil
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.pos++
		return Token{Kind: KindIgnore, Pos: Position{Col: col}}, nil
	case r == '1':
		l.pos++
		return Token{Kind: KindTrue, Pos: Position{Col: col}}, nil
	case r == '0':
		l.pos++
		return Token{Kind: KindFalse, Pos: Position{Col: col}}, nil
	case isIdentStart(r):
		return l.lexIdent(col), nil
	default:
		l.pos++
		return Token{}, &boolerr.LexError{Rune: r, Col: col}
	}
}

// isIdentStart matches the lexer table's "letter or digit 2-9" class. Digits
// 0 and 1 are excluded here because they are already claimed by
// True/False above.
func isIdentStart(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	return r >= '2' && r <= '9'
}

func (l *lexer) lexIdent(col int) Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	text := string(l.src[start:l.pos])

	switch text {
	case "not":
		return Token{Kind: KindNot, Pos: Position{Col: col}}
	case "and":
		return Token{Kind: KindAnd, Pos: Position{Col: col}}
	case "or":
		return Token{Kind: KindOr, Pos: Position{Col: col}}
	}
	return Token{Kind: KindIdent, Text: text, Pos: Position{Col: col}}
}

func isIdentCont(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
