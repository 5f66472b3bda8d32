package expr

import (
	boolerr "github.com/nihei9/boolalg/error"
)

// Parse lexes and parses src per spec.md §4.2:
//
//	sum     := prod ( OR prod )*
//	prod    := not ( AND not )*
//	not     := NOT primary | primary
//	primary := LPAREN sum RPAREN | IDENT
//
// Every grammar level wraps its result, even a lone variable becoming
// Sum([Prod([Var(x)])]) — rewrite.Normalize is what strips these
// single-child wrappers, not Parse.
func Parse(src string) (n Node, err error) {
	toks, lexErr := Lex(src)
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parser{toks: toks}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		pe, ok := r.(*boolerr.ParseError)
		if !ok {
			panic(r)
		}
		n, err = nil, pe
	}()

	n = p.parseSum()
	if !p.at(KindEOF) {
		raise(p.cur().String(), p.cur().Pos.Col, "<eof>")
	}
	return n, nil
}

// parser is a cursor over a token slice. A syntax error is raised by
// panicking with *boolerr.ParseError and recovered at Parse's single call
// site — mirroring the teacher's parser, which panics a *verr.SpecError out
// of a production and recovers per top-level production so one malformed
// production doesn't abort the whole file. boolalg parses exactly one
// expression per call, so there is nothing to recover *into*: the recover
// happens once, at the top, and simply turns the panic back into a returned
// error.
type parser struct {
	toks []Token
	pos  int
}

func (p *parser) cur() Token { return p.toks[p.pos] }

func (p *parser) at(k Kind) bool { return p.cur().Kind == k }

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func raise(got string, col int, expected string) {
	panic(&boolerr.ParseError{Got: got, Col: col, Expected: expected})
}

func (p *parser) parseSum() Node {
	children := []Node{p.parseProd()}
	for p.at(KindOr) {
		p.advance()
		children = append(children, p.parseProd())
	}
	return &Sum{Children: children}
}

func (p *parser) parseProd() Node {
	children := []Node{p.parseNot()}
	for p.at(KindAnd) {
		p.advance()
		children = append(children, p.parseNot())
	}
	return &Prod{Children: children}
}

func (p *parser) parseNot() Node {
	if p.at(KindNot) {
		p.advance()
		return &Not{Child: p.parsePrimary()}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() Node {
	switch p.cur().Kind {
	case KindLParen:
		p.advance()
		n := p.parseSum()
		if !p.at(KindRParen) {
			raise(p.cur().String(), p.cur().Pos.Col, ")")
		}
		p.advance()
		return n
	case KindIdent:
		t := p.advance()
		return &Var{Name: t.Text}
	case KindTrue, KindFalse:
		raise(p.cur().String(), p.cur().Pos.Col, "identifier")
		return nil
	default:
		raise(p.cur().String(), p.cur().Pos.Col, "identifier or (")
		return nil
	}
}
