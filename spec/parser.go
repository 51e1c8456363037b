package spec

import (
	"io"

	verr "github.com/nihei9/lrgen/error"
)

// Parse reads a yacc-style grammar specification and builds a GrammarAST
// from it. The input consists of an optional declarations section, a `%%`
// separator, and a rules section. On a syntax error no partial AST is
// returned.
func Parse(src io.Reader) (*GrammarAST, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	return p.parse()
}

type parser struct {
	lex       *lexer
	ast       *GrammarAST
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
		ast: newGrammarAST(),
	}, nil
}

func raiseSyntaxError(pos Position, synErr *SyntaxError) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}

func (p *parser) parse() (ast *GrammarAST, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			retErr = err.(error)
			return
		}
	}()
	p.parseDeclarations()
	p.parseRules()
	return p.ast, nil
}

func (p *parser) parseDeclarations() {
	for {
		tok := p.next()
		switch tok.kind {
		case tokenKindSeparator:
			return
		case tokenKindEOF:
			raiseSyntaxError(tok.pos, SynErrPrematureEnd)
		case tokenKindDirective:
			switch tok.text {
			case "start":
				p.parseStartDeclaration(tok)
			case "token":
				p.parseTokenDeclaration(tok)
			default:
				raiseSyntaxError(tok.pos, SynErrUnknownDeclaration)
			}
		default:
			raiseSyntaxError(tok.pos, synErrInvalidToken)
		}
	}
}

func (p *parser) parseStartDeclaration(decl *token) {
	tok := p.nextRaw()
	switch tok.kind {
	case tokenKindID:
	case tokenKindNewline, tokenKindEOF:
		raiseSyntaxError(decl.pos, SynErrPrematureEnd)
	default:
		raiseSyntaxError(tok.pos, synErrInvalidToken)
	}
	if !p.ast.setStart(tok.text, tok.pos) {
		panic(&verr.SpecError{
			Cause:  SemErrDuplicateStart,
			Detail: tok.text,
			Row:    tok.pos.Row,
			Col:    tok.pos.Col,
		})
	}
}

// parseTokenDeclaration reads the one or more token names a %token
// declaration lists on its line.
func (p *parser) parseTokenDeclaration(decl *token) {
	n := 0
	for {
		tok := p.nextRaw()
		switch tok.kind {
		case tokenKindID:
			p.ast.addToken(tok.text)
			n++
			continue
		case tokenKindNewline, tokenKindEOF:
			if n == 0 {
				raiseSyntaxError(decl.pos, SynErrPrematureEnd)
			}
			p.peekedTok = tok
			return
		default:
			raiseSyntaxError(tok.pos, synErrInvalidToken)
		}
	}
}

func (p *parser) parseRules() {
	for {
		tok := p.next()
		switch tok.kind {
		case tokenKindEOF:
			return
		case tokenKindSeparator:
			p.parseProgramSection(tok)
			return
		case tokenKindID:
			p.parseRule(tok)
		default:
			raiseSyntaxError(tok.pos, synErrInvalidToken)
		}
	}
}

// parseProgramSection rejects a non-empty programs section. A bare trailing
// separator is allowed; only content after it is an error.
func (p *parser) parseProgramSection(sep *token) {
	tok := p.next()
	if tok.kind == tokenKindEOF {
		return
	}
	raiseSyntaxError(sep.pos, SynErrProgramsNotSupported)
}

func (p *parser) parseRule(name *token) {
	if !p.consume(tokenKindColon) {
		raiseSyntaxError(p.peekedTok.pos, SynErrMissingColon)
	}
	rule := p.ast.rule(name.text)
	rule.addAlternative(p.parseAlternative())
	for p.consume(tokenKindOr) {
		rule.addAlternative(p.parseAlternative())
	}
	if !p.consume(tokenKindSemicolon) {
		raiseSyntaxError(p.peekedTok.pos, SynErrIncompleteRule)
	}
}

func (p *parser) parseAlternative() []Symbol {
	syms := []Symbol{}
	for {
		switch {
		case p.consume(tokenKindID):
			// A bare identifier names a token when it is already known as
			// one; otherwise it refers to a rule.
			if p.ast.HasToken(p.lastTok.text) {
				syms = append(syms, NewTerminal(p.lastTok.text))
			} else {
				syms = append(syms, NewNonTerminal(p.lastTok.text))
			}
		case p.consume(tokenKindTerminal):
			p.ast.addToken(p.lastTok.text)
			syms = append(syms, NewTerminal(p.lastTok.text))
		default:
			if p.peekedTok.kind == tokenKindUnterminated {
				raiseSyntaxError(p.peekedTok.pos, SynErrIncompleteRule)
			}
			return syms
		}
	}
}

func (p *parser) next() *token {
	for {
		tok := p.nextRaw()
		if tok.kind == tokenKindNewline {
			continue
		}
		return tok
	}
}

func (p *parser) nextRaw() *token {
	var tok *token
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		tok = p.lex.next()
	}
	p.lastTok = tok
	return tok
}

func (p *parser) consume(expected tokenKind) bool {
	tok := p.next()
	if tok.kind == tokenKindInvalid {
		raiseSyntaxError(tok.pos, synErrInvalidToken)
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	return false
}
