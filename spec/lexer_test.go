package spec

import (
	"strings"
	"testing"
)

func TestLexer_next(t *testing.T) {
	idTok := func(text string) *token {
		return newIDToken(text, newPosition(1, 1))
	}
	termTok := func(text string) *token {
		return newTerminalToken(text, newPosition(1, 1))
	}
	dirTok := func(text string) *token {
		return newDirectiveToken(text, newPosition(1, 1))
	}
	symTok := func(kind tokenKind) *token {
		return newSymbolToken(kind, newPosition(1, 1))
	}

	tests := []struct {
		caption string
		src     string
		tokens  []*token
	}{
		{
			caption: "the lexer can recognize all kinds of tokens",
			src:     `rule : 'a' | "b" ; %token %%`,
			tokens: []*token{
				idTok("rule"),
				symTok(tokenKindColon),
				termTok("a"),
				symTok(tokenKindOr),
				termTok("b"),
				symTok(tokenKindSemicolon),
				dirTok("token"),
				symTok(tokenKindSeparator),
				newEOFToken(newPosition(1, 1)),
			},
		},
		{
			caption: "the newline remains a token of its own",
			src:     "%token a\n%%",
			tokens: []*token{
				dirTok("token"),
				idTok("a"),
				symTok(tokenKindNewline),
				symTok(tokenKindSeparator),
				newEOFToken(newPosition(1, 1)),
			},
		},
		{
			caption: "a quoted literal may contain whitespace and symbol characters",
			src:     `'a b;:|'`,
			tokens: []*token{
				termTok("a b;:|"),
				newEOFToken(newPosition(1, 1)),
			},
		},
		{
			caption: "a double-quoted literal may contain a single quote",
			src:     `"a'b"`,
			tokens: []*token{
				termTok("a'b"),
				newEOFToken(newPosition(1, 1)),
			},
		},
		{
			caption: "an unterminated literal is reported as its own token kind",
			src:     `'a`,
			tokens: []*token{
				{kind: tokenKindUnterminated, text: "a", pos: newPosition(1, 1)},
			},
		},
		{
			caption: "an unexpected character yields an invalid token",
			src:     `?`,
			tokens: []*token{
				newInvalidToken("?", newPosition(1, 1)),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			lex, err := newLexer(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("unexpected error; got: %v", err)
			}
			for _, want := range tt.tokens {
				tok := lex.next()
				if tok.kind != want.kind || tok.text != want.text {
					t.Fatalf("unexpected token; want: %v %q, got: %v %q", want.kind, want.text, tok.kind, tok.text)
				}
			}
		})
	}
}

func TestLexer_position(t *testing.T) {
	lex, err := newLexer(strings.NewReader("%%\n  A : 'a';"))
	if err != nil {
		t.Fatalf("unexpected error; got: %v", err)
	}

	expected := []struct {
		kind tokenKind
		row  int
		col  int
	}{
		{tokenKindSeparator, 1, 1},
		{tokenKindNewline, 1, 3},
		{tokenKindID, 2, 3},
		{tokenKindColon, 2, 5},
		{tokenKindTerminal, 2, 7},
		{tokenKindSemicolon, 2, 10},
		{tokenKindEOF, 2, 11},
	}
	for _, want := range expected {
		tok := lex.next()
		if tok.kind != want.kind {
			t.Fatalf("unexpected token kind; want: %v, got: %v", want.kind, tok.kind)
		}
		if tok.pos.Row != want.row || tok.pos.Col != want.col {
			t.Fatalf("unexpected position of %v; want: %v:%v, got: %v:%v", want.kind, want.row, want.col, tok.pos.Row, tok.pos.Col)
		}
	}
}
