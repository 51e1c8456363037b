package spec

import (
	"errors"
	"strings"
	"testing"
)

func TestSymbol_equality(t *testing.T) {
	if NewNonTerminal("A") != NewNonTerminal("A") {
		t.Error("non-terminals with the same name must be equal")
	}
	if NewNonTerminal("A") == NewNonTerminal("B") {
		t.Error("non-terminals with different names must not be equal")
	}
	if NewNonTerminal("A") == NewTerminal("A") {
		t.Error("a non-terminal and a terminal must not be equal even when the names match")
	}
}

func TestGrammarAST_Validate(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		err     error
	}{
		{
			caption: "a grammar without a start symbol is valid",
			src:     "%%\nA : 'a';",
		},
		{
			caption: "a start symbol naming an existing rule is valid",
			src:     "%start A\n%%\nA : 'a';",
		},
		{
			caption: "a start symbol must name an existing rule",
			src:     "%start B\n%%\nA : 'a';",
			err:     SemErrUndefinedStart,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			ast, err := Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("unexpected parse error; got: %v", err)
			}
			err = ast.Validate()
			if tt.err == nil {
				if err != nil {
					t.Fatalf("unexpected error; got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("an expected error didn't occur; want: %v", tt.err)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("unexpected error; want: %v, got: %v", tt.err, err)
			}
		})
	}
}

func TestGrammarAST_tokenDiscoveryOrder(t *testing.T) {
	ast, err := Parse(strings.NewReader("%token x y\n%%\nA : 'b' 'a' x;"))
	if err != nil {
		t.Fatalf("unexpected error; got: %v", err)
	}
	want := []string{"x", "y", "b", "a"}
	tokens := ast.Tokens()
	if len(tokens) != len(want) {
		t.Fatalf("unexpected token count; want: %v, got: %v", len(want), len(tokens))
	}
	for i, name := range want {
		if tokens[i] != name {
			t.Errorf("unexpected token at %v; want: %v, got: %v", i, name, tokens[i])
		}
	}
}
