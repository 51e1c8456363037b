package lexical

import (
	"reflect"
	"testing"
)

func TestNewLexerDef(t *testing.T) {
	_, err := NewLexerDef(nil)
	if err == nil {
		t.Error("an empty rule list must be rejected")
	}

	_, err = NewLexerDef([]*Rule{
		{Name: "INT"},
	})
	if err == nil {
		t.Error("a rule without a pattern must be rejected")
	}

	def, err := NewLexerDef([]*Rule{
		{Name: "INT", Pattern: "[0-9]+"},
		{Pattern: "[ \\t]+"},
	})
	if err != nil {
		t.Fatalf("unexpected error; got: %v", err)
	}
	if len(def.Rules()) != 2 {
		t.Fatalf("unexpected rule count; want: 2, got: %v", len(def.Rules()))
	}
}

func TestLexerDef_SetRuleIDs(t *testing.T) {
	names := func(ns ...string) map[string]struct{} {
		set := map[string]struct{}{}
		for _, n := range ns {
			set[n] = struct{}{}
		}
		return set
	}

	tests := []struct {
		caption           string
		rules             []*Rule
		ids               map[string]TokenID
		assigned          []TokenID
		missingFromLexer  map[string]struct{}
		missingFromParser map[string]struct{}
	}{
		{
			caption: "a mapping covering both sides exactly yields two empty sets",
			rules: []*Rule{
				{Name: "a", Pattern: "a"},
				{Name: "b", Pattern: "b"},
			},
			ids:               map[string]TokenID{"a": 1, "b": 2},
			assigned:          []TokenID{1, 2},
			missingFromLexer:  names(),
			missingFromParser: names(),
		},
		{
			caption: "the two-way difference is reported for a partial mapping",
			rules: []*Rule{
				{Name: "a", Pattern: "a"},
				{Name: "b", Pattern: "b"},
			},
			ids:               map[string]TokenID{"a": 1, "c": 2},
			assigned:          []TokenID{1, TokenIDNil},
			missingFromLexer:  names("c"),
			missingFromParser: names("b"),
		},
		{
			caption: "anonymous rules are exempt from both checks",
			rules: []*Rule{
				{Name: "a", Pattern: "a"},
				{Pattern: "[ \\t]+"},
			},
			ids:               map[string]TokenID{"a": 7},
			assigned:          []TokenID{7, TokenIDNil},
			missingFromLexer:  names(),
			missingFromParser: names(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			def, err := NewLexerDef(tt.rules)
			if err != nil {
				t.Fatalf("unexpected error; got: %v", err)
			}
			missingFromLexer, missingFromParser := def.SetRuleIDs(tt.ids)
			if !reflect.DeepEqual(missingFromLexer, tt.missingFromLexer) {
				t.Errorf("unexpected missing-from-lexer set; want: %v, got: %v", tt.missingFromLexer, missingFromLexer)
			}
			if !reflect.DeepEqual(missingFromParser, tt.missingFromParser) {
				t.Errorf("unexpected missing-from-parser set; want: %v, got: %v", tt.missingFromParser, missingFromParser)
			}
			for i, want := range tt.assigned {
				if def.Rules()[i].TokID != want {
					t.Errorf("unexpected id on rule %v; want: %v, got: %v", i, want, def.Rules()[i].TokID)
				}
			}
		})
	}
}
