package spec

import (
	"fmt"

	verr "github.com/nihei9/lrgen/error"
)

type SymbolKind string

const (
	SymbolKindTerminal    = SymbolKind("terminal")
	SymbolKindNonTerminal = SymbolKind("non-terminal")
)

// Symbol is an element of an alternative. Two symbols are equal only when
// both the kind and the name match, so the type is comparable as-is.
type Symbol struct {
	Kind SymbolKind
	Name string
}

func NewTerminal(name string) Symbol {
	return Symbol{
		Kind: SymbolKindTerminal,
		Name: name,
	}
}

func NewNonTerminal(name string) Symbol {
	return Symbol{
		Kind: SymbolKindNonTerminal,
		Name: name,
	}
}

func (s Symbol) String() string {
	if s.Kind == SymbolKindTerminal {
		return fmt.Sprintf("%q", s.Name)
	}
	return s.Name
}

// Rule is a named production. Its alternatives keep their declaration order
// because the downstream table builder prefers earlier alternatives when it
// resolves ambiguities.
type Rule struct {
	Name         string
	Alternatives [][]Symbol
}

func newRule(name string) *Rule {
	return &Rule{
		Name: name,
	}
}

func (r *Rule) addAlternative(syms []Symbol) {
	r.Alternatives = append(r.Alternatives, syms)
}

// GrammarAST is the mutable representation the parser builds up. After
// Validate succeeds the AST is treated as frozen and is only read from.
type GrammarAST struct {
	start      string
	startPos   Position
	tokens     map[string]struct{}
	tokenNames []string
	rules      map[string]*Rule
	ruleNames  []string
}

func newGrammarAST() *GrammarAST {
	return &GrammarAST{
		tokens: map[string]struct{}{},
		rules:  map[string]*Rule{},
	}
}

// Start returns the declared start symbol name, if any.
func (g *GrammarAST) Start() (string, bool) {
	return g.start, g.start != ""
}

func (g *GrammarAST) HasToken(name string) bool {
	_, ok := g.tokens[name]
	return ok
}

// Tokens returns the token names in discovery order: the explicitly declared
// ones first, then the terminals found in the rules.
func (g *GrammarAST) Tokens() []string {
	names := make([]string, len(g.tokenNames))
	copy(names, g.tokenNames)
	return names
}

func (g *GrammarAST) Rule(name string) (*Rule, bool) {
	r, ok := g.rules[name]
	return r, ok
}

// Rules returns the rules in declaration order.
func (g *GrammarAST) Rules() []*Rule {
	rules := make([]*Rule, 0, len(g.ruleNames))
	for _, name := range g.ruleNames {
		rules = append(rules, g.rules[name])
	}
	return rules
}

// Validate checks the semantic consistency of the AST without mutating it:
// a declared start symbol must name an existing rule. Reachability of rules
// and resolvability of non-terminal references are left to the downstream
// table builder.
func (g *GrammarAST) Validate() error {
	if g.start == "" {
		return nil
	}
	if _, ok := g.rules[g.start]; !ok {
		return &verr.SpecError{
			Cause:  SemErrUndefinedStart,
			Detail: g.start,
			Row:    g.startPos.Row,
			Col:    g.startPos.Col,
		}
	}
	return nil
}

func (g *GrammarAST) setStart(name string, pos Position) bool {
	if g.start != "" {
		return false
	}
	g.start = name
	g.startPos = pos
	return true
}

// addToken records a token name. Re-declaring a known name is not an error;
// the token set is additive.
func (g *GrammarAST) addToken(name string) {
	if _, ok := g.tokens[name]; ok {
		return
	}
	g.tokens[name] = struct{}{}
	g.tokenNames = append(g.tokenNames, name)
}

// rule returns the rule named name, creating it when it appears for the
// first time. Declaring the same name again merges the new alternatives into
// the existing rule.
func (g *GrammarAST) rule(name string) *Rule {
	if r, ok := g.rules[name]; ok {
		return r
	}
	r := newRule(name)
	g.rules[name] = r
	g.ruleNames = append(g.ruleNames, name)
	return r
}
