package grammar

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nihei9/lrgen/spec"
)

// Grammar is the canonical, read-only form of a validated GrammarAST. The
// token set is the union of the declared tokens and the terminals discovered
// in the rule bodies. A Grammar owns copies of the AST's rules, so the AST
// may be discarded after construction.
type Grammar struct {
	start    string
	tokens   []string
	tokenSet map[string]struct{}
	rules    []*spec.Rule
}

// FromAST converts a validated AST into its canonical form. The conversion
// has no error path; Validate must have succeeded beforehand.
func FromAST(ast *spec.GrammarAST) *Grammar {
	tokens := ast.Tokens()
	sort.Strings(tokens)
	tokenSet := map[string]struct{}{}
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}

	astRules := ast.Rules()
	rules := make([]*spec.Rule, 0, len(astRules))
	for _, r := range astRules {
		alts := make([][]spec.Symbol, len(r.Alternatives))
		for i, alt := range r.Alternatives {
			alts[i] = make([]spec.Symbol, len(alt))
			copy(alts[i], alt)
		}
		rules = append(rules, &spec.Rule{
			Name:         r.Name,
			Alternatives: alts,
		})
	}

	start, _ := ast.Start()
	return &Grammar{
		start:    start,
		tokens:   tokens,
		tokenSet: tokenSet,
		rules:    rules,
	}
}

// Start returns the start symbol name, or an empty string when none was
// declared.
func (g *Grammar) Start() string {
	return g.start
}

// Tokens returns the token names in sorted order.
func (g *Grammar) Tokens() []string {
	tokens := make([]string, len(g.tokens))
	copy(tokens, g.tokens)
	return tokens
}

func (g *Grammar) HasToken(name string) bool {
	_, ok := g.tokenSet[name]
	return ok
}

// Rules returns the rules in declaration order.
func (g *Grammar) Rules() []*spec.Rule {
	rules := make([]*spec.Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// WriteTo serializes the grammar back into specification text. Parsing the
// output again yields an equivalent rule set, so the textual form can serve
// as an interchange format.
func (g *Grammar) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	// Only identifier-shaped names can appear on a %token line. The others
	// stem from quoted literals and are rediscovered from the rule bodies.
	var declarable []string
	for _, t := range g.tokens {
		if isIdentifier(t) {
			declarable = append(declarable, t)
		}
	}
	if len(declarable) > 0 {
		fmt.Fprintf(&b, "%%token")
		for _, t := range declarable {
			fmt.Fprintf(&b, " %v", t)
		}
		fmt.Fprintf(&b, "\n")
	}
	if g.start != "" {
		fmt.Fprintf(&b, "%%start %v\n", g.start)
	}
	fmt.Fprintf(&b, "%%%%\n")
	for _, r := range g.rules {
		fmt.Fprintf(&b, "%v\n", r.Name)
		for i, alt := range r.Alternatives {
			if i == 0 {
				fmt.Fprintf(&b, "    :")
			} else {
				fmt.Fprintf(&b, "    |")
			}
			for _, sym := range alt {
				if sym.Kind == spec.SymbolKindTerminal {
					fmt.Fprintf(&b, " %v", quoteTerminal(sym.Name))
				} else {
					fmt.Fprintf(&b, " %v", sym.Name)
				}
			}
			fmt.Fprintf(&b, "\n")
		}
		fmt.Fprintf(&b, "    ;\n")
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// quoteTerminal picks whichever quote character the name does not contain.
// The specification language has no escape sequences inside literals.
func quoteTerminal(name string) string {
	if strings.Contains(name, "'") {
		return `"` + name + `"`
	}
	return "'" + name + "'"
}
