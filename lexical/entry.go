package lexical

import "fmt"

// TokenID is the storage type for the numeric ids that synchronize lexical
// rules with grammar-side terminals. 0 is the nil id; assigned ids start
// at 1.
type TokenID uint32

const TokenIDNil = TokenID(0)

func (id TokenID) Int() int {
	return int(id)
}

func (id TokenID) IsNil() bool {
	return id == TokenIDNil
}

// Rule is a single lexical rule. The pattern is kept as raw source text;
// compiling it is the lexer runtime's business. A rule without a name is
// anonymous (a skip pattern, typically) and never takes part in rule-id
// reconciliation.
type Rule struct {
	TokID   TokenID
	Name    string
	Pattern string
}

func NewRule(tokID TokenID, name string, pattern string) (*Rule, error) {
	r := &Rule{
		TokID:   tokID,
		Name:    name,
		Pattern: pattern,
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rule) validate() error {
	if r.Pattern == "" {
		return fmt.Errorf("a lexical rule must have a pattern")
	}
	return nil
}

// LexerDef is an ordered collection of lexical rules.
type LexerDef struct {
	rules []*Rule
}

func NewLexerDef(rules []*Rule) (*LexerDef, error) {
	if len(rules) <= 0 {
		return nil, fmt.Errorf("a lexer definition must have at least one rule")
	}
	for _, r := range rules {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}
	return &LexerDef{
		rules: rules,
	}, nil
}

func (d *LexerDef) Rules() []*Rule {
	return d.rules
}

// SetRuleIDs assigns an id from ids to every named rule whose name appears
// in the mapping, and reports the two-way difference between the mapping and
// the named rules: the keys of ids with no matching rule (tokens the grammar
// uses but the lexer cannot produce) and the named rules absent from ids
// (tokens the lexer defines but the grammar never references). Both sets are
// always non-nil; the caller that never requested reconciliation simply does
// not call this method.
func (d *LexerDef) SetRuleIDs(ids map[string]TokenID) (map[string]struct{}, map[string]struct{}) {
	missingFromLexer := map[string]struct{}{}
	missingFromParser := map[string]struct{}{}

	named := map[string]struct{}{}
	for _, r := range d.rules {
		if r.Name == "" {
			continue
		}
		named[r.Name] = struct{}{}
		if id, ok := ids[r.Name]; ok {
			r.TokID = id
		} else {
			missingFromParser[r.Name] = struct{}{}
		}
	}
	for name := range ids {
		if _, ok := named[name]; !ok {
			missingFromLexer[name] = struct{}{}
		}
	}

	return missingFromLexer, missingFromParser
}
