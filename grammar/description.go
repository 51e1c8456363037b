package grammar

import (
	"github.com/nihei9/lrgen/lexical"
)

// CompiledGrammar is the serializable description of a canonical grammar.
// The token ids recorded here are the mapping the lexer side synchronizes
// against.
type CompiledGrammar struct {
	Name        string        `json:"name"`
	Start       string        `json:"start,omitempty"`
	Tokens      []*Token      `json:"tokens"`
	Productions []*Production `json:"productions"`
}

type Token struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

type Production struct {
	LHS          string       `json:"lhs"`
	Alternatives [][]*Element `json:"alternatives"`
}

type Element struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// Compile assigns each token a stable id and flattens the grammar into its
// serializable form. Ids are assigned over the sorted token names starting
// at 1; 0 is reserved as the nil id.
func Compile(g *Grammar, name string) *CompiledGrammar {
	tokens := make([]*Token, 0, len(g.tokens))
	for i, t := range g.Tokens() {
		tokens = append(tokens, &Token{
			Name: t,
			ID:   i + 1,
		})
	}

	prods := make([]*Production, 0, len(g.rules))
	for _, r := range g.rules {
		alts := make([][]*Element, len(r.Alternatives))
		for i, alt := range r.Alternatives {
			elems := make([]*Element, 0, len(alt))
			for _, sym := range alt {
				elems = append(elems, &Element{
					Kind: string(sym.Kind),
					Name: sym.Name,
				})
			}
			alts[i] = elems
		}
		prods = append(prods, &Production{
			LHS:          r.Name,
			Alternatives: alts,
		})
	}

	return &CompiledGrammar{
		Name:        name,
		Start:       g.start,
		Tokens:      tokens,
		Productions: prods,
	}
}

// TokenIDs returns the name-to-id mapping in the form the lexical package's
// reconciler consumes.
func (g *CompiledGrammar) TokenIDs() map[string]lexical.TokenID {
	ids := make(map[string]lexical.TokenID, len(g.Tokens))
	for _, t := range g.Tokens {
		ids[t.Name] = lexical.TokenID(t.ID)
	}
	return ids
}
