package lexical

import (
	"fmt"

	mlspec "github.com/nihei9/maleeni/spec"
)

// Maleeni converts the rule set into a maleeni lexical specification so that
// the maleeni compiler can build a DFA from it. Named rules become kinds of
// the same name. Anonymous rules get generated kind names and are returned
// as the kinds the lexer driver must skip.
func (d *LexerDef) Maleeni() (*mlspec.LexSpec, []mlspec.LexKindName) {
	entries := make([]*mlspec.LexEntry, 0, len(d.rules))
	var skip []mlspec.LexKindName
	anon := 0
	for _, r := range d.rules {
		kind := r.Name
		if kind == "" {
			anon++
			kind = fmt.Sprintf("x_%v", anon)
			skip = append(skip, mlspec.LexKindName(kind))
		}
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(kind),
			Pattern: mlspec.LexPattern(r.Pattern),
		})
	}
	return &mlspec.LexSpec{
		Entries: entries,
	}, skip
}
