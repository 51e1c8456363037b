package lexical

import (
	"bufio"
	"io"
	"strings"

	verr "github.com/nihei9/lrgen/error"
)

// ParseLexSpec reads a lexical specification and builds a LexerDef from it.
// The format is line-oriented: each non-blank line holds a pattern followed
// by either a quoted rule name or a semicolon marking an anonymous rule.
//
//	[0-9]+   "INT"
//	[ \t]+   ;
func ParseLexSpec(src io.Reader) (*LexerDef, error) {
	var rules []*Rule
	row := 0
	s := bufio.NewScanner(src)
	for s.Scan() {
		row++
		line := strings.TrimRight(s.Text(), " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, synErr := parseRuleLine(line)
		if synErr != nil {
			return nil, &verr.SpecError{
				Cause: synErr,
				Row:   row,
				Col:   1,
			}
		}
		rules = append(rules, r)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return NewLexerDef(rules)
}

func parseRuleLine(line string) (*Rule, *SyntaxError) {
	if strings.HasSuffix(line, ";") {
		pattern := strings.TrimSpace(strings.TrimSuffix(line, ";"))
		if pattern == "" {
			return nil, synErrNoPattern
		}
		return &Rule{
			Pattern: pattern,
		}, nil
	}

	quote := line[len(line)-1]
	if quote != '"' && quote != '\'' {
		return nil, synErrNoRuleName
	}
	open := strings.LastIndexByte(line[:len(line)-1], quote)
	if open < 0 {
		return nil, synErrUnclosedName
	}
	name := line[open+1 : len(line)-1]
	if name == "" {
		return nil, synErrEmptyRuleName
	}
	pattern := strings.TrimSpace(line[:open])
	if pattern == "" {
		return nil, synErrNoPattern
	}
	return &Rule{
		Name:    name,
		Pattern: pattern,
	}, nil
}
