package spec

import (
	"io"
)

type tokenKind string

const (
	tokenKindID           = tokenKind("id")
	tokenKindTerminal     = tokenKind("terminal")
	tokenKindColon        = tokenKind(":")
	tokenKindOr           = tokenKind("|")
	tokenKindSemicolon    = tokenKind(";")
	tokenKindSeparator    = tokenKind("%%")
	tokenKindDirective    = tokenKind("directive")
	tokenKindNewline      = tokenKind("newline")
	tokenKindEOF          = tokenKind("eof")
	tokenKindUnterminated = tokenKind("unterminated terminal")
	tokenKindInvalid      = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newIDToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindID,
		text: text,
		pos:  pos,
	}
}

func newTerminalToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindTerminal,
		text: text,
		pos:  pos,
	}
}

func newDirectiveToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindDirective,
		text: text,
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

type lexer struct {
	src []rune
	idx int
	row int
	col int
}

func newLexer(src io.Reader) (*lexer, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		src: []rune(string(b)),
		row: 1,
		col: 1,
	}, nil
}

func (l *lexer) pos() Position {
	return newPosition(l.row, l.col)
}

func (l *lexer) read() (rune, bool) {
	if l.idx >= len(l.src) {
		return 0, false
	}
	c := l.src[l.idx]
	l.idx++
	if c == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	return c, true
}

func (l *lexer) peekChar() (rune, bool) {
	if l.idx >= len(l.src) {
		return 0, false
	}
	return l.src[l.idx], true
}

// next returns the next token, skipping the white spaces except the newline.
// The newline remains a token of its own because the declarations section is
// line-oriented.
func (l *lexer) next() *token {
	c, ok := l.skipSpaces()
	pos := l.pos()
	if !ok {
		return newEOFToken(pos)
	}
	switch {
	case c == '\n':
		l.read()
		return newSymbolToken(tokenKindNewline, pos)
	case c == ':':
		l.read()
		return newSymbolToken(tokenKindColon, pos)
	case c == '|':
		l.read()
		return newSymbolToken(tokenKindOr, pos)
	case c == ';':
		l.read()
		return newSymbolToken(tokenKindSemicolon, pos)
	case c == '%':
		l.read()
		if n, ok := l.peekChar(); ok && n == '%' {
			l.read()
			return newSymbolToken(tokenKindSeparator, pos)
		}
		return newDirectiveToken(l.readID(), pos)
	case c == '\'' || c == '"':
		l.read()
		return l.readTerminal(c, pos)
	case isIDHead(c):
		return newIDToken(l.readID(), pos)
	}
	l.read()
	return newInvalidToken(string(c), pos)
}

func (l *lexer) skipSpaces() (rune, bool) {
	for {
		c, ok := l.peekChar()
		if !ok {
			return 0, false
		}
		if c == ' ' || c == '\t' || c == '\r' {
			l.read()
			continue
		}
		return c, true
	}
}

func (l *lexer) readID() string {
	var id []rune
	for {
		c, ok := l.peekChar()
		if !ok || !isIDChar(c) {
			break
		}
		l.read()
		id = append(id, c)
	}
	return string(id)
}

// readTerminal reads the body of a quoted literal. The literal contains no
// escape sequences; it simply runs until the opening quote character recurs.
func (l *lexer) readTerminal(quote rune, pos Position) *token {
	var b []rune
	for {
		c, ok := l.read()
		if !ok {
			return &token{
				kind: tokenKindUnterminated,
				text: string(b),
				pos:  pos,
			}
		}
		if c == quote {
			return newTerminalToken(string(b), pos)
		}
		b = append(b, c)
	}
}

func isIDHead(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIDChar(c rune) bool {
	return isIDHead(c) || c >= '0' && c <= '9'
}
