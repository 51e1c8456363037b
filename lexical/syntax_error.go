package lexical

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrNoPattern     = newSyntaxError("a lexical rule must have a pattern")
	synErrNoRuleName    = newSyntaxError("a lexical rule must end with a quoted name or a semicolon")
	synErrUnclosedName  = newSyntaxError("unclosed rule name")
	synErrEmptyRuleName = newSyntaxError("a rule name must include at least one character")
)
