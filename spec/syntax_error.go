package spec

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

// The syntax error kinds are exported so that a caller can tell them apart
// with errors.Is after unwrapping a SpecError.
var (
	SynErrIncompleteRule       = newSyntaxError("a rule is incomplete; it must be terminated by a semicolon")
	SynErrMissingColon         = newSyntaxError("a rule name must be followed by a colon")
	SynErrPrematureEnd         = newSyntaxError("the input ended prematurely")
	SynErrProgramsNotSupported = newSyntaxError("a programs section is not supported")
	SynErrUnknownDeclaration   = newSyntaxError("unknown declaration")

	synErrInvalidToken = newSyntaxError("invalid token")
)
