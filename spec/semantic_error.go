package spec

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	SemErrUndefinedStart = newSemanticError("the start symbol is not defined as a rule")
	SemErrDuplicateStart = newSemanticError("the start symbol is already declared")
)
