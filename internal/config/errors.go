package config

import "fmt"

// DefinitionError reports a malformed or semantically invalid definition
// statement: an unknown keyword, a bad inversion flag, a zero conversion
// factor, or a relation naming an undeclared unit. Definition errors are
// fatal; the invocation aborts.
type DefinitionError struct {
	Pos    Position
	Reason string
}

// Error implements the error interface for DefinitionError.
func (e *DefinitionError) Error() string {
	if e.Pos.File == "" {
		return e.Reason
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Pos.File, e.Pos.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Pos.File, e.Reason)
}

// NewDefinitionError builds a DefinitionError at the given position.
func NewDefinitionError(pos Position, format string, args ...any) *DefinitionError {
	return &DefinitionError{Pos: pos, Reason: fmt.Sprintf(format, args...)}
}
