package expr

import "fmt"

// SyntaxError reports the first lexical or structural error in an expression.
// Line is 1-based, Position is the 0-based column within the line.
type SyntaxError struct {
	Line     int
	Position int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, position %d: %s", e.Line, e.Position, e.Message)
}

func syntaxErrorf(line, pos int, tmpl string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Position: pos, Message: fmt.Sprintf(tmpl, args...)}
}
