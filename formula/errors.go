package formula

import (
	"errors"
	"fmt"
)

// Sentinel errors. SyntaxError and RuntimeError match them through errors.Is.
var (
	// ErrSyntax classifies every *SyntaxError.
	ErrSyntax = errors.New("formula: syntax error")
	// ErrRuntime classifies every *RuntimeError.
	ErrRuntime = errors.New("formula: runtime error")

	// ErrDivisionByZero is the cause of a division (or 0 ** negative) by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is the cause when ** leaves the float64 range.
	ErrOverflow = errors.New("numerical result out of range")
	// ErrDomain is the cause when ** has no real result.
	ErrDomain = errors.New("math domain error")
)

// SyntaxError reports malformed or unsupported formula text, or an identifier
// that the bindings could not resolve. Line and Column are 1-based; Column
// counts characters, not bytes.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
}

// Error formats the error as "line:column: message".
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Is reports whether target is ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// RuntimeError wraps an arithmetic failure raised while evaluating a formula.
type RuntimeError struct {
	Err error
}

// Error formats the error as "Evaluation failed: cause".
func (e *RuntimeError) Error() string {
	return "Evaluation failed: " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRuntime.
func (e *RuntimeError) Is(target error) bool {
	return target == ErrRuntime
}

// syntaxErrorAt builds a *SyntaxError located at pos.
func syntaxErrorAt(pos Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column}
}
