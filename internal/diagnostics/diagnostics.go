// Package diagnostics carries the parser's single error variant: a message
// string. Per the grammar's design, errors never track source location and
// parsing never recovers after the first one, so there is exactly one
// error type rather than a hierarchy.
package diagnostics

import "fmt"

// Code tags a ParseError by the condition that produced it. It exists so
// tests and CLI tooling can switch on error kind; Error() never renders it.
type Code string

const (
	CodeMissingLeftOperand    Code = "MISSING_LEFT_OPERAND"
	CodeIncompleteLeftOperand Code = "INCOMPLETE_LEFT_OPERAND"
	CodeInvalidField          Code = "INVALID_FIELD"
	CodeFieldOnNonComplete    Code = "FIELD_ON_NON_COMPLETE"
	CodeInvalidIndex          Code = "INVALID_INDEX"
	CodeIndexOnNonComplete    Code = "INDEX_ON_NON_COMPLETE"
	CodeStrayKeyword          Code = "STRAY_KEYWORD"
	CodeUnmatchedBracket      Code = "UNMATCHED_BRACKET"
	CodeTerminalNonComplete   Code = "TERMINAL_NON_COMPLETE"
)

// ParseError is the parser's only error type: a message string, optionally
// tagged with a Code for callers that want to branch on error kind.
type ParseError struct {
	Code    Code
	Message string
}

func (e *ParseError) Error() string { return e.Message }

// New builds a ParseError from a literal message.
func New(code Code, message string) *ParseError {
	return &ParseError{Code: code, Message: message}
}

// Newf builds a ParseError from a formatted message.
func Newf(code Code, format string, args ...interface{}) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}
