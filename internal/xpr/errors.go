package xpr

import (
	"errors"
	"fmt"
)

// Syntax errors
var (
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrUnexpectedToken      = errors.New("unexpected token")
)

// Runtime errors
var (
	ErrUndefinedVariable   = errors.New("undefined variable")
	ErrArityMismatch       = errors.New("arity mismatch")
	ErrNotCallable         = errors.New("not callable")
	ErrFunctionNotFound    = errors.New("function not found")
	ErrUnknownBuiltin      = errors.New("unknown builtin")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidOperandTypes = errors.New("invalid operand types")
	ErrInvalidUnaryOperand = errors.New("invalid unary operand")
	ErrRecursionLimit      = errors.New("recursion limit exceeded")
)

// ParseError wraps the message returned by the parser with the position of the
// token where the grammar was violated. Pos indexes the token sequence given to
// the parser, Token is nil when the input ended early. The message reports the
// token's 1-based column in the source text when there is a token.
type ParseError struct {
	Kind    error
	Pos     int
	Token   *Token
	message string
}

func newParseError(kind error, pos int, token *Token, message string) *ParseError {
	return &ParseError{kind, pos, token, message}
}

func (err *ParseError) Error() string {
	if err.Token == nil {
		return fmt.Sprintf("[token %d] Error at end: %s", err.Pos, err.message)
	}
	return fmt.Sprintf(
		"[col %d] Error at '%s': %s",
		err.Token.Pos+1,
		err.Token.Lexeme,
		err.message,
	)
}

func (err *ParseError) Unwrap() error {
	return err.Kind
}

// RuntimeError is returned when a well-formed term can not be evaluated. Name
// holds the identifier the error is about, if there is one.
type RuntimeError struct {
	Kind    error
	Name    string
	message string
}

func newRuntimeError(kind error, name string, message string) *RuntimeError {
	return &RuntimeError{kind, name, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("Error: %s", err.message)
}

func (err *RuntimeError) Unwrap() error {
	return err.Kind
}

// ArityError is returned when a callable receives the wrong number of
// arguments.
type ArityError struct {
	Name     string
	Expected int
	Actual   int
}

func newArityError(name string, expected, actual int) *ArityError {
	return &ArityError{name, expected, actual}
}

func (err *ArityError) Error() string {
	return fmt.Sprintf(
		"Error: Arity mismatch: %s expected %d arguments, got %d.",
		err.Name,
		err.Expected,
		err.Actual,
	)
}

func (err *ArityError) Unwrap() error {
	return ErrArityMismatch
}
