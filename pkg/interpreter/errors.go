package interpreter

import (
	"errors"
	"fmt"
)

// Error categories. Every evaluation failure is one of these; errors.Is
// against a sentinel reports the category of an *EvalError.
var (
	// ErrSyntax covers structural faults: reading a variable before any
	// assignment and reaching an expression node the evaluator does not
	// recognise.
	ErrSyntax = errors.New("syntax error")
	// ErrType covers operand type mismatches, rebinding a variable to a
	// different type, and non-Boolean conditions.
	ErrType = errors.New("type error")
	// ErrArithmetic covers division by zero.
	ErrArithmetic = errors.New("arithmetic error")
)

// EvalError is the single error type produced by evaluation. It aborts
// the whole evaluation chain: nothing retries or recovers below the
// caller of Evaluate.
type EvalError struct {
	Kind    error // one of the sentinels above
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

func (e *EvalError) Is(target error) bool {
	return target == e.Kind
}

func (e *EvalError) Unwrap() error {
	return e.Kind
}

func syntaxErrorf(format string, args ...any) error {
	return &EvalError{Kind: ErrSyntax, Message: fmt.Sprintf(format, args...)}
}

func typeErrorf(format string, args ...any) error {
	return &EvalError{Kind: ErrType, Message: fmt.Sprintf(format, args...)}
}

func arithmeticErrorf(format string, args ...any) error {
	return &EvalError{Kind: ErrArithmetic, Message: fmt.Sprintf(format, args...)}
}
