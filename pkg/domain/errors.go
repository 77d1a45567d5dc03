package domain

import (
	"errors"
	"fmt"
)

// ErrMissingOperand is returned when an operation needs X or Y and it is absent.
var ErrMissingOperand = errors.New("missing operand")

// ErrArithmetic is returned when an operation cannot produce a finite result:
// division by zero, out-of-domain arguments, singular tangents or unparseable operands.
var ErrArithmetic = errors.New("arithmetic error")

// ErrUnknownOp is returned when an Op value is outside the known set.
var ErrUnknownOp = errors.New("unknown operation")

// ErrUnknownKey is returned when an input token does not name a key.
var ErrUnknownKey = errors.New("unknown key")

// ErrInvalidNumber is returned when a literal is not a number in the configured format.
var ErrInvalidNumber = errors.New("invalid number")

// OperandError reports which operand was missing.
type OperandError struct {
	Which Operand
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingOperand, e.Which)
}

func (e *OperandError) Unwrap() error {
	return ErrMissingOperand
}

// ArithmeticError wraps a failed computation with the operation that caused it.
type ArithmeticError struct {
	Op      Op
	Shifted bool
	Reason  string
}

func (e *ArithmeticError) Error() string {
	name := e.Op.String()
	if e.Shifted {
		name = "shift+" + name
	}
	return fmt.Sprintf("%s: %s: %s", ErrArithmetic, name, e.Reason)
}

func (e *ArithmeticError) Unwrap() error {
	return ErrArithmetic
}
