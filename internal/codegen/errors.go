package codegen

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure class of a codegen error.
type ErrorKind uint8

const (
	// ErrUnknown marks errors that did not originate in this package.
	ErrUnknown ErrorKind = iota
	// ErrType is a type-driven failure: unsupported operand types or a
	// conversion outside the cast table.
	ErrType
	// ErrToken is an operator the operand family has no lowering for.
	ErrToken
	// ErrBinaryOp is an operator class rejected for the operand family
	// before any fallback rewrite (logical/bitwise on floats).
	ErrBinaryOp
)

func (k ErrorKind) String() string {
	switch k {
	case ErrType:
		return "type error"
	case ErrToken:
		return "token error"
	case ErrBinaryOp:
		return "binary operation error"
	default:
		return "unknown error"
	}
}

// Error is the single error payload of the package. Messages name the
// operator symbols and type names involved; the front end attaches spans.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func typeErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrType, Message: fmt.Sprintf(format, args...)}
}

func tokenErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrToken, Message: fmt.Sprintf(format, args...)}
}

func binaryOpErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrBinaryOp, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err, ErrUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ErrUnknown
}
