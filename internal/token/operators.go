package token

import "fmt"

// Operator enumerates binary operator kinds.
type Operator uint8

const (
	// OpInvalid marks the absence of an operator.
	OpInvalid Operator = iota
	// OpAdd represents the addition operator (+).
	OpAdd
	// OpSub represents the subtraction operator (-).
	OpSub
	// OpMul represents the multiplication operator (*).
	OpMul
	// OpDiv represents the division operator (/).
	OpDiv
	// OpMod represents the modulo operator (%).
	OpMod
	// OpEq represents the equality operator (==).
	OpEq
	OpNotEq
	// OpGreater represents the greater-than operator (>).
	OpGreater
	OpLess
	OpGreaterEq
	OpLessEq
	// OpLogicalAnd represents the logical AND operator (&&).
	OpLogicalAnd
	OpLogicalOr
	// OpBitAnd represents the bitwise AND operator (&).
	OpBitAnd
	OpBitOr
	OpBitXor
	// OpShl represents the left shift operator (<<).
	OpShl
	OpShr
)

// Class groups operators by dispatch behavior.
type Class uint8

const (
	ClassInvalid Class = iota
	ClassArithmetic
	ClassComparison
	ClassLogical
	ClassBitwise
)

func (c Class) String() string {
	switch c {
	case ClassArithmetic:
		return "arithmetic"
	case ClassComparison:
		return "comparison"
	case ClassLogical:
		return "logical"
	case ClassBitwise:
		return "bitwise"
	default:
		return fmt.Sprintf("Class(%d)", c)
	}
}

// Class returns the dispatch class of the operator.
func (op Operator) Class() Class {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return ClassArithmetic
	case OpEq, OpNotEq, OpGreater, OpLess, OpGreaterEq, OpLessEq:
		return ClassComparison
	case OpLogicalAnd, OpLogicalOr:
		return ClassLogical
	case OpBitAnd, OpBitOr, OpBitXor, OpShl, OpShr:
		return ClassBitwise
	default:
		return ClassInvalid
	}
}

// String returns the source symbol of the operator.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpGreaterEq:
		return ">="
	case OpLessEq:
		return "<="
	case OpLogicalAnd:
		return "&&"
	case OpLogicalOr:
		return "||"
	case OpBitAnd:
		return "&"
	case OpBitOr:
		return "|"
	case OpBitXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	default:
		return fmt.Sprintf("Operator(%d)", op)
	}
}

// Name returns a readable operator name for diagnostics and table dumps.
func (op Operator) Name() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpMod:
		return "modulo"
	case OpEq:
		return "equals"
	case OpNotEq:
		return "not equals"
	case OpGreater:
		return "greater than"
	case OpLess:
		return "less than"
	case OpGreaterEq:
		return "greater or equal"
	case OpLessEq:
		return "less or equal"
	case OpLogicalAnd:
		return "logical and"
	case OpLogicalOr:
		return "logical or"
	case OpBitAnd:
		return "bitwise and"
	case OpBitOr:
		return "bitwise or"
	case OpBitXor:
		return "bitwise xor"
	case OpShl:
		return "shift left"
	case OpShr:
		return "shift right"
	default:
		return "invalid"
	}
}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	ops := make([]Operator, 0, int(OpShr))
	for op := OpAdd; op <= OpShr; op++ {
		ops = append(ops, op)
	}
	return ops
}
