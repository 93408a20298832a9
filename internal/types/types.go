package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Scalar enumerates the numeric value kinds the language computes with.
// The declaration order is the promotion order: a later constant wins a
// mixed-type expression.
type Scalar uint8

const (
	Invalid Scalar = iota
	Bool1
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

func (s Scalar) String() string {
	switch s {
	case Bool1:
		return "bool"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	default:
		return fmt.Sprintf("Scalar(%d)", s)
	}
}

// IsFloat reports whether s is a floating-point kind.
func (s Scalar) IsFloat() bool {
	return s == Float32 || s == Float64
}

// IsInteger reports whether s is an integer kind. Bool1 counts: it is a
// one-bit integer and dispatches through the integer operator table.
func (s Scalar) IsInteger() bool {
	return s >= Bool1 && s <= Int64
}

// Valid reports whether s names a real scalar kind.
func (s Scalar) Valid() bool {
	return s >= Bool1 && s <= Float64
}

// Bits returns the storage width in bits.
func (s Scalar) Bits() uint8 {
	switch s {
	case Bool1:
		return 1
	case Int8:
		return 8
	case Int16:
		return 16
	case Int32:
		return 32
	case Int64, Float64:
		return 64
	case Float32:
		return 32
	default:
		return 0
	}
}

// Scalars returns every scalar kind in promotion order.
func Scalars() []Scalar {
	return []Scalar{Bool1, Int8, Int16, Int32, Int64, Float32, Float64}
}

// Type is a compact descriptor for a scalar or a fixed-length array of
// scalars. Count==0 means a plain scalar of kind Elem.
type Type struct {
	Elem  Scalar
	Count uint32
}

// ScalarOf describes a plain scalar value.
func ScalarOf(s Scalar) Type {
	return Type{Elem: s}
}

// ArrayOf describes a fixed-length array (vector or flattened matrix) of n
// elements. n must be positive and fit uint32.
func ArrayOf(elem Scalar, n int) Type {
	if n <= 0 {
		panic(fmt.Sprintf("types: array length %d out of range", n))
	}
	count, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("types: array length overflow: %w", err))
	}
	return Type{Elem: elem, Count: count}
}

// IsScalar reports whether t describes a single scalar value.
func (t Type) IsScalar() bool {
	return t.Count == 0 && t.Elem.Valid()
}

// IsArray reports whether t describes a fixed-length array.
func (t Type) IsArray() bool {
	return t.Count > 0 && t.Elem.Valid()
}

func (t Type) String() string {
	if t.Count > 0 {
		return fmt.Sprintf("[%d x %s]", t.Count, t.Elem)
	}
	return t.Elem.String()
}
