package ir

import (
	"fmt"

	"volt/internal/types"
)

// ValueID identifies a value inside one Func. IDs are dense and 1-based;
// 0 marks the absence of a value.
type ValueID uint32

// NoValue marks the absence of a value (store instructions produce none).
const NoValue ValueID = 0

// Value is an immutable handle to an SSA value produced by a builder. Ptr
// marks an address of Type rather than a loaded Type; array storage is only
// ever reached through such addresses.
type Value struct {
	ID   ValueID
	Type types.Type
	Ptr  bool
}

// Valid reports whether the handle refers to a produced value.
func (v Value) Valid() bool {
	return v.ID != NoValue
}

// TypeString renders the value's type for diagnostics ("f32", "[3 x f32]*").
func (v Value) TypeString() string {
	if v.Ptr {
		return v.Type.String() + "*"
	}
	return v.Type.String()
}

func (v Value) String() string {
	return fmt.Sprintf("%%%d", v.ID)
}
