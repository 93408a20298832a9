package codegen

import (
	"volt/internal/ir"
	"volt/internal/types"
)

// ToBool emits the truth test for a scalar value: floats compare
// unordered-not-equal to 0.0 (so NaN is true), bool compares not-equal to
// unsigned zero, other integers compare not-equal to signed zero. The one
// truthiness rule in the language; logical operators route through it.
func ToBool(b *ir.Builder, v ir.Value) (ir.Value, error) {
	if v.Ptr || !v.Type.IsScalar() {
		return ir.Value{}, typeErrorf("cannot coerce %s to bool", v.TypeString())
	}
	s := v.Type.Elem
	switch {
	case s == types.Bool1:
		return b.Cmp(ir.PredINe, v, b.ConstUint(s, 0), ""), nil
	case s.IsFloat():
		return b.Cmp(ir.PredFUne, v, b.ConstFloat(s, 0), ""), nil
	default:
		return b.Cmp(ir.PredINe, v, b.ConstInt(s, 0), ""), nil
	}
}
