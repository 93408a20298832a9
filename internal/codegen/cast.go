package codegen

import (
	"volt/internal/ir"
	"volt/internal/types"
)

// CastOp is one resolved conversion rule between two scalar kinds. Kind is
// the conversion instruction, or zero when the rule lowers to a
// compare-against-zero (every cast targeting bool does: narrowing to bool
// must test for nonzero, not drop bits).
type CastOp struct {
	Src   types.Scalar
	Dst   types.Scalar
	Kind  ir.CastKind
	Label string
}

// LowersToCompare reports whether the rule emits a compare instead of a
// conversion instruction.
func (op CastOp) LowersToCompare() bool {
	return op.Dst == types.Bool1
}

// Mnemonic names the instruction the rule emits, for table dumps.
func (op CastOp) Mnemonic() string {
	if op.LowersToCompare() {
		if op.Src.IsFloat() {
			return "fcmp one"
		}
		return "icmp ne"
	}
	return op.Kind.String()
}

// ResolveCast selects the conversion rule for one ordered pair of distinct
// scalar kinds. Equal or invalid pairs are outside the table and fail with
// a type error; callers use Convert for the identity short-circuit.
func ResolveCast(src, dst types.Scalar, label string) (CastOp, error) {
	if !src.Valid() || !dst.Valid() || src == dst {
		return CastOp{}, typeErrorf("no conversion from %s to %s", src, dst)
	}
	op := CastOp{Src: src, Dst: dst, Label: label}
	switch {
	case dst == types.Bool1:
		// compare lowering, see LowersToCompare
	case src.IsFloat() && dst.IsFloat():
		if dst == types.Float64 {
			op.Kind = ir.CastFPExt
		} else {
			op.Kind = ir.CastFPTrunc
		}
	case src.IsFloat():
		// toward zero, like every signed float-to-int in the language
		op.Kind = ir.CastFPToSI
	case dst.IsFloat():
		if src == types.Bool1 {
			op.Kind = ir.CastUIToFP
		} else {
			op.Kind = ir.CastSIToFP
		}
	case src.Bits() < dst.Bits():
		if src == types.Bool1 {
			op.Kind = ir.CastZExt
		} else {
			op.Kind = ir.CastSExt
		}
	default:
		op.Kind = ir.CastTrunc
	}
	return op, nil
}

// Emit applies the rule to v. The bool target compares against the source
// kind's zero: unsigned zero for integers, ordered not-equal against 0.0
// for floats.
func (op CastOp) Emit(b *ir.Builder, v ir.Value) ir.Value {
	if op.LowersToCompare() {
		if op.Src.IsFloat() {
			return b.Cmp(ir.PredFOne, v, b.ConstFloat(op.Src, 0), op.Label)
		}
		return b.Cmp(ir.PredINe, v, b.ConstUint(op.Src, 0), op.Label)
	}
	return b.Cast(op.Kind, v, op.Dst, op.Label)
}

// Convert casts v to the scalar kind dst. Identity conversions return v
// untouched with nothing emitted.
func Convert(b *ir.Builder, v ir.Value, dst types.Scalar) (ir.Value, error) {
	return convert(b, v, dst, "")
}

func convert(b *ir.Builder, v ir.Value, dst types.Scalar, label string) (ir.Value, error) {
	if v.Ptr || !v.Type.IsScalar() {
		return ir.Value{}, typeErrorf("cannot convert %s to %s", v.TypeString(), dst)
	}
	if v.Type.Elem == dst {
		return v, nil
	}
	op, err := ResolveCast(v.Type.Elem, dst, label)
	if err != nil {
		return ir.Value{}, err
	}
	return op.Emit(b, v), nil
}
