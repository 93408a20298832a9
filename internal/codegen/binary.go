package codegen

import (
	"volt/internal/diag"
	"volt/internal/ir"
	"volt/internal/token"
	"volt/internal/types"
)

// BinaryOp is one resolved lowering of an operator for one scalar kind.
// Exactly one of Bin and Pred is set; comparisons yield bool, everything
// else preserves the operand kind.
type BinaryOp struct {
	Type  types.Scalar
	Token token.Operator
	Bin   ir.BinKind
	Pred  ir.Pred
	Label string
}

// IsCompare reports whether the lowering is a comparison.
func (op BinaryOp) IsCompare() bool {
	return op.Pred != ir.PredInvalid
}

// Mnemonic names the instruction the lowering emits, for table dumps.
func (op BinaryOp) Mnemonic() string {
	if op.IsCompare() {
		if op.Pred.IsFloat() {
			return "fcmp " + op.Pred.String()
		}
		return "icmp " + op.Pred.String()
	}
	return op.Bin.String()
}

// ResolveBinary selects the lowering of an operator for operands of one
// scalar kind. Floats support arithmetic and ordered comparison only:
// logical and bitwise operators on floats fail with a binary operation
// error (apply rewrites those before resolving, so only direct resolution
// sees it). Integers, bool included, support all four classes; logical
// and/or lower to the plain bitwise instructions since operands are already
// bool by the time they dispatch. Operators with no entry for the family,
// shifts among them, fail with a token error.
func ResolveBinary(t types.Scalar, op token.Operator, label string) (BinaryOp, error) {
	if !t.Valid() {
		return BinaryOp{}, typeErrorf("invalid operand type %s for binary operator %q", t, op)
	}
	out := BinaryOp{Type: t, Token: op, Label: label}
	if t.IsFloat() {
		switch op {
		case token.OpAdd:
			out.Bin = ir.BinFAdd
		case token.OpSub:
			out.Bin = ir.BinFSub
		case token.OpMul:
			out.Bin = ir.BinFMul
		case token.OpDiv:
			out.Bin = ir.BinFDiv
		case token.OpMod:
			out.Bin = ir.BinFRem
		case token.OpEq:
			out.Pred = ir.PredFOeq
		case token.OpNotEq:
			out.Pred = ir.PredFOne
		case token.OpGreater:
			out.Pred = ir.PredFOgt
		case token.OpLess:
			out.Pred = ir.PredFOlt
		case token.OpGreaterEq:
			out.Pred = ir.PredFOge
		case token.OpLessEq:
			out.Pred = ir.PredFOle
		default:
			if cls := op.Class(); cls == token.ClassLogical || cls == token.ClassBitwise {
				return BinaryOp{}, binaryOpErrorf("unable to perform operation %q on floating point values", op)
			}
			return BinaryOp{}, tokenErrorf("unrecognized binary operator %q", op)
		}
		return out, nil
	}
	switch op {
	case token.OpAdd:
		out.Bin = ir.BinAdd
	case token.OpSub:
		out.Bin = ir.BinSub
	case token.OpMul:
		out.Bin = ir.BinMul
	case token.OpDiv:
		out.Bin = ir.BinSDiv
	case token.OpMod:
		out.Bin = ir.BinSRem
	case token.OpEq:
		out.Pred = ir.PredIEq
	case token.OpNotEq:
		out.Pred = ir.PredINe
	case token.OpGreater:
		out.Pred = ir.PredISgt
	case token.OpLess:
		out.Pred = ir.PredISlt
	case token.OpGreaterEq:
		out.Pred = ir.PredISge
	case token.OpLessEq:
		out.Pred = ir.PredISle
	case token.OpLogicalAnd, token.OpBitAnd:
		out.Bin = ir.BinAnd
	case token.OpLogicalOr, token.OpBitOr:
		out.Bin = ir.BinOr
	case token.OpBitXor:
		out.Bin = ir.BinXor
	default:
		return BinaryOp{}, tokenErrorf("unrecognized binary operator %q", op)
	}
	return out, nil
}

// Emit applies the lowering to operands of the kind it was resolved for.
func (op BinaryOp) Emit(b *ir.Builder, lhs, rhs ir.Value) ir.Value {
	if op.IsCompare() {
		return b.Cmp(op.Pred, lhs, rhs, op.Label)
	}
	return b.Bin(op.Bin, lhs, rhs, op.Label)
}

// Binary lowers one binary expression over already-promoted operands. The
// operand types must match exactly; mixed pairs fail with a type error
// (Promote handles the implicit promotion before this point). Two rewrites
// happen here and nowhere else: logical operators push both operands
// through ToBool, and bitwise operators on floats cast both operands to
// i64, appending a warning to warn (nil drops it).
func Binary(b *ir.Builder, lhs, rhs ir.Value, op token.Operator, warn *diag.Bag) (ir.Value, error) {
	if lhs.Ptr || rhs.Ptr || !lhs.Type.IsScalar() || !rhs.Type.IsScalar() {
		return ir.Value{}, typeErrorf("binary operator %q requires scalar operands, got %s and %s",
			op, lhs.TypeString(), rhs.TypeString())
	}
	if lhs.Type != rhs.Type {
		return ir.Value{}, typeErrorf("mismatching operand types for %q: %s and %s",
			op, lhs.Type, rhs.Type)
	}
	var err error
	switch {
	case op.Class() == token.ClassLogical:
		if lhs, err = ToBool(b, lhs); err != nil {
			return ir.Value{}, err
		}
		if rhs, err = ToBool(b, rhs); err != nil {
			return ir.Value{}, err
		}
	case op.Class() == token.ClassBitwise && lhs.Type.Elem.IsFloat():
		from := lhs.Type.Elem
		if lhs, err = Convert(b, lhs, types.Int64); err != nil {
			return ir.Value{}, err
		}
		if rhs, err = Convert(b, rhs, types.Int64); err != nil {
			return ir.Value{}, err
		}
		warn.Add(diag.Warningf(diag.GenBitwiseFloatCast,
			"implicit cast from %s to %s for %q", from, types.Int64, op))
	}
	spec, err := ResolveBinary(lhs.Type.Elem, op, "")
	if err != nil {
		return ir.Value{}, err
	}
	return spec.Emit(b, lhs, rhs), nil
}

// Promote converts both operands to their precedence-resolved common kind.
// The usual call sequence is Promote then Binary.
func Promote(b *ir.Builder, x, y ir.Value) (ir.Value, ir.Value, error) {
	if x.Ptr || y.Ptr {
		return ir.Value{}, ir.Value{}, typeErrorf("cannot promote %s and %s", x.TypeString(), y.TypeString())
	}
	common, err := Precedence(x.Type, y.Type)
	if err != nil {
		return ir.Value{}, ir.Value{}, err
	}
	cx, err := Convert(b, x, common.Elem)
	if err != nil {
		return ir.Value{}, ir.Value{}, err
	}
	cy, err := Convert(b, y, common.Elem)
	if err != nil {
		return ir.Value{}, ir.Value{}, err
	}
	return cx, cy, nil
}
