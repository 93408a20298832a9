package interp

import (
	"math"

	"volt/internal/ir"
	"volt/internal/types"
)

func constValue(c ir.ConstInstr) Value {
	out := Value{Type: types.ScalarOf(c.Type)}
	if c.Type.IsFloat() {
		out.Float = roundTo(c.Type, math.Float64frombits(c.Bits))
		return out
	}
	out.Int = canonInt(asInt64(c.Bits), c.Type)
	return out
}

func (t *Trace) cast(c ir.CastInstr) (Value, *Fault) {
	src, fault := t.lookup(c.Src)
	if fault != nil {
		return Value{}, fault
	}
	out := Value{Type: types.ScalarOf(c.To)}
	switch c.Kind {
	case ir.CastFPExt:
		// f32 payloads already live in a float64
		out.Float = src.Float
	case ir.CastFPTrunc:
		out.Float = float64(float32(src.Float))
	case ir.CastSIToFP:
		out.Float = roundTo(c.To, float64(src.Int))
	case ir.CastUIToFP:
		out.Float = roundTo(c.To, float64(asUint64(src.Int)&maskBits(src.Type.Elem)))
	case ir.CastFPToSI:
		out.Int = truncToInt(src.Float, c.To)
	case ir.CastSExt:
		// canonical storage is sign-extended, widening is a no-op
		out.Int = src.Int
	case ir.CastZExt:
		out.Int = canonInt(asInt64(asUint64(src.Int)&maskBits(src.Type.Elem)), c.To)
	case ir.CastTrunc:
		out.Int = canonInt(src.Int, c.To)
	default:
		return Value{}, faultf(FaultUnimplemented, "cast %s", c.Kind)
	}
	return out, nil
}

func (t *Trace) bin(bi ir.BinInstr) (Value, *Fault) {
	x, fault := t.lookup(bi.X)
	if fault != nil {
		return Value{}, fault
	}
	y, fault := t.lookup(bi.Y)
	if fault != nil {
		return Value{}, fault
	}
	s := x.Type.Elem
	out := Value{Type: x.Type}
	if bi.Kind.IsFloat() {
		f, fault := evalFloatBin(bi.Kind, x.Float, y.Float)
		if fault != nil {
			return Value{}, fault
		}
		out.Float = roundTo(s, f)
		return out, nil
	}
	r, fault := evalIntBin(bi.Kind, x.Int, y.Int)
	if fault != nil {
		return Value{}, fault
	}
	out.Int = canonInt(r, s)
	return out, nil
}

// evalFloatBin computes in float64; the caller rounds f32 results back to
// binary32, which matches computing in binary32 for these operations.
func evalFloatBin(kind ir.BinKind, a, b float64) (float64, *Fault) {
	switch kind {
	case ir.BinFAdd:
		return a + b, nil
	case ir.BinFSub:
		return a - b, nil
	case ir.BinFMul:
		return a * b, nil
	case ir.BinFDiv:
		return a / b, nil
	case ir.BinFRem:
		return math.Mod(a, b), nil
	default:
		return 0, faultf(FaultUnimplemented, "float op %s", kind)
	}
}

func evalIntBin(kind ir.BinKind, a, b int64) (int64, *Fault) {
	switch kind {
	case ir.BinAdd:
		return a + b, nil
	case ir.BinSub:
		return a - b, nil
	case ir.BinMul:
		return a * b, nil
	case ir.BinSDiv:
		if b == 0 {
			return 0, faultf(FaultDivideByZero, "division by zero")
		}
		if a == math.MinInt64 && b == -1 {
			return 0, faultf(FaultIntOverflow, "division overflow: %d / %d", a, b)
		}
		return a / b, nil
	case ir.BinSRem:
		if b == 0 {
			return 0, faultf(FaultDivideByZero, "remainder by zero")
		}
		if b == -1 {
			// the exact remainder; sidesteps the one overflowing case
			return 0, nil
		}
		return a % b, nil
	case ir.BinAnd:
		return asInt64(asUint64(a) & asUint64(b)), nil
	case ir.BinOr:
		return asInt64(asUint64(a) | asUint64(b)), nil
	case ir.BinXor:
		return asInt64(asUint64(a) ^ asUint64(b)), nil
	default:
		return 0, faultf(FaultUnimplemented, "int op %s", kind)
	}
}

func (t *Trace) cmp(c ir.CmpInstr) (Value, *Fault) {
	x, fault := t.lookup(c.X)
	if fault != nil {
		return Value{}, fault
	}
	y, fault := t.lookup(c.Y)
	if fault != nil {
		return Value{}, fault
	}
	var res bool
	if c.Pred.IsFloat() {
		res, fault = evalFloatPred(c.Pred, x.Float, y.Float)
	} else {
		res, fault = evalIntPred(c.Pred, x.Int, y.Int)
	}
	if fault != nil {
		return Value{}, fault
	}
	out := Value{Type: types.ScalarOf(types.Bool1)}
	if res {
		out.Int = 1
	}
	return out, nil
}

// evalFloatPred implements the ordered predicates (false when either side
// is NaN) plus une, the unordered not-equal truthiness uses.
func evalFloatPred(pred ir.Pred, a, b float64) (bool, *Fault) {
	switch pred {
	case ir.PredFOeq:
		return a == b, nil
	case ir.PredFOne:
		return !math.IsNaN(a) && !math.IsNaN(b) && a != b, nil
	case ir.PredFOgt:
		return a > b, nil
	case ir.PredFOlt:
		return a < b, nil
	case ir.PredFOge:
		return a >= b, nil
	case ir.PredFOle:
		return a <= b, nil
	case ir.PredFUne:
		return math.IsNaN(a) || math.IsNaN(b) || a != b, nil
	default:
		return false, faultf(FaultUnimplemented, "float predicate %s", pred)
	}
}

func evalIntPred(pred ir.Pred, a, b int64) (bool, *Fault) {
	switch pred {
	case ir.PredIEq:
		return a == b, nil
	case ir.PredINe:
		return a != b, nil
	case ir.PredISgt:
		return a > b, nil
	case ir.PredISlt:
		return a < b, nil
	case ir.PredISge:
		return a >= b, nil
	case ir.PredISle:
		return a <= b, nil
	default:
		return false, faultf(FaultUnimplemented, "int predicate %s", pred)
	}
}
