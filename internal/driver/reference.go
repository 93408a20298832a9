package driver

import (
	"math"
	"strconv"

	"volt/internal/interp"
	"volt/internal/ir"
	"volt/internal/token"
	"volt/internal/types"
)

// The reference model recomputes every matrix case directly in Go, without
// touching the builder or the evaluator. Verification compares generated
// and executed results against these values, so a wrong instruction choice
// (say zero- instead of sign-extension) shows up as a value mismatch.

// probe is one concrete operand. Integer kinds carry the canonical value in
// i, float kinds carry f with binary32 payloads pre-rounded.
type probe struct {
	i int64
	f float64
}

// probesFor returns the operand values exercised for one kind. Divisor
// positions skip zero separately; see binaryPairs.
func probesFor(s types.Scalar) []probe {
	switch s {
	case types.Bool1:
		return []probe{{i: 0}, {i: 1}}
	case types.Int8:
		return []probe{{i: 0}, {i: 1}, {i: -1}, {i: 9}, {i: 127}, {i: -128}}
	case types.Int16:
		return []probe{{i: 0}, {i: -7}, {i: 2}, {i: 300}, {i: 32767}}
	case types.Int32:
		return []probe{{i: 0}, {i: -7}, {i: 2}, {i: 100000}, {i: math.MaxInt32}}
	case types.Int64:
		return []probe{{i: 0}, {i: -7}, {i: 2}, {i: 1 << 40}, {i: math.MinInt64 + 1}}
	case types.Float32:
		return []probe{{f: 0}, {f: -0.5}, {f: 2.5}, {f: float64(float32(-3.9))}, {f: 1024}}
	case types.Float64:
		return []probe{{f: 0}, {f: -7.9}, {f: 0.1}, {f: 1e9}, {f: math.NaN()}}
	default:
		return nil
	}
}

// emitProbe materializes p as a constant of kind s.
func emitProbe(b *ir.Builder, s types.Scalar, p probe) ir.Value {
	if s.IsFloat() {
		return b.ConstFloat(s, p.f)
	}
	return b.ConstInt(s, p.i)
}

func wrapInt(s types.Scalar, v int64) int64 {
	switch s {
	case types.Bool1:
		return v & 1
	case types.Int8:
		return int64(int8(v))
	case types.Int16:
		return int64(int16(v))
	case types.Int32:
		return int64(int32(v))
	default:
		return v
	}
}

func roundFloat(s types.Scalar, f float64) float64 {
	if s == types.Float32 {
		return float64(float32(f))
	}
	return f
}

func boolProbe(b bool) probe {
	if b {
		return probe{i: 1}
	}
	return probe{}
}

// truthy is the coercion-to-bool contract: unordered not-equal against
// zero, so a float NaN counts as true.
func truthy(s types.Scalar, p probe) bool {
	if s.IsFloat() {
		return math.IsNaN(p.f) || p.f != 0
	}
	return p.i != 0
}

// refTrunc is float-to-integer conversion toward zero: NaN to zero,
// out-of-range clamped before wrapping to the target width.
func refTrunc(dst types.Scalar, f float64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 {
		return wrapInt(dst, math.MaxInt64)
	}
	if f < math.MinInt64 {
		return wrapInt(dst, math.MinInt64)
	}
	return wrapInt(dst, int64(f))
}

// refCast computes the expected result of converting p from src to dst.
// Conversion targeting bool uses the ordered compare, so NaN lands false;
// this is narrower than truthy on purpose.
func refCast(src, dst types.Scalar, p probe) probe {
	switch {
	case dst == types.Bool1:
		if src.IsFloat() {
			return boolProbe(!math.IsNaN(p.f) && p.f != 0)
		}
		return boolProbe(p.i != 0)
	case src.IsFloat() && dst.IsFloat():
		return probe{f: roundFloat(dst, p.f)}
	case src.IsFloat():
		return probe{i: refTrunc(dst, p.f)}
	case dst.IsFloat():
		return probe{f: roundFloat(dst, float64(p.i))}
	default:
		return probe{i: wrapInt(dst, p.i)}
	}
}

// refBinary computes the expected result of applying op to two operands of
// kind s, mirroring the two rewrites the apply path performs: logical
// operators coerce both sides to bool first, and bitwise operators on
// floats run over the i64 conversions of both sides. The returned kind is
// the result kind (bool for comparisons and logical operators, i64 for the
// float bitwise fallback, s otherwise).
func refBinary(s types.Scalar, op token.Operator, a, b probe) (types.Scalar, probe) {
	switch op.Class() {
	case token.ClassLogical:
		ta, tb := truthy(s, a), truthy(s, b)
		if op == token.OpLogicalAnd {
			return types.Bool1, boolProbe(ta && tb)
		}
		return types.Bool1, boolProbe(ta || tb)
	case token.ClassBitwise:
		if s.IsFloat() {
			a = probe{i: refTrunc(types.Int64, a.f)}
			b = probe{i: refTrunc(types.Int64, b.f)}
			s = types.Int64
		}
		switch op {
		case token.OpBitAnd:
			return s, probe{i: wrapInt(s, a.i & b.i)}
		case token.OpBitOr:
			return s, probe{i: wrapInt(s, a.i | b.i)}
		default:
			return s, probe{i: wrapInt(s, a.i ^ b.i)}
		}
	}
	if s.IsFloat() {
		return refBinaryFloat(s, op, a.f, b.f)
	}
	return refBinaryInt(s, op, a.i, b.i)
}

func refBinaryFloat(s types.Scalar, op token.Operator, a, b float64) (types.Scalar, probe) {
	switch op {
	case token.OpAdd:
		return s, probe{f: roundFloat(s, a + b)}
	case token.OpSub:
		return s, probe{f: roundFloat(s, a - b)}
	case token.OpMul:
		return s, probe{f: roundFloat(s, a * b)}
	case token.OpDiv:
		return s, probe{f: roundFloat(s, a / b)}
	case token.OpMod:
		return s, probe{f: roundFloat(s, math.Mod(a, b))}
	}
	ordered := !math.IsNaN(a) && !math.IsNaN(b)
	var r bool
	switch op {
	case token.OpEq:
		r = ordered && a == b
	case token.OpNotEq:
		r = ordered && a != b
	case token.OpGreater:
		r = a > b
	case token.OpLess:
		r = a < b
	case token.OpGreaterEq:
		r = a >= b
	default:
		r = a <= b
	}
	return types.Bool1, boolProbe(r)
}

func refBinaryInt(s types.Scalar, op token.Operator, a, b int64) (types.Scalar, probe) {
	switch op {
	case token.OpAdd:
		return s, probe{i: wrapInt(s, a + b)}
	case token.OpSub:
		return s, probe{i: wrapInt(s, a - b)}
	case token.OpMul:
		return s, probe{i: wrapInt(s, a * b)}
	case token.OpDiv:
		// pairs never put zero or a MinInt64/-1 trap here; see binaryPairs
		return s, probe{i: wrapInt(s, a/b)}
	case token.OpMod:
		if b == -1 {
			return s, probe{i: 0}
		}
		return s, probe{i: wrapInt(s, a%b)}
	case token.OpEq:
		return types.Bool1, boolProbe(a == b)
	case token.OpNotEq:
		return types.Bool1, boolProbe(a != b)
	case token.OpGreater:
		return types.Bool1, boolProbe(a > b)
	case token.OpLess:
		return types.Bool1, boolProbe(a < b)
	case token.OpGreaterEq:
		return types.Bool1, boolProbe(a >= b)
	default:
		return types.Bool1, boolProbe(a <= b)
	}
}

// formatProbe renders an expected value the same way formatValue renders a
// runtime one, so failures diff cleanly.
func formatProbe(s types.Scalar, p probe) string {
	if s == types.Bool1 {
		return strconv.FormatBool(p.i != 0)
	}
	if s.IsFloat() {
		bits := 64
		if s == types.Float32 {
			bits = 32
		}
		return strconv.FormatFloat(p.f, 'g', -1, bits)
	}
	return strconv.FormatInt(p.i, 10)
}

// formatValue renders an executed result for failure messages.
func formatValue(v interp.Value) string {
	s := v.Type.Elem
	if s == types.Bool1 {
		return strconv.FormatBool(v.Int != 0)
	}
	if s.IsFloat() {
		bits := 64
		if s == types.Float32 {
			bits = 32
		}
		return strconv.FormatFloat(v.Float, 'g', -1, bits)
	}
	return strconv.FormatInt(v.Int, 10)
}
