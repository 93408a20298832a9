package interp

import (
	"math"

	"volt/internal/types"
)

// Value is one runtime scalar or address. Integer kinds, bool included,
// live sign-extended in Int (bool as 0/1); float kinds live in Float with
// f32 payloads kept rounded to binary32. Addresses carry the backing cell
// and an element offset, with Type naming the pointee.
type Value struct {
	Type  types.Type
	Ptr   bool
	Cell  uint32
	Off   uint32
	Int   int64
	Float float64
}

// Bool reads the value as a truth flag.
func (v Value) Bool() bool {
	return v.Int != 0
}

func asUint64(v int64) uint64 {
	return uint64(v) //nolint:gosec // G115: intentional bit-pattern reinterpretation for bitwise ops.
}

func asInt64(v uint64) int64 {
	return int64(v) //nolint:gosec // G115: intentional bit-pattern reinterpretation for fixed-width ints.
}

// canonInt folds a raw result into the canonical representation of kind s:
// masked to the kind's width and sign-extended back to int64. Bool stays
// 0/1 (its casts zero-extend, never sign-extend).
func canonInt(v int64, s types.Scalar) int64 {
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

// maskBits returns the unsigned mask covering the kind's width.
func maskBits(s types.Scalar) uint64 {
	bits := s.Bits()
	if bits == 0 || bits >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << bits) - 1
}

// roundTo folds a float result into the kind's precision.
func roundTo(s types.Scalar, f float64) float64 {
	if s == types.Float32 {
		return float64(float32(f))
	}
	return f
}

// truncToInt converts a float toward zero into the canonical integer of
// kind dst. NaN converts to zero and out-of-range values clamp before
// wrapping to width, keeping a behavior the hardware leaves undefined
// deterministic here.
func truncToInt(f float64, dst types.Scalar) int64 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 {
		return canonInt(math.MaxInt64, dst)
	}
	if f < math.MinInt64 {
		return canonInt(math.MinInt64, dst)
	}
	return canonInt(int64(f), dst)
}
