package codegen

import "volt/internal/types"

// scalarRank orders scalar kinds for implicit promotion. Higher rank wins a
// mixed-kind expression. The table is the single source of the order; no
// code compares kinds any other way.
var scalarRank = [...]uint8{
	types.Invalid: 0,
	types.Bool1:   1,
	types.Int8:    2,
	types.Int16:   3,
	types.Int32:   4,
	types.Int64:   5,
	types.Float32: 6,
	types.Float64: 7,
}

// Precedence returns the operand type a mixed binary expression promotes
// to. Symmetric and total over scalar pairs; equal inputs return that type.
// Non-scalar inputs fail with a type error naming both sides.
func Precedence(a, b types.Type) (types.Type, error) {
	if !a.IsScalar() || !b.IsScalar() {
		return types.Type{}, typeErrorf("no type precedence between %s and %s", a, b)
	}
	if scalarRank[b.Elem] > scalarRank[a.Elem] {
		return b, nil
	}
	return a, nil
}
