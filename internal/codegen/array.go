package codegen

import (
	"fmt"

	"volt/internal/ir"
	"volt/internal/types"
)

// Array helpers operate on addresses of fixed-length arrays (what Alloc
// returns); loaded whole-array values do not exist in this IR. Wrong value
// categories fail with type errors, wrong lengths panic.

// Unpack returns the address of every element of the array arr points at,
// or the loaded elements when load is set.
func Unpack(b *ir.Builder, arr ir.Value, load bool) ([]ir.Value, error) {
	if !arr.Ptr || !arr.Type.IsArray() {
		return nil, typeErrorf("unpack expects an array address, got %s", arr.TypeString())
	}
	out := make([]ir.Value, arr.Type.Count)
	for i := range out {
		el := b.Elem(arr, uint32(i))
		if load {
			el = b.Load(el)
		}
		out[i] = el
	}
	return out, nil
}

// Index returns the address of element i.
func Index(b *ir.Builder, arr ir.Value, i uint32) (ir.Value, error) {
	if !arr.Ptr || !arr.Type.IsArray() {
		return ir.Value{}, typeErrorf("index expects an array address, got %s", arr.TypeString())
	}
	return b.Elem(arr, i), nil
}

// Unpack3 returns the addresses of the first three elements. The length-3
// fast path for vector code.
func Unpack3(b *ir.Builder, arr ir.Value) (x, y, z ir.Value, err error) {
	if !arr.Ptr || !arr.Type.IsArray() {
		err = typeErrorf("unpack3 expects an array address, got %s", arr.TypeString())
		return
	}
	if arr.Type.Count < 3 {
		panic(fmt.Sprintf("codegen: unpack3 of %s", arr.Type))
	}
	return b.Elem(arr, 0), b.Elem(arr, 1), b.Elem(arr, 2), nil
}

// Pack stores the scalars into fresh array storage and returns its address.
// All values must already share one kind; PackCast promotes first instead.
func Pack(b *ir.Builder, vals []ir.Value) (ir.Value, error) {
	if len(vals) == 0 {
		return ir.Value{}, typeErrorf("pack of no values")
	}
	for _, v := range vals {
		if v.Ptr || !v.Type.IsScalar() {
			return ir.Value{}, typeErrorf("pack expects scalar values, got %s", v.TypeString())
		}
		if v.Type != vals[0].Type {
			return ir.Value{}, typeErrorf("pack requires matching value types, got %s and %s",
				vals[0].Type, v.Type)
		}
	}
	arr := b.Alloc(types.ArrayOf(vals[0].Type.Elem, len(vals)))
	for i, v := range vals {
		b.Store(b.Elem(arr, uint32(i)), v)
	}
	return arr, nil
}

// PackCast promotes every value to the highest-precedence kind among them,
// seeded at bool, then packs. The mixed-literal path: {bool, i32, f32}
// packs as [3 x f32].
func PackCast(b *ir.Builder, vals []ir.Value) (ir.Value, error) {
	if len(vals) == 0 {
		return ir.Value{}, typeErrorf("pack of no values")
	}
	common := types.ScalarOf(types.Bool1)
	for _, v := range vals {
		if v.Ptr {
			return ir.Value{}, typeErrorf("pack expects scalar values, got %s", v.TypeString())
		}
		next, err := Precedence(common, v.Type)
		if err != nil {
			return ir.Value{}, err
		}
		common = next
	}
	cast := make([]ir.Value, len(vals))
	for i, v := range vals {
		c, err := convert(b, v, common.Elem, "packcast")
		if err != nil {
			return ir.Value{}, err
		}
		cast[i] = c
	}
	return Pack(b, cast)
}

// Pack3 packs three scalars after resolving their common kind pairwise.
func Pack3(b *ir.Builder, x, y, z ir.Value) (ir.Value, error) {
	common, err := Precedence(x.Type, y.Type)
	if err != nil {
		return ir.Value{}, err
	}
	common, err = Precedence(common, z.Type)
	if err != nil {
		return ir.Value{}, err
	}
	out := make([]ir.Value, 0, 3)
	for _, v := range []ir.Value{x, y, z} {
		c, err := convert(b, v, common.Elem, "pack3")
		if err != nil {
			return ir.Value{}, err
		}
		out = append(out, c)
	}
	return Pack(b, out)
}

// Splat broadcasts one scalar into an n-element array.
func Splat(b *ir.Builder, v ir.Value, n int) (ir.Value, error) {
	if v.Ptr || !v.Type.IsScalar() {
		return ir.Value{}, typeErrorf("splat expects a scalar value, got %s", v.TypeString())
	}
	arr := b.Alloc(types.ArrayOf(v.Type.Elem, n))
	for i := 0; i < n; i++ {
		b.Store(b.Elem(arr, uint32(i)), v)
	}
	return arr, nil
}

// CastArray converts every element into fresh storage of the target kind.
// Arrays already of that kind are returned unchanged.
func CastArray(b *ir.Builder, arr ir.Value, elem types.Scalar) (ir.Value, error) {
	if !arr.Ptr || !arr.Type.IsArray() {
		return ir.Value{}, typeErrorf("array cast expects an array address, got %s", arr.TypeString())
	}
	if !elem.Valid() {
		return ir.Value{}, typeErrorf("array cast to invalid kind %s", elem)
	}
	if arr.Type.Elem == elem {
		return arr, nil
	}
	vals, err := Unpack(b, arr, true)
	if err != nil {
		return ir.Value{}, err
	}
	out := b.Alloc(types.ArrayOf(elem, int(arr.Type.Count)))
	for i, v := range vals {
		c, err := convert(b, v, elem, "arraycast")
		if err != nil {
			return ir.Value{}, err
		}
		b.Store(b.Elem(out, uint32(i)), c)
	}
	return out, nil
}
