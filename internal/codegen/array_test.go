package codegen

import (
	"testing"

	"volt/internal/ir"
	"volt/internal/types"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	fn := ir.NewFunc("roundtrip")
	b := ir.NewBuilder(fn)
	vals := []ir.Value{
		b.ConstInt(types.Int32, 1),
		b.ConstInt(types.Int32, 2),
		b.ConstInt(types.Int32, 3),
	}
	arr, err := Pack(b, vals)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if arr.Type != types.ArrayOf(types.Int32, 3) || !arr.Ptr {
		t.Fatalf("pack result = %s", arr.TypeString())
	}
	out, err := Unpack(b, arr, true)
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	tr := mustRun(t, fn)
	for i, v := range out {
		if got := tr.Int(v); got != int64(i)+1 {
			t.Fatalf("element %d = %d, want %d", i, got, i+1)
		}
	}
}

func TestUnpackAddressesVersusLoads(t *testing.T) {
	fn := ir.NewFunc("unpack")
	b := ir.NewBuilder(fn)
	arr, err := Splat(b, b.ConstInt(types.Int16, 9), 2)
	if err != nil {
		t.Fatalf("splat: %v", err)
	}
	addrs, err := Unpack(b, arr, false)
	if err != nil {
		t.Fatalf("unpack addrs: %v", err)
	}
	for i, a := range addrs {
		if !a.Ptr || a.Type.Elem != types.Int16 {
			t.Fatalf("address %d = %s", i, a.TypeString())
		}
	}
	loaded := b.Load(addrs[1])
	tr := mustRun(t, fn)
	if got := tr.Int(loaded); got != 9 {
		t.Fatalf("load through unpacked address = %d", got)
	}
}

func TestPackRejectsMixedKinds(t *testing.T) {
	fn := ir.NewFunc("mixed")
	b := ir.NewBuilder(fn)
	vals := []ir.Value{
		b.ConstInt(types.Int32, 1),
		b.ConstFloat(types.Float32, 2),
	}
	_, err := Pack(b, vals)
	if KindOf(err) != ErrType {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestPackCastPromotesSeededAtBool(t *testing.T) {
	fn := ir.NewFunc("packcast")
	b := ir.NewBuilder(fn)
	vals := []ir.Value{
		b.ConstBool(true),
		b.ConstInt(types.Int32, 5),
		b.ConstFloat(types.Float32, 2.5),
	}
	arr, err := PackCast(b, vals)
	if err != nil {
		t.Fatalf("packcast: %v", err)
	}
	if arr.Type != types.ArrayOf(types.Float32, 3) {
		t.Fatalf("packcast type = %s, want [3 x f32]", arr.Type)
	}
	tr := mustRun(t, fn)
	want := []float64{1, 5, 2.5}
	for i, w := range want {
		if got := tr.Elem(arr, uint32(i)).Float; got != w {
			t.Fatalf("element %d = %v, want %v", i, got, w)
		}
	}
}

func TestPackCastAllBoolsStaysBool(t *testing.T) {
	fn := ir.NewFunc("packcast")
	b := ir.NewBuilder(fn)
	arr, err := PackCast(b, []ir.Value{b.ConstBool(true), b.ConstBool(false)})
	if err != nil {
		t.Fatalf("packcast: %v", err)
	}
	if arr.Type.Elem != types.Bool1 {
		t.Fatalf("bool pack promoted to %s", arr.Type)
	}
}

func TestPack3ResolvesPairwise(t *testing.T) {
	fn := ir.NewFunc("pack3")
	b := ir.NewBuilder(fn)
	arr, err := Pack3(b,
		b.ConstBool(true),
		b.ConstInt(types.Int16, -3),
		b.ConstFloat(types.Float64, 0.5),
	)
	if err != nil {
		t.Fatalf("pack3: %v", err)
	}
	if arr.Type != types.ArrayOf(types.Float64, 3) {
		t.Fatalf("pack3 type = %s", arr.Type)
	}
	tr := mustRun(t, fn)
	want := []float64{1, -3, 0.5}
	for i, w := range want {
		if got := tr.Elem(arr, uint32(i)).Float; got != w {
			t.Fatalf("element %d = %v, want %v", i, got, w)
		}
	}
}

func TestUnpack3YieldsAddresses(t *testing.T) {
	fn := ir.NewFunc("unpack3")
	b := ir.NewBuilder(fn)
	arr, err := Splat(b, b.ConstFloat(types.Float32, 4.5), 3)
	if err != nil {
		t.Fatalf("splat: %v", err)
	}
	x, y, z, err := Unpack3(b, arr)
	if err != nil {
		t.Fatalf("unpack3: %v", err)
	}
	for i, a := range []ir.Value{x, y, z} {
		if !a.Ptr {
			t.Fatalf("component %d must be an address", i)
		}
	}
	lz := b.Load(z)
	tr := mustRun(t, fn)
	if got := tr.Float(lz); got != float64(float32(4.5)) {
		t.Fatalf("z = %v", got)
	}
}

func TestUnpack3TooShortPanics(t *testing.T) {
	fn := ir.NewFunc("unpack3")
	b := ir.NewBuilder(fn)
	arr := b.Alloc(types.ArrayOf(types.Int32, 2))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for short array")
		}
	}()
	_, _, _, _ = Unpack3(b, arr)
}

func TestIndexAddress(t *testing.T) {
	fn := ir.NewFunc("index")
	b := ir.NewBuilder(fn)
	arr := b.Alloc(types.ArrayOf(types.Int64, 4))
	at, err := Index(b, arr, 3)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	b.Store(at, b.ConstInt(types.Int64, -11))
	got := b.Load(at)
	tr := mustRun(t, fn)
	if tr.Int(got) != -11 {
		t.Fatalf("store/load through Index = %d", tr.Int(got))
	}
}

func TestCastArrayElementwise(t *testing.T) {
	fn := ir.NewFunc("arraycast")
	b := ir.NewBuilder(fn)
	arr, err := PackCast(b, []ir.Value{
		b.ConstFloat(types.Float64, 1.9),
		b.ConstFloat(types.Float64, -2.9),
		b.ConstFloat(types.Float64, 0.5),
	})
	if err != nil {
		t.Fatalf("packcast: %v", err)
	}
	ints, err := CastArray(b, arr, types.Int32)
	if err != nil {
		t.Fatalf("castarray: %v", err)
	}
	if ints.Type != types.ArrayOf(types.Int32, 3) {
		t.Fatalf("castarray type = %s", ints.Type)
	}
	tr := mustRun(t, fn)
	want := []int64{1, -2, 0}
	for i, w := range want {
		if got := tr.Elem(ints, uint32(i)).Int; got != w {
			t.Fatalf("element %d = %d, want %d", i, got, w)
		}
	}
}

func TestCastArraySameKindIsIdentity(t *testing.T) {
	fn := ir.NewFunc("arraycast")
	b := ir.NewBuilder(fn)
	arr := b.Alloc(types.ArrayOf(types.Int32, 3))
	before := len(fn.Instrs)
	same, err := CastArray(b, arr, types.Int32)
	if err != nil {
		t.Fatalf("castarray: %v", err)
	}
	if same != arr || len(fn.Instrs) != before {
		t.Fatalf("same-kind cast must return the array untouched")
	}
}

func TestArrayOpsRejectScalars(t *testing.T) {
	fn := ir.NewFunc("reject")
	b := ir.NewBuilder(fn)
	v := b.ConstInt(types.Int32, 1)
	if _, err := Unpack(b, v, true); KindOf(err) != ErrType {
		t.Fatalf("unpack of scalar: %v", err)
	}
	if _, err := CastArray(b, v, types.Int64); KindOf(err) != ErrType {
		t.Fatalf("castarray of scalar: %v", err)
	}
	if _, err := Index(b, v, 0); KindOf(err) != ErrType {
		t.Fatalf("index of scalar: %v", err)
	}
	if _, _, _, err := Unpack3(b, v); KindOf(err) != ErrType {
		t.Fatalf("unpack3 of scalar: %v", err)
	}
}
