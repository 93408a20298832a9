package codegen

import (
	"math"
	"testing"

	"volt/internal/interp"
	"volt/internal/ir"
	"volt/internal/types"
)

func TestToBoolFloats(t *testing.T) {
	cases := []struct {
		in   float64
		want bool
	}{
		{0, false},
		{math.Copysign(0, -1), false},
		{3.5, true},
		{-0.25, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}
	for _, c := range cases {
		fn := ir.NewFunc("tobool")
		b := ir.NewBuilder(fn)
		v, err := ToBool(b, b.ConstFloat(types.Float64, c.in))
		if err != nil {
			t.Fatalf("ToBool(%v): %v", c.in, err)
		}
		if v.Type.Elem != types.Bool1 {
			t.Fatalf("ToBool result kind = %s", v.Type)
		}
		tr, err := interp.Run(fn)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if got := tr.Bool(v); got != c.want {
			t.Fatalf("ToBool(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToBoolIntegers(t *testing.T) {
	cases := []struct {
		s    types.Scalar
		in   int64
		want bool
	}{
		{types.Int32, 0, false},
		{types.Int32, -5, true},
		{types.Int8, 1, true},
		{types.Int64, 0, false},
	}
	for _, c := range cases {
		fn := ir.NewFunc("tobool")
		b := ir.NewBuilder(fn)
		v, err := ToBool(b, b.ConstInt(c.s, c.in))
		if err != nil {
			t.Fatalf("ToBool(%s %d): %v", c.s, c.in, err)
		}
		tr, err := interp.Run(fn)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if got := tr.Bool(v); got != c.want {
			t.Fatalf("ToBool(%s %d) = %v, want %v", c.s, c.in, got, c.want)
		}
	}
}

func TestToBoolOnBoolStillCompares(t *testing.T) {
	fn := ir.NewFunc("tobool")
	b := ir.NewBuilder(fn)
	v, err := ToBool(b, b.ConstBool(true))
	if err != nil {
		t.Fatalf("ToBool(bool): %v", err)
	}
	tr, err := interp.Run(fn)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !tr.Bool(v) {
		t.Fatalf("ToBool(true) = false")
	}
	// the compare is emitted even for bool inputs
	last := fn.Instrs[len(fn.Instrs)-1]
	if last.Op != ir.OpCmp || last.Cmp.Pred != ir.PredINe {
		t.Fatalf("bool input must still compare, got %s", last.Op)
	}
}

func TestToBoolRejectsAddresses(t *testing.T) {
	fn := ir.NewFunc("tobool")
	b := ir.NewBuilder(fn)
	arr := b.Alloc(types.ArrayOf(types.Float32, 3))
	if _, err := ToBool(b, arr); KindOf(err) != ErrType {
		t.Fatalf("expected type error, got %v", err)
	}
}
