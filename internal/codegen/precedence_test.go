package codegen

import (
	"strings"
	"testing"

	"volt/internal/types"
)

func TestPrecedenceOrder(t *testing.T) {
	cases := []struct {
		a, b, want types.Scalar
	}{
		{types.Bool1, types.Int8, types.Int8},
		{types.Int8, types.Int16, types.Int16},
		{types.Int16, types.Int32, types.Int32},
		{types.Int32, types.Int64, types.Int64},
		{types.Int64, types.Float32, types.Float32},
		{types.Float32, types.Float64, types.Float64},
		{types.Int32, types.Float32, types.Float32},
		{types.Bool1, types.Float64, types.Float64},
	}
	for _, c := range cases {
		got, err := Precedence(types.ScalarOf(c.a), types.ScalarOf(c.b))
		if err != nil {
			t.Fatalf("Precedence(%s, %s): %v", c.a, c.b, err)
		}
		if got.Elem != c.want {
			t.Fatalf("Precedence(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestPrecedenceSymmetricAndTotal(t *testing.T) {
	for _, a := range types.Scalars() {
		for _, b := range types.Scalars() {
			ab, err := Precedence(types.ScalarOf(a), types.ScalarOf(b))
			if err != nil {
				t.Fatalf("Precedence(%s, %s): %v", a, b, err)
			}
			ba, err := Precedence(types.ScalarOf(b), types.ScalarOf(a))
			if err != nil {
				t.Fatalf("Precedence(%s, %s): %v", b, a, err)
			}
			if ab != ba {
				t.Fatalf("asymmetric: %s vs %s for (%s, %s)", ab, ba, a, b)
			}
			if ab.Elem != a && ab.Elem != b {
				t.Fatalf("Precedence(%s, %s) invented %s", a, b, ab)
			}
		}
	}
}

func TestPrecedenceEqualInputs(t *testing.T) {
	for _, s := range types.Scalars() {
		got, err := Precedence(types.ScalarOf(s), types.ScalarOf(s))
		if err != nil {
			t.Fatalf("Precedence(%s, %s): %v", s, s, err)
		}
		if got.Elem != s {
			t.Fatalf("equal inputs must return the type, got %s for %s", got, s)
		}
	}
}

func TestPrecedenceRejectsNonScalars(t *testing.T) {
	arr := types.ArrayOf(types.Float32, 3)
	_, err := Precedence(arr, types.ScalarOf(types.Int32))
	if KindOf(err) != ErrType {
		t.Fatalf("expected type error, got %v", err)
	}
	if !strings.Contains(err.Error(), "[3 x f32]") || !strings.Contains(err.Error(), "i32") {
		t.Fatalf("message must name both types: %v", err)
	}
}
