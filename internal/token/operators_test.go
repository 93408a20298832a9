package token

import (
	"strings"
	"testing"
)

func TestEveryOperatorHasClassSymbolName(t *testing.T) {
	for _, op := range Operators() {
		if op.Class() == ClassInvalid {
			t.Fatalf("%v has no class", op)
		}
		if strings.HasPrefix(op.String(), "Operator(") {
			t.Fatalf("%v has no symbol", op)
		}
		if op.Name() == "invalid" {
			t.Fatalf("%v has no name", op)
		}
	}
	if OpInvalid.Class() != ClassInvalid {
		t.Fatalf("OpInvalid must map to ClassInvalid")
	}
}

func TestClassMembership(t *testing.T) {
	cases := []struct {
		op    Operator
		class Class
	}{
		{OpAdd, ClassArithmetic},
		{OpMod, ClassArithmetic},
		{OpEq, ClassComparison},
		{OpLessEq, ClassComparison},
		{OpLogicalAnd, ClassLogical},
		{OpLogicalOr, ClassLogical},
		{OpBitXor, ClassBitwise},
		{OpShl, ClassBitwise},
		{OpShr, ClassBitwise},
	}
	for _, c := range cases {
		if got := c.op.Class(); got != c.class {
			t.Fatalf("%s class = %s, want %s", c.op, got, c.class)
		}
	}
}

func TestOperatorsOrderStable(t *testing.T) {
	ops := Operators()
	if len(ops) != 18 {
		t.Fatalf("expected 18 operators, got %d", len(ops))
	}
	if ops[0] != OpAdd || ops[len(ops)-1] != OpShr {
		t.Fatalf("unexpected iteration bounds: %v .. %v", ops[0], ops[len(ops)-1])
	}
}
