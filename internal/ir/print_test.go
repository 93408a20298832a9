package ir

import (
	"strings"
	"testing"

	"volt/internal/types"
)

func TestDumpFunc(t *testing.T) {
	fn := NewFunc("demo")
	b := NewBuilder(fn)
	arr := b.Alloc(types.ArrayOf(types.Float32, 2))
	el := b.Elem(arr, 1)
	c := b.ConstFloat(types.Float32, 2.5)
	b.Store(el, c)
	v := b.Load(el)
	w := b.Cast(CastFPExt, v, types.Float64, "widen")
	zero := b.ConstFloat(types.Float64, 0)
	sum := b.Bin(BinFAdd, w, zero, "")
	b.Cmp(PredFUne, sum, zero, "truth")

	var sb strings.Builder
	if err := DumpFunc(&sb, fn); err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := strings.Join([]string{
		"func @demo {",
		"  %1 = alloca [2 x f32]",
		"  %2 = elem [2 x f32]* %1, 1",
		"  %3 = const f32 2.5",
		"  store f32 %3, f32* %2",
		"  %4 = load f32* %2",
		"  %5 = fpext f32 %4 to f64  ; widen",
		"  %6 = const f64 0",
		"  %7 = fadd f64 %5, %6",
		"  %8 = fcmp une f64 %7, %6  ; truth",
		"}",
		"",
	}, "\n")
	if sb.String() != want {
		t.Fatalf("dump mismatch\n got:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestDumpModuleHeader(t *testing.T) {
	m := NewModule("kernels")
	m.Add(NewFunc("a"))
	m.Add(NewFunc("b"))
	var sb strings.Builder
	if err := Dump(&sb, m); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "module kernels\n") {
		t.Fatalf("missing module header:\n%s", out)
	}
	if !strings.Contains(out, "func @a {") || !strings.Contains(out, "func @b {") {
		t.Fatalf("missing funcs:\n%s", out)
	}
}

func TestConstFormatting(t *testing.T) {
	fn := NewFunc("consts")
	b := NewBuilder(fn)
	b.ConstBool(true)
	b.ConstInt(types.Int64, -9)
	b.ConstFloat(types.Float32, 0.1)

	var sb strings.Builder
	if err := DumpFunc(&sb, fn); err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, line := range []string{
		"%1 = const bool true",
		"%2 = const i64 -9",
		"%3 = const f32 0.1",
	} {
		if !strings.Contains(sb.String(), line) {
			t.Fatalf("missing %q in:\n%s", line, sb.String())
		}
	}
}
