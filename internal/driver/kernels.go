package driver

import (
	"fmt"
	"math"
	"strings"

	"volt/internal/codegen"
	"volt/internal/diag"
	"volt/internal/interp"
	"volt/internal/ir"
	"volt/internal/token"
	"volt/internal/types"
)

// Kernel is one built demonstration function together with its designated
// result, an address when the result is an array.
type Kernel struct {
	Name string
	Fn   *ir.Func
	Out  ir.Value
}

// Kernels builds the demonstration set the emit command works with. Each
// kernel gets its own function and exercises a different slice of the
// generator; bitmask_blend triggers the float-bitwise fallback, so its
// warning lands in the returned bag.
func Kernels() ([]Kernel, *diag.Bag, error) {
	warns := diag.NewBag(8)
	builders := []struct {
		name  string
		build func(b *ir.Builder) (ir.Value, error)
	}{
		{"lerp3", buildLerp3},
		{"truthy_mask", buildTruthyMask},
		{"bitmask_blend", func(b *ir.Builder) (ir.Value, error) {
			return buildBitmaskBlend(b, warns)
		}},
		{"magnitude2", buildMagnitude2},
		{"quantize", buildQuantize},
	}
	out := make([]Kernel, 0, len(builders))
	for _, k := range builders {
		fn := ir.NewFunc(k.name)
		b := ir.NewBuilder(fn)
		res, err := k.build(b)
		if err != nil {
			return nil, nil, fmt.Errorf("kernel %s: %w", k.name, err)
		}
		out = append(out, Kernel{Name: k.name, Fn: fn, Out: res})
	}
	return out, warns, nil
}

// KernelModule wraps the kernel set in a module for dumping and encoding.
func KernelModule() (*ir.Module, []Kernel, *diag.Bag, error) {
	ks, warns, err := Kernels()
	if err != nil {
		return nil, nil, nil, err
	}
	m := ir.NewModule("kernels")
	for _, k := range ks {
		m.Add(k.Fn)
	}
	return m, ks, warns, nil
}

// Run executes the kernel and renders its result.
func (k Kernel) Run() (string, error) {
	tr, err := interp.Run(k.Fn)
	if err != nil {
		return "", err
	}
	return k.Result(tr), nil
}

// Result renders the kernel's output from a finished trace.
func (k Kernel) Result(tr *interp.Trace) string {
	if k.Out.Ptr && k.Out.Type.IsArray() {
		parts := make([]string, k.Out.Type.Count)
		for i := range parts {
			parts[i] = formatValue(tr.Elem(k.Out, uint32(i)))
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return formatValue(tr.Value(k.Out))
}

// componentwise a + (target-a)*t over mixed inputs promoted to f32
func buildLerp3(b *ir.Builder) (ir.Value, error) {
	a, err := codegen.Pack3(b,
		b.ConstInt(types.Int32, 0),
		b.ConstFloat(types.Float32, 0.5),
		b.ConstInt(types.Int8, 1))
	if err != nil {
		return ir.Value{}, err
	}
	target, err := codegen.Splat(b, b.ConstFloat(types.Float32, 2), 3)
	if err != nil {
		return ir.Value{}, err
	}
	t := b.ConstFloat(types.Float32, 0.25)
	av, err := codegen.Unpack(b, a, true)
	if err != nil {
		return ir.Value{}, err
	}
	tv, err := codegen.Unpack(b, target, true)
	if err != nil {
		return ir.Value{}, err
	}
	outs := make([]ir.Value, len(av))
	for i := range av {
		d, err := codegen.Binary(b, tv[i], av[i], token.OpSub, nil)
		if err != nil {
			return ir.Value{}, err
		}
		m, err := codegen.Binary(b, d, t, token.OpMul, nil)
		if err != nil {
			return ir.Value{}, err
		}
		r, err := codegen.Binary(b, av[i], m, token.OpAdd, nil)
		if err != nil {
			return ir.Value{}, err
		}
		outs[i] = r
	}
	return codegen.Pack(b, outs)
}

// truth flags of mixed scalars, NaN included
func buildTruthyMask(b *ir.Builder) (ir.Value, error) {
	ins := []ir.Value{
		b.ConstInt(types.Int32, 0),
		b.ConstFloat(types.Float64, math.NaN()),
		b.ConstFloat(types.Float32, 2.5),
		b.ConstBool(false),
	}
	flags := make([]ir.Value, 0, len(ins))
	for _, v := range ins {
		f, err := codegen.ToBool(b, v)
		if err != nil {
			return ir.Value{}, err
		}
		flags = append(flags, f)
	}
	return codegen.Pack(b, flags)
}

// bitwise AND on floats lands on the i64 fallback and warns
func buildBitmaskBlend(b *ir.Builder, warns *diag.Bag) (ir.Value, error) {
	return codegen.Binary(b,
		b.ConstFloat(types.Float64, 6.9),
		b.ConstFloat(types.Float64, 3.2),
		token.OpBitAnd, warns)
}

// squared length of a mixed-kind vector widened to f64
func buildMagnitude2(b *ir.Builder) (ir.Value, error) {
	v, err := codegen.PackCast(b, []ir.Value{
		b.ConstInt(types.Int32, 1),
		b.ConstFloat(types.Float32, 2.5),
		b.ConstInt(types.Int64, 2),
	})
	if err != nil {
		return ir.Value{}, err
	}
	w, err := codegen.CastArray(b, v, types.Float64)
	if err != nil {
		return ir.Value{}, err
	}
	x, y, z, err := codegen.Unpack3(b, w)
	if err != nil {
		return ir.Value{}, err
	}
	var sum ir.Value
	for i, addr := range []ir.Value{x, y, z} {
		c := b.Load(addr)
		sq, err := codegen.Binary(b, c, c, token.OpMul, nil)
		if err != nil {
			return ir.Value{}, err
		}
		if i == 0 {
			sum = sq
			continue
		}
		if sum, err = codegen.Binary(b, sum, sq, token.OpAdd, nil); err != nil {
			return ir.Value{}, err
		}
	}
	return sum, nil
}

// element conversion to i8: toward zero, wrapping out-of-range values
func buildQuantize(b *ir.Builder) (ir.Value, error) {
	src, err := codegen.Pack(b, []ir.Value{
		b.ConstFloat(types.Float64, -3.9),
		b.ConstFloat(types.Float64, 130),
		b.ConstFloat(types.Float64, 0.5),
	})
	if err != nil {
		return ir.Value{}, err
	}
	return codegen.CastArray(b, src, types.Int8)
}
