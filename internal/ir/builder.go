package ir

import (
	"fmt"
	"math"

	"volt/internal/types"
)

// Builder appends instructions to one Func and hands out value IDs. Misuse
// (loading a non-pointer, mixing operand kinds at the instruction level)
// panics: by the time code reaches the builder those are caller bugs, not
// recoverable input errors.
type Builder struct {
	fn *Func
}

// NewBuilder returns a builder appending to fn.
func NewBuilder(fn *Func) *Builder {
	if fn == nil {
		panic("ir: nil function")
	}
	return &Builder{fn: fn}
}

// Func returns the function under construction.
func (b *Builder) Func() *Func {
	return b.fn
}

func (b *Builder) define(t types.Type, ptr bool) Value {
	b.fn.NumValues++
	return Value{ID: ValueID(b.fn.NumValues), Type: t, Ptr: ptr}
}

func (b *Builder) push(in Instr) {
	b.fn.Instrs = append(b.fn.Instrs, in)
}

// ConstInt materializes a signed integer constant of kind s.
func (b *Builder) ConstInt(s types.Scalar, v int64) Value {
	if !s.IsInteger() {
		panic(fmt.Sprintf("ir: integer constant of kind %s", s))
	}
	return b.pushConst(s, uint64(v))
}

// ConstUint materializes an unsigned integer constant of kind s. Bool
// comparisons use this form for their zero.
func (b *Builder) ConstUint(s types.Scalar, v uint64) Value {
	if !s.IsInteger() {
		panic(fmt.Sprintf("ir: integer constant of kind %s", s))
	}
	return b.pushConst(s, v)
}

// ConstFloat materializes a float constant of kind s. Values for f32 are
// rounded to binary32 before storage.
func (b *Builder) ConstFloat(s types.Scalar, v float64) Value {
	if !s.IsFloat() {
		panic(fmt.Sprintf("ir: float constant of kind %s", s))
	}
	if s == types.Float32 {
		v = float64(float32(v))
	}
	return b.pushConst(s, math.Float64bits(v))
}

// ConstBool materializes a bool constant.
func (b *Builder) ConstBool(v bool) Value {
	bits := uint64(0)
	if v {
		bits = 1
	}
	return b.pushConst(types.Bool1, bits)
}

func (b *Builder) pushConst(s types.Scalar, bits uint64) Value {
	res := b.define(types.ScalarOf(s), false)
	b.push(Instr{Op: OpConst, Result: res, Const: ConstInstr{Type: s, Bits: bits}})
	return res
}

// Alloc reserves zero-initialized storage for t and returns its address.
func (b *Builder) Alloc(t types.Type) Value {
	if !t.IsScalar() && !t.IsArray() {
		panic(fmt.Sprintf("ir: alloc of invalid type %s", t))
	}
	res := b.define(t, true)
	b.push(Instr{Op: OpAlloc, Result: res, Alloc: AllocInstr{Type: t}})
	return res
}

// Load reads the scalar addr points at.
func (b *Builder) Load(addr Value) Value {
	if !addr.Ptr || !addr.Type.IsScalar() {
		panic(fmt.Sprintf("ir: load through %s", addr.TypeString()))
	}
	res := b.define(addr.Type, false)
	b.push(Instr{Op: OpLoad, Result: res, Load: LoadInstr{Addr: addr}})
	return res
}

// Store writes val to the scalar addr points at.
func (b *Builder) Store(addr, val Value) {
	if !addr.Ptr || !addr.Type.IsScalar() {
		panic(fmt.Sprintf("ir: store through %s", addr.TypeString()))
	}
	if val.Ptr || val.Type != addr.Type {
		panic(fmt.Sprintf("ir: store of %s through %s", val.TypeString(), addr.TypeString()))
	}
	b.push(Instr{Op: OpStore, Store: StoreInstr{Addr: addr, Val: val}})
}

// Elem returns the address of element index of the array addr points at.
func (b *Builder) Elem(addr Value, index uint32) Value {
	if !addr.Ptr || !addr.Type.IsArray() {
		panic(fmt.Sprintf("ir: elem of %s", addr.TypeString()))
	}
	if index >= addr.Type.Count {
		panic(fmt.Sprintf("ir: elem index %d out of range for %s", index, addr.Type))
	}
	res := b.define(types.ScalarOf(addr.Type.Elem), true)
	b.push(Instr{Op: OpElem, Result: res, Elem: ElemInstr{Addr: addr, Index: index}})
	return res
}

// Cast converts the scalar v to kind to.
func (b *Builder) Cast(kind CastKind, v Value, to types.Scalar, label string) Value {
	if v.Ptr || !v.Type.IsScalar() {
		panic(fmt.Sprintf("ir: cast of %s", v.TypeString()))
	}
	if kind == CastInvalid || !to.Valid() {
		panic(fmt.Sprintf("ir: cast %s to %s", kind, to))
	}
	res := b.define(types.ScalarOf(to), false)
	b.push(Instr{Op: OpCast, Result: res, Cast: CastInstr{Kind: kind, Src: v, To: to, Label: label}})
	return res
}

// Bin combines x and y, which must share one scalar kind.
func (b *Builder) Bin(kind BinKind, x, y Value, label string) Value {
	b.checkPair("bin", x, y)
	if kind == BinInvalid {
		panic("ir: invalid bin kind")
	}
	res := b.define(x.Type, false)
	b.push(Instr{Op: OpBin, Result: res, Bin: BinInstr{Kind: kind, X: x, Y: y, Label: label}})
	return res
}

// Cmp compares x and y, which must share one scalar kind, yielding bool.
func (b *Builder) Cmp(pred Pred, x, y Value, label string) Value {
	b.checkPair("cmp", x, y)
	if pred == PredInvalid {
		panic("ir: invalid predicate")
	}
	res := b.define(types.ScalarOf(types.Bool1), false)
	b.push(Instr{Op: OpCmp, Result: res, Cmp: CmpInstr{Pred: pred, X: x, Y: y, Label: label}})
	return res
}

func (b *Builder) checkPair(what string, x, y Value) {
	if x.Ptr || y.Ptr || !x.Type.IsScalar() || !y.Type.IsScalar() {
		panic(fmt.Sprintf("ir: %s of %s and %s", what, x.TypeString(), y.TypeString()))
	}
	if x.Type != y.Type {
		panic(fmt.Sprintf("ir: %s operand kinds differ: %s vs %s", what, x.Type, y.Type))
	}
}
