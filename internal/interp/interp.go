package interp

import (
	"volt/internal/ir"
	"volt/internal/types"
)

// Trace is the result of executing one function: every defined value plus
// the final state of all allocations. Tests and the verification driver
// read generated code's results through it.
type Trace struct {
	fn    *ir.Func
	vals  []Value
	cells [][]Value
}

// Run executes fn top to bottom and returns the trace, or the first fault.
func Run(fn *ir.Func) (*Trace, error) {
	if fn == nil {
		return nil, faultf(FaultBadFunction, "nil function")
	}
	t := &Trace{fn: fn, vals: make([]Value, fn.NumValues+1)}
	for i := range fn.Instrs {
		in := &fn.Instrs[i]
		out, fault := t.step(in)
		if fault != nil {
			return nil, fault
		}
		if in.Result.Valid() {
			if int(in.Result.ID) >= len(t.vals) {
				return nil, faultf(FaultBadFunction, "result %s out of range", in.Result)
			}
			t.vals[in.Result.ID] = out
		}
	}
	return t, nil
}

func (t *Trace) step(in *ir.Instr) (Value, *Fault) {
	switch in.Op {
	case ir.OpConst:
		return constValue(in.Const), nil
	case ir.OpAlloc:
		return t.alloc(in.Alloc.Type), nil
	case ir.OpLoad:
		return t.load(in.Load.Addr)
	case ir.OpStore:
		return Value{}, t.store(in.Store.Addr, in.Store.Val)
	case ir.OpElem:
		return t.elem(in.Elem.Addr, in.Elem.Index)
	case ir.OpCast:
		return t.cast(in.Cast)
	case ir.OpBin:
		return t.bin(in.Bin)
	case ir.OpCmp:
		return t.cmp(in.Cmp)
	default:
		return Value{}, faultf(FaultUnimplemented, "instruction %s", in.Op)
	}
}

func (t *Trace) lookup(v ir.Value) (Value, *Fault) {
	if !v.Valid() || int(v.ID) >= len(t.vals) {
		return Value{}, faultf(FaultBadFunction, "undefined operand %s", v)
	}
	return t.vals[v.ID], nil
}

func (t *Trace) alloc(ty types.Type) Value {
	n := ty.Count
	if n == 0 {
		n = 1
	}
	cell := make([]Value, n)
	for i := range cell {
		cell[i] = Value{Type: types.ScalarOf(ty.Elem)}
	}
	t.cells = append(t.cells, cell)
	return Value{Type: ty, Ptr: true, Cell: uint32(len(t.cells) - 1)}
}

func (t *Trace) load(addr ir.Value) (Value, *Fault) {
	av, fault := t.lookup(addr)
	if fault != nil {
		return Value{}, fault
	}
	slot, fault := t.slot(av)
	if fault != nil {
		return Value{}, fault
	}
	return *slot, nil
}

func (t *Trace) store(addr, val ir.Value) *Fault {
	av, fault := t.lookup(addr)
	if fault != nil {
		return fault
	}
	vv, fault := t.lookup(val)
	if fault != nil {
		return fault
	}
	slot, fault := t.slot(av)
	if fault != nil {
		return fault
	}
	*slot = vv
	return nil
}

func (t *Trace) elem(addr ir.Value, index uint32) (Value, *Fault) {
	av, fault := t.lookup(addr)
	if fault != nil {
		return Value{}, fault
	}
	if !av.Ptr || !av.Type.IsArray() {
		return Value{}, faultf(FaultBadFunction, "elem of non-array address")
	}
	if index >= av.Type.Count {
		return Value{}, faultf(FaultOutOfBounds, "element %d of %s", index, av.Type)
	}
	return Value{
		Type: types.ScalarOf(av.Type.Elem),
		Ptr:  true,
		Cell: av.Cell,
		Off:  av.Off + index,
	}, nil
}

func (t *Trace) slot(av Value) (*Value, *Fault) {
	if !av.Ptr {
		return nil, faultf(FaultBadFunction, "memory access through non-address")
	}
	if int(av.Cell) >= len(t.cells) {
		return nil, faultf(FaultBadFunction, "dangling cell %d", av.Cell)
	}
	cell := t.cells[av.Cell]
	if int(av.Off) >= len(cell) {
		return nil, faultf(FaultOutOfBounds, "offset %d in cell of %d", av.Off, len(cell))
	}
	return &cell[av.Off], nil
}

// Value returns the runtime value behind a builder handle.
func (t *Trace) Value(v ir.Value) Value {
	got, fault := t.lookup(v)
	if fault != nil {
		panic(fault)
	}
	return got
}

// Int reads an integer-kind result.
func (t *Trace) Int(v ir.Value) int64 {
	return t.Value(v).Int
}

// Float reads a float-kind result.
func (t *Trace) Float(v ir.Value) float64 {
	return t.Value(v).Float
}

// Bool reads a result as a truth flag.
func (t *Trace) Bool(v ir.Value) bool {
	return t.Value(v).Bool()
}

// Elem reads element i of the array addr points at.
func (t *Trace) Elem(addr ir.Value, i uint32) Value {
	ev, fault := t.elem(addr, i)
	if fault != nil {
		panic(fault)
	}
	slot, fault := t.slot(ev)
	if fault != nil {
		panic(fault)
	}
	return *slot
}
