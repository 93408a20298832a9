package ir

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"volt/internal/types"
)

// Dump writes a human-readable representation of the module. The output is
// deterministic and golden-test friendly.
func Dump(w io.Writer, m *Module) error {
	if w == nil || m == nil {
		return nil
	}
	fmt.Fprintf(w, "module %s\n", m.Name)
	for _, f := range m.Funcs {
		fmt.Fprintln(w)
		if err := DumpFunc(w, f); err != nil {
			return err
		}
	}
	return nil
}

// DumpFunc writes one function.
func DumpFunc(w io.Writer, f *Func) error {
	if w == nil || f == nil {
		return nil
	}
	fmt.Fprintf(w, "func @%s {\n", f.Name)
	for i := range f.Instrs {
		fmt.Fprintf(w, "  %s\n", formatInstr(&f.Instrs[i]))
	}
	fmt.Fprintf(w, "}\n")
	return nil
}

func formatInstr(in *Instr) string {
	switch in.Op {
	case OpConst:
		return fmt.Sprintf("%s = const %s %s", in.Result, in.Const.Type, formatConst(in.Const))
	case OpAlloc:
		return fmt.Sprintf("%s = alloca %s", in.Result, in.Alloc.Type)
	case OpLoad:
		return fmt.Sprintf("%s = load %s %s", in.Result, in.Load.Addr.TypeString(), in.Load.Addr)
	case OpStore:
		s := in.Store
		return fmt.Sprintf("store %s %s, %s %s", s.Val.TypeString(), s.Val, s.Addr.TypeString(), s.Addr)
	case OpElem:
		e := in.Elem
		return fmt.Sprintf("%s = elem %s %s, %d", in.Result, e.Addr.TypeString(), e.Addr, e.Index)
	case OpCast:
		c := in.Cast
		line := fmt.Sprintf("%s = %s %s %s to %s", in.Result, c.Kind, c.Src.TypeString(), c.Src, c.To)
		return withLabel(line, c.Label)
	case OpBin:
		bi := in.Bin
		line := fmt.Sprintf("%s = %s %s %s, %s", in.Result, bi.Kind, bi.X.TypeString(), bi.X, bi.Y)
		return withLabel(line, bi.Label)
	case OpCmp:
		c := in.Cmp
		family := "icmp"
		if c.Pred.IsFloat() {
			family = "fcmp"
		}
		line := fmt.Sprintf("%s = %s %s %s %s, %s", in.Result, family, c.Pred, c.X.TypeString(), c.X, c.Y)
		return withLabel(line, c.Label)
	default:
		return fmt.Sprintf("?%s", in.Op)
	}
}

func withLabel(line, label string) string {
	if label == "" {
		return line
	}
	return line + "  ; " + label
}

func formatConst(c ConstInstr) string {
	switch {
	case c.Type == types.Bool1:
		if c.Bits != 0 {
			return "true"
		}
		return "false"
	case c.Type.IsInteger():
		return strconv.FormatInt(int64(c.Bits), 10)
	case c.Type == types.Float32:
		return strconv.FormatFloat(math.Float64frombits(c.Bits), 'g', -1, 32)
	case c.Type == types.Float64:
		return strconv.FormatFloat(math.Float64frombits(c.Bits), 'g', -1, 64)
	default:
		return fmt.Sprintf("bits(%#x)", c.Bits)
	}
}
