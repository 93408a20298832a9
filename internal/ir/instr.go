package ir

import (
	"fmt"

	"volt/internal/types"
)

// Op enumerates instruction kinds.
type Op uint8

const (
	// OpConst materializes a scalar constant.
	OpConst Op = iota
	// OpAlloc reserves storage and yields its address.
	OpAlloc
	// OpLoad reads a scalar through an address.
	OpLoad
	// OpStore writes a scalar through an address.
	OpStore
	// OpElem yields the address of one array element.
	OpElem
	// OpCast converts a scalar to another scalar kind.
	OpCast
	// OpBin combines two scalars of identical kind.
	OpBin
	// OpCmp compares two scalars of identical kind, yielding bool.
	OpCmp
)

func (op Op) String() string {
	switch op {
	case OpConst:
		return "const"
	case OpAlloc:
		return "alloca"
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpElem:
		return "elem"
	case OpCast:
		return "cast"
	case OpBin:
		return "bin"
	case OpCmp:
		return "cmp"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// CastKind enumerates scalar conversion instructions.
type CastKind uint8

const (
	CastInvalid CastKind = iota
	// CastFPExt widens f32 to f64.
	CastFPExt
	// CastFPTrunc narrows f64 to f32.
	CastFPTrunc
	// CastSIToFP converts a signed integer to floating point.
	CastSIToFP
	// CastUIToFP converts an unsigned integer (bool) to floating point.
	CastUIToFP
	// CastFPToSI truncates floating point toward zero into a signed integer.
	CastFPToSI
	// CastSExt sign-extends an integer to a wider width.
	CastSExt
	// CastZExt zero-extends an integer (bool sources) to a wider width.
	CastZExt
	// CastTrunc drops high bits to a narrower integer width.
	CastTrunc
)

func (k CastKind) String() string {
	switch k {
	case CastFPExt:
		return "fpext"
	case CastFPTrunc:
		return "fptrunc"
	case CastSIToFP:
		return "sitofp"
	case CastUIToFP:
		return "uitofp"
	case CastFPToSI:
		return "fptosi"
	case CastSExt:
		return "sext"
	case CastZExt:
		return "zext"
	case CastTrunc:
		return "trunc"
	default:
		return fmt.Sprintf("CastKind(%d)", k)
	}
}

// BinKind enumerates two-operand value instructions. Integer add/sub/mul
// wrap on overflow; there is no trapping variant.
type BinKind uint8

const (
	BinInvalid BinKind = iota
	BinAdd
	BinSub
	BinMul
	// BinSDiv is signed division truncating toward zero.
	BinSDiv
	// BinSRem is signed remainder taking the dividend's sign.
	BinSRem
	BinAnd
	BinOr
	BinXor
	BinFAdd
	BinFSub
	BinFMul
	BinFDiv
	// BinFRem is IEEE remainder taking the dividend's sign.
	BinFRem
)

func (k BinKind) String() string {
	switch k {
	case BinAdd:
		return "add"
	case BinSub:
		return "sub"
	case BinMul:
		return "mul"
	case BinSDiv:
		return "sdiv"
	case BinSRem:
		return "srem"
	case BinAnd:
		return "and"
	case BinOr:
		return "or"
	case BinXor:
		return "xor"
	case BinFAdd:
		return "fadd"
	case BinFSub:
		return "fsub"
	case BinFMul:
		return "fmul"
	case BinFDiv:
		return "fdiv"
	case BinFRem:
		return "frem"
	default:
		return fmt.Sprintf("BinKind(%d)", k)
	}
}

// IsFloat reports whether the instruction operates on floating point.
func (k BinKind) IsFloat() bool {
	return k >= BinFAdd && k <= BinFRem
}

// Pred enumerates comparison predicates. Integer comparisons are signed.
// Float comparisons are ordered (false when either side is NaN) except
// PredFUne, the unordered not-equal used by boolean coercion so that NaN
// coerces to true.
type Pred uint8

const (
	PredInvalid Pred = iota
	PredIEq
	PredINe
	PredISgt
	PredISlt
	PredISge
	PredISle
	PredFOeq
	PredFOne
	PredFOgt
	PredFOlt
	PredFOge
	PredFOle
	PredFUne
)

func (p Pred) String() string {
	switch p {
	case PredIEq:
		return "eq"
	case PredINe:
		return "ne"
	case PredISgt:
		return "sgt"
	case PredISlt:
		return "slt"
	case PredISge:
		return "sge"
	case PredISle:
		return "sle"
	case PredFOeq:
		return "oeq"
	case PredFOne:
		return "one"
	case PredFOgt:
		return "ogt"
	case PredFOlt:
		return "olt"
	case PredFOge:
		return "oge"
	case PredFOle:
		return "ole"
	case PredFUne:
		return "une"
	default:
		return fmt.Sprintf("Pred(%d)", p)
	}
}

// IsFloat reports whether the predicate compares floating point.
func (p Pred) IsFloat() bool {
	return p >= PredFOeq && p <= PredFUne
}

// Instr represents one instruction. Result is the value it defines
// (zero Value for stores).
type Instr struct {
	Op     Op
	Result Value

	Const ConstInstr
	Alloc AllocInstr
	Load  LoadInstr
	Store StoreInstr
	Elem  ElemInstr
	Cast  CastInstr
	Bin   BinInstr
	Cmp   CmpInstr
}

// ConstInstr materializes a constant. Bits carries the raw payload:
// sign-extended two's complement for integer kinds, IEEE 754 binary64 for
// float kinds (already rounded to binary32 when Type is f32).
type ConstInstr struct {
	Type types.Scalar
	Bits uint64
}

// AllocInstr reserves zero-initialized storage for one Type.
type AllocInstr struct {
	Type types.Type
}

// LoadInstr reads the scalar Addr points at.
type LoadInstr struct {
	Addr Value
}

// StoreInstr writes Val to the scalar Addr points at.
type StoreInstr struct {
	Addr Value
	Val  Value
}

// ElemInstr yields the address of element Index of the array Addr points at.
type ElemInstr struct {
	Addr  Value
	Index uint32
}

// CastInstr converts Src to the scalar kind To. Label carries the
// diagnostic twine attached at emission.
type CastInstr struct {
	Kind  CastKind
	Src   Value
	To    types.Scalar
	Label string
}

// BinInstr combines X and Y, which have identical scalar kinds.
type BinInstr struct {
	Kind  BinKind
	X     Value
	Y     Value
	Label string
}

// CmpInstr compares X and Y, which have identical scalar kinds.
type CmpInstr struct {
	Pred  Pred
	X     Value
	Y     Value
	Label string
}
